// netadvisorctl is the NetAdvisor maintenance CLI: backup and restore of the
// query history database and config.
package main

import (
	"fmt"
	"os"

	"github.com/HerbHall/netadvisor/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "backup":
		runBackup(os.Args[2:])
	case "restore":
		runRestore(os.Args[2:])
	case "version":
		fmt.Println(version.Info())
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: netadvisorctl <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  backup   create a tar.gz backup of the database and config")
	fmt.Fprintln(os.Stderr, "  restore  restore files from a backup archive")
	fmt.Fprintln(os.Stderr, "  version  print version information")
}
