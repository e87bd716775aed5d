// netadvisor-mcp serves the recommendation pipeline as Model Context Protocol
// tools over stdio, for use by LLM clients.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/HerbHall/netadvisor/internal/advisor"
	"github.com/HerbHall/netadvisor/internal/config"
	"github.com/HerbHall/netadvisor/internal/mcptool"
	"github.com/HerbHall/netadvisor/internal/search"
	"github.com/HerbHall/netadvisor/internal/version"
	"github.com/HerbHall/netadvisor/pkg/catalog"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Stdout carries the MCP protocol; logs must go to stderr only.
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := zapCfg.Build()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	advisorCfg := config.New(cfg).Sub("modules.advisor")

	opts := advisor.DefaultOptions()
	if err := advisorCfg.Unmarshal(&opts); err != nil {
		logger.Fatal("failed to parse advisor options", zap.Error(err))
	}

	var searcher search.Searcher
	if opts.Search.APIKey != "" {
		searcher = search.NewTavilyClient(
			opts.Search.APIKey,
			search.WithTimeout(opts.Search.Timeout),
		)
	} else if opts.IncludeRealTimeSearch {
		logger.Warn("real-time search requested but no API key configured; augmenter disabled")
		opts.IncludeRealTimeSearch = false
	}

	service, err := advisor.NewService(opts, catalog.NewCatalog(), searcher, nil, logger)
	if err != nil {
		logger.Fatal("failed to build advisor service", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	logger.Info("NetAdvisor MCP server starting", zap.String("version", version.Short()))

	server := mcptool.NewServer(service, searcher, logger)
	if err := mcptool.Run(ctx, server); err != nil && ctx.Err() == nil {
		logger.Fatal("mcp server error", zap.Error(err))
	}

	logger.Info("NetAdvisor MCP server stopped")
}
