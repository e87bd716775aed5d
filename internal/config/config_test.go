package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestViperConfigGetString(t *testing.T) {
	v := viper.New()
	v.Set("name", "test")
	cfg := New(v)

	if got := cfg.GetString("name"); got != "test" {
		t.Errorf("GetString('name') = %q, want %q", got, "test")
	}
}

func TestViperConfigGetInt(t *testing.T) {
	v := viper.New()
	v.Set("port", 8080)
	cfg := New(v)

	if got := cfg.GetInt("port"); got != 8080 {
		t.Errorf("GetInt('port') = %d, want %d", got, 8080)
	}
}

func TestViperConfigGetBool(t *testing.T) {
	v := viper.New()
	v.Set("enabled", true)
	cfg := New(v)

	if got := cfg.GetBool("enabled"); !got {
		t.Error("GetBool('enabled') = false, want true")
	}
}

func TestViperConfigGetDuration(t *testing.T) {
	v := viper.New()
	v.Set("timeout", "5s")
	cfg := New(v)

	want := 5 * time.Second
	if got := cfg.GetDuration("timeout"); got != want {
		t.Errorf("GetDuration('timeout') = %v, want %v", got, want)
	}
}

func TestViperConfigSub(t *testing.T) {
	v := viper.New()
	v.Set("modules.advisor.enabled", true)
	v.Set("modules.advisor.max_results", 5)
	cfg := New(v)

	sub := cfg.Sub("modules.advisor")
	if sub == nil {
		t.Fatal("Sub('modules.advisor') = nil")
	}
	if !sub.GetBool("enabled") {
		t.Error("sub.GetBool('enabled') = false, want true")
	}
	if got := sub.GetInt("max_results"); got != 5 {
		t.Errorf("sub.GetInt('max_results') = %d, want %d", got, 5)
	}
}

func TestViperConfigSubMissing(t *testing.T) {
	cfg := New(viper.New())

	sub := cfg.Sub("nonexistent")
	if sub == nil {
		t.Fatal("Sub('nonexistent') should return empty Config, not nil")
	}
	if got := sub.GetString("anything"); got != "" {
		t.Errorf("empty config GetString() = %q, want empty", got)
	}
}

func TestViperConfigUnmarshal(t *testing.T) {
	v := viper.New()
	v.Set("host", "localhost")
	v.Set("port", 9090)
	cfg := New(v)

	var target struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	}
	if err := cfg.Unmarshal(&target); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if target.Host != "localhost" {
		t.Errorf("Host = %q, want %q", target.Host, "localhost")
	}
	if target.Port != 9090 {
		t.Errorf("Port = %d, want %d", target.Port, 9090)
	}
}

func TestNilViper(t *testing.T) {
	cfg := New(nil)
	// Should not panic and return zero values.
	if got := cfg.GetString("key"); got != "" {
		t.Errorf("nil viper GetString() = %q, want empty", got)
	}
	if cfg.IsSet("key") {
		t.Error("nil viper IsSet() = true, want false")
	}
}

func TestLoadDefaults(t *testing.T) {
	v, err := Load("")
	if err != nil {
		t.Fatalf("Load('') error = %v", err)
	}

	if got := v.GetInt("modules.advisor.max_results"); got != 3 {
		t.Errorf("default max_results = %d, want 3", got)
	}
	if !v.GetBool("modules.advisor.include_specifications") {
		t.Error("default include_specifications = false, want true")
	}
	if v.GetBool("modules.advisor.include_real_time_search") {
		t.Error("default include_real_time_search = true, want false")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "netadvisor.yaml")
	data := []byte("modules:\n  advisor:\n    max_results: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	v, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := v.GetInt("modules.advisor.max_results"); got != 7 {
		t.Errorf("max_results = %d, want 7", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func TestValidateRejectsNonPositiveMaxResults(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		v := viper.New()
		v.Set("modules.advisor.max_results", n)
		if err := Validate(v); err == nil {
			t.Errorf("Validate() with max_results=%d expected error, got nil", n)
		}
	}
}

func TestValidateAcceptsMissingAPIKey(t *testing.T) {
	// A missing credential means "feature disabled", never a config error.
	v := viper.New()
	v.Set("modules.advisor.max_results", 3)
	v.Set("modules.advisor.include_real_time_search", true)
	if err := Validate(v); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}
