// Package config wraps viper with nil-safe accessors and provides the
// NetAdvisor configuration loader. Option validation happens at load time so
// invalid settings surface as startup errors, never as runtime faults.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is a nil-safe wrapper around a viper instance. All accessors return
// zero values when the underlying viper is nil or the key is absent.
type Config struct {
	v *viper.Viper
}

// New wraps a viper instance. A nil viper yields a Config that returns zero
// values for every key.
func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

// GetString returns the string value for key.
func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

// GetInt returns the integer value for key.
func (c *Config) GetInt(key string) int {
	if c.v == nil {
		return 0
	}
	return c.v.GetInt(key)
}

// GetBool returns the boolean value for key.
func (c *Config) GetBool(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.GetBool(key)
}

// GetDuration returns the duration value for key.
func (c *Config) GetDuration(key string) time.Duration {
	if c.v == nil {
		return 0
	}
	return c.v.GetDuration(key)
}

// IsSet reports whether key has a value.
func (c *Config) IsSet(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.IsSet(key)
}

// Sub returns the configuration subtree under key. Always returns a usable
// Config, never nil.
func (c *Config) Sub(key string) *Config {
	if c.v == nil {
		return New(nil)
	}
	sub := c.v.Sub(key)
	if sub == nil {
		sub = viper.New()
	}
	return New(sub)
}

// Unmarshal decodes the configuration into target.
func (c *Config) Unmarshal(target any) error {
	if c.v == nil {
		return nil
	}
	return c.v.Unmarshal(target)
}

// Viper returns the underlying viper instance (may be nil).
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// Load reads the configuration file at path, applies defaults, and validates
// the advisor options. An empty path yields a default configuration.
func Load(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	if err := Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

// setDefaults applies the documented option defaults.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")

	v.SetDefault("modules.advisor.max_results", 3)
	v.SetDefault("modules.advisor.include_specifications", true)
	v.SetDefault("modules.advisor.include_real_time_search", false)
	v.SetDefault("modules.advisor.search.timeout", "10s")

	v.SetDefault("modules.history.path", "netadvisor.db")
	v.SetDefault("modules.history.retention_limit", 1000)
}

// Validate checks option invariants that must hold before the service starts.
func Validate(v *viper.Viper) error {
	if n := v.GetInt("modules.advisor.max_results"); n < 1 {
		return fmt.Errorf("modules.advisor.max_results must be >= 1, got %d", n)
	}
	if d := v.GetDuration("modules.advisor.search.timeout"); d < 0 {
		return fmt.Errorf("modules.advisor.search.timeout must not be negative, got %s", d)
	}
	// A missing search API key with real-time search enabled is not a
	// validation error: the feature degrades to disabled at init.
	return nil
}
