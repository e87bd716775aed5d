// Package plugin defines the module interface and registry that compose the
// NetAdvisor service. Modules are registered at compile time and receive their
// own viper sub-configuration and a named logger.
package plugin

import (
	"context"
	"net/http"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Route represents an HTTP route exposed by a module. Routes are mounted
// under /api/v1/<module> by the server.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Plugin defines the interface that all NetAdvisor modules must implement.
type Plugin interface {
	// Name returns the module's unique identifier (e.g., "advisor", "history").
	Name() string

	// Version returns the module's semantic version.
	Version() string

	// Init initializes the module with its configuration section and logger.
	// Configuration errors must surface here, before any query is served.
	Init(config *viper.Viper, logger *zap.Logger) error

	// Start begins the module's background operations.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the module.
	Stop() error

	// Routes returns the HTTP routes this module exposes.
	Routes() []Route
}
