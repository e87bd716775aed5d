package advisor

import (
	"context"

	"github.com/HerbHall/netadvisor/internal/plugin"
	"github.com/HerbHall/netadvisor/internal/search"
	"github.com/HerbHall/netadvisor/pkg/catalog"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Compile-time interface guard.
var _ plugin.Plugin = (*Module)(nil)

// Module exposes the recommendation pipeline as a NetAdvisor service module.
type Module struct {
	logger   *zap.Logger
	cat      *catalog.Catalog
	bus      plugin.EventBus
	searcher search.Searcher
	service  *Service
}

// New creates the advisor module backed by the given catalog and event bus.
func New(cat *catalog.Catalog, bus plugin.EventBus) *Module {
	return &Module{cat: cat, bus: bus}
}

// SetSearcher injects a search augmenter, replacing the one built from
// configuration. Used by tests to supply fakes.
func (m *Module) SetSearcher(s search.Searcher) {
	m.searcher = s
	if m.service != nil {
		m.service.searcher = s
	}
}

func (m *Module) Name() string    { return "advisor" }
func (m *Module) Version() string { return "0.1.0" }

// Init parses and validates the module options and builds the service.
// Option violations are configuration errors and abort startup.
func (m *Module) Init(config *viper.Viper, logger *zap.Logger) error {
	m.logger = logger

	opts := DefaultOptions()
	if config != nil {
		if err := config.Unmarshal(&opts); err != nil {
			return err
		}
	}

	if opts.IncludeRealTimeSearch && opts.Search.APIKey == "" {
		// Missing credential means the feature is disabled, not an error.
		m.logger.Warn("real-time search requested but no API key configured; augmenter disabled")
		opts.IncludeRealTimeSearch = false
	}

	if opts.IncludeRealTimeSearch && m.searcher == nil {
		m.searcher = search.NewTavilyClient(
			opts.Search.APIKey,
			search.WithTimeout(opts.Search.Timeout),
		)
	}

	service, err := NewService(opts, m.cat, m.searcher, m.bus, m.logger)
	if err != nil {
		return err
	}
	m.service = service

	m.logger.Info("advisor module initialized",
		zap.Int("max_results", opts.MaxResults),
		zap.Bool("real_time_search", opts.IncludeRealTimeSearch),
	)
	return nil
}

func (m *Module) Start(ctx context.Context) error {
	m.logger.Info("advisor module started")
	return nil
}

func (m *Module) Stop() error {
	m.logger.Info("advisor module stopped")
	return nil
}

// Service returns the underlying recommendation service. Valid after Init.
func (m *Module) Service() *Service {
	return m.service
}

// Routes implements plugin.Plugin.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "POST", Path: "/recommendations", Handler: m.handleRecommend},
		{Method: "GET", Path: "/vocabulary", Handler: m.handleVocabulary},
	}
}
