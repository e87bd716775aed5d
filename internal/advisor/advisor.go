package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/HerbHall/netadvisor/internal/plugin"
	"github.com/HerbHall/netadvisor/internal/search"
	"github.com/HerbHall/netadvisor/pkg/catalog"
	"go.uber.org/zap"
)

// SearchOptions configures the optional real-time search augmenter.
type SearchOptions struct {
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Options are the advisor's tunables. Validation happens at construction,
// before any query is served.
type Options struct {
	MaxResults            int           `mapstructure:"max_results"`
	IncludeSpecifications bool          `mapstructure:"include_specifications"`
	IncludeRealTimeSearch bool          `mapstructure:"include_real_time_search"`
	Search                SearchOptions `mapstructure:"search"`
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxResults:            3,
		IncludeSpecifications: true,
		IncludeRealTimeSearch: false,
		Search: SearchOptions{
			Timeout: 10 * time.Second,
		},
	}
}

// Validate checks option invariants. A violation is a configuration error
// and must abort startup.
func (o Options) Validate() error {
	if o.MaxResults < 1 {
		return fmt.Errorf("max_results must be >= 1, got %d", o.MaxResults)
	}
	if o.Search.Timeout < 0 {
		return fmt.Errorf("search timeout must not be negative, got %s", o.Search.Timeout)
	}
	return nil
}

// Response is the outcome of a single recommendation query.
type Response struct {
	Query       string      `json:"query"`
	Intent      QueryIntent `json:"intent"`
	Text        string      `json:"text"`
	ResultCount int         `json:"result_count"`
	Degraded    bool        `json:"degraded,omitempty"`
}

// Service runs the recommendation pipeline: extract intent, filter and rank
// the catalog, render, and optionally augment with real-time search results.
// It holds no per-request state; concurrent use is safe.
type Service struct {
	opts     Options
	cat      *catalog.Catalog
	searcher search.Searcher
	bus      plugin.EventBus
	logger   *zap.Logger
}

// NewService creates a Service. searcher and bus may be nil: a nil searcher
// disables augmentation, a nil bus disables event publishing.
func NewService(opts Options, cat *catalog.Catalog, searcher search.Searcher, bus plugin.EventBus, logger *zap.Logger) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("advisor options: %w", err)
	}
	if cat == nil {
		return nil, fmt.Errorf("advisor: catalog is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		opts:     opts,
		cat:      cat,
		searcher: searcher,
		bus:      bus,
		logger:   logger,
	}, nil
}

// Respond serves one query. It never fails: any internal fault degrades to a
// best-effort text response. maxResults <= 0 selects the configured default.
func (s *Service) Respond(ctx context.Context, query string, maxResults int) Response {
	if maxResults < 1 {
		maxResults = s.opts.MaxResults
	}

	intent := ExtractIntent(query)

	products, err := s.cat.Products()
	if err != nil {
		// A broken embedded catalog is a build defect; degrade to the
		// no-match document rather than failing the caller.
		s.logger.Error("catalog load failed", zap.Error(err))
		products = nil
	}

	results := Recommend(intent, products, maxResults)
	text := Render(query, intent, results, RenderOptions{
		IncludeSpecifications: s.opts.IncludeSpecifications,
	})

	resp := Response{
		Query:       query,
		Intent:      intent,
		ResultCount: len(results),
	}

	if s.augmentEnabled() {
		section, degraded := s.augment(ctx, query)
		text += section
		resp.Degraded = degraded
	}
	resp.Text = text

	queriesTotal.Inc()
	if len(results) == 0 {
		emptyResultsTotal.Inc()
	}
	s.publishServed(ctx, resp)

	return resp
}

// augmentEnabled reports whether the real-time search augmenter is active.
func (s *Service) augmentEnabled() bool {
	return s.opts.IncludeRealTimeSearch && s.searcher != nil
}

// augment issues the bounded external search call. Failure never aborts the
// pipeline: it yields a degraded-mode note instead.
func (s *Service) augment(ctx context.Context, query string) (section string, degraded bool) {
	sctx := ctx
	if s.opts.Search.Timeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, s.opts.Search.Timeout)
		defer cancel()
	}

	results, err := s.searcher.Search(sctx, query, 3)
	if err != nil {
		reason := search.Reason(err)
		s.logger.Warn("search augmenter unavailable",
			zap.String("reason", reason),
			zap.Error(err),
		)
		augmenterFailuresTotal.WithLabelValues(reason).Inc()
		s.publishDegraded(ctx, reason)
		return RenderDegradedNote(reason), true
	}

	return RenderSearchSection(results), false
}

// publishServed emits the query-served event consumed by the history module.
func (s *Service) publishServed(ctx context.Context, resp Response) {
	if s.bus == nil {
		return
	}

	categories := make([]string, len(resp.Intent.Categories))
	for i, c := range resp.Intent.Categories {
		categories[i] = string(c)
	}

	err := s.bus.Publish(ctx, plugin.Event{
		Topic:     plugin.TopicQueryServed,
		Source:    "advisor",
		Timestamp: time.Now().UTC(),
		Payload: plugin.QueryServed{
			Query:       resp.Query,
			Categories:  categories,
			Scale:       string(resp.Intent.Scale),
			ResultCount: resp.ResultCount,
			Degraded:    resp.Degraded,
		},
	})
	if err != nil {
		s.logger.Warn("failed to publish query event", zap.Error(err))
	}
}

// publishDegraded emits the augmenter-failure event.
func (s *Service) publishDegraded(ctx context.Context, reason string) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, plugin.Event{
		Topic:     plugin.TopicDegraded,
		Source:    "advisor",
		Timestamp: time.Now().UTC(),
		Payload:   reason,
	})
}
