package history

import (
	"context"
	"time"

	"github.com/HerbHall/netadvisor/internal/plugin"
	"github.com/HerbHall/netadvisor/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Compile-time interface guard.
var _ plugin.Plugin = (*Module)(nil)

// defaultRetentionLimit caps stored entries when the config does not say.
const defaultRetentionLimit = 1000

// Module records served queries it observes on the event bus.
type Module struct {
	logger      *zap.Logger
	bus         plugin.EventBus
	store       *Store
	retention   int
	unsubscribe func()
}

// New creates the history module. It subscribes to advisor events on Start
// and persists them through the shared SQLite store.
func New(bus plugin.EventBus, db *store.SQLiteStore) *Module {
	return &Module{bus: bus, store: NewStore(db)}
}

func (m *Module) Name() string    { return "history" }
func (m *Module) Version() string { return "0.1.0" }

func (m *Module) Init(config *viper.Viper, logger *zap.Logger) error {
	m.logger = logger

	m.retention = defaultRetentionLimit
	if config != nil && config.IsSet("retention_limit") {
		m.retention = config.GetInt("retention_limit")
	}

	if err := m.store.Migrate(context.Background()); err != nil {
		return err
	}

	m.logger.Info("history module initialized", zap.Int("retention_limit", m.retention))
	return nil
}

func (m *Module) Start(ctx context.Context) error {
	if m.bus != nil {
		m.unsubscribe = m.bus.Subscribe(plugin.TopicQueryServed, m.onQueryServed)
	}
	m.logger.Info("history module started")
	return nil
}

func (m *Module) Stop() error {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.logger.Info("history module stopped")
	return nil
}

// Routes implements plugin.Plugin.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/queries", Handler: m.handleListQueries},
	}
}

// onQueryServed persists one observed query. Storage faults are logged and
// swallowed; history must never disturb the serving path.
func (m *Module) onQueryServed(ctx context.Context, event plugin.Event) {
	served, ok := event.Payload.(plugin.QueryServed)
	if !ok {
		m.logger.Warn("unexpected payload on query topic", zap.String("topic", event.Topic))
		return
	}

	entry := &Entry{
		ID:          uuid.NewString(),
		Query:       served.Query,
		Categories:  served.Categories,
		Scale:       served.Scale,
		ResultCount: served.ResultCount,
		Degraded:    served.Degraded,
		ServedAt:    event.Timestamp,
	}
	if entry.ServedAt.IsZero() {
		entry.ServedAt = time.Now().UTC()
	}

	if err := m.store.Insert(ctx, entry); err != nil {
		m.logger.Warn("failed to record query", zap.Error(err))
		return
	}
	if err := m.store.Prune(ctx, m.retention); err != nil {
		m.logger.Warn("failed to prune history", zap.Error(err))
	}
}
