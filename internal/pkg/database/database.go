package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Engine identifies a supported database backend.
type Engine string

const (
	EnginePostgres Engine = "postgresql"
	EngineSQLite   Engine = "sqlite"
)

const pingTimeout = 10 * time.Second

// EngineConfig names one backend and how to reach it.
type EngineConfig struct {
	Engine Engine
	DSN    string
}

// Manager owns the process-wide database session. It opens the primary
// engine and falls back to the secondary embedded engine when the primary
// is unreachable. One Manager instance is constructed at startup and held
// by the service for the process lifetime; there is no hidden global.
type Manager struct {
	primary   EngineConfig
	secondary EngineConfig

	mu       sync.Mutex
	db       *sql.DB
	engine   Engine
	fallback bool
}

// NewManager creates a Manager without opening anything yet.
func NewManager(primary, secondary EngineConfig) *Manager {
	return &Manager{primary: primary, secondary: secondary}
}

// Connect opens a session against the primary engine, falling back to the
// secondary on any failure. Both engines failing is fatal for the caller:
// no further operation is possible without a store.
func (m *Manager) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectLocked()
}

func (m *Manager) connectLocked() error {
	m.closeLocked()

	log.Info().Str("engine", string(m.primary.Engine)).Msg("Connecting to primary database engine")
	db, primaryErr := open(m.primary)
	if primaryErr == nil {
		m.db = db
		m.engine = m.primary.Engine
		m.fallback = false
		log.Info().Str("engine", string(m.engine)).Msg("Database connection established")
		return nil
	}

	log.Warn().Err(primaryErr).
		Str("engine", string(m.primary.Engine)).
		Str("fallback", string(m.secondary.Engine)).
		Msg("Primary database engine unavailable, trying fallback")

	db, err := open(m.secondary)
	if err != nil {
		log.Error().Err(err).Msg("Fallback database engine unavailable")
		return fmt.Errorf("no database engine available: primary: %v; fallback: %w", primaryErr, err)
	}

	m.db = db
	m.engine = m.secondary.Engine
	m.fallback = true
	log.Info().Str("engine", string(m.engine)).Msg("Database connection established (fallback mode)")
	return nil
}

// DB returns the active session handle, connecting first if needed.
func (m *Manager) DB() (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		if err := m.connectLocked(); err != nil {
			return nil, err
		}
	}
	return m.db, nil
}

// IsFallbackActive reports whether the secondary engine is serving requests.
func (m *Manager) IsFallbackActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fallback
}

// ActiveEngine returns the engine currently serving requests, or the empty
// Engine when no connection has been established.
func (m *Manager) ActiveEngine() Engine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engine
}

// ConnectionDetails returns a human-readable description of the active
// connection for operational display.
func (m *Manager) ConnectionDetails() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.engine {
	case EnginePostgres:
		return "PostgreSQL (network server)"
	case EngineSQLite:
		return "SQLite (embedded local file)"
	default:
		return "not connected"
	}
}

// ForceEngine closes any existing session and opens the named engine
// configuration only. Unlike Connect this path does not auto-fallback;
// failure is returned as-is and leaves the Manager disconnected.
func (m *Manager) ForceEngine(cfg EngineConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closeLocked()

	db, err := open(cfg)
	if err != nil {
		log.Error().Err(err).Str("engine", string(cfg.Engine)).Msg("Forcing database engine failed")
		return fmt.Errorf("forcing engine %s: %w", cfg.Engine, err)
	}

	m.db = db
	m.engine = cfg.Engine
	m.fallback = cfg.Engine == m.secondary.Engine
	log.Info().Str("engine", string(cfg.Engine)).Msg("Database engine forced")
	return nil
}

// Reconnect closes the current session and re-runs connection establishment
// from scratch, primary first. Used for recovery after a sustained outage.
func (m *Manager) Reconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectLocked()
}

// Close releases the session. Closing an already-closed Manager is a no-op.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

func (m *Manager) closeLocked() {
	if m.db == nil {
		return
	}
	if err := m.db.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
	} else {
		log.Info().Str("engine", string(m.engine)).Msg("Database connection closed")
	}
	m.db = nil
	m.engine = ""
	m.fallback = false
}

// Rebind rewrites ? placeholders to the $N form PostgreSQL expects, so the
// repositories carry a single SQL text for both engines.
func (m *Manager) Rebind(query string) string {
	m.mu.Lock()
	engine := m.engine
	m.mu.Unlock()

	if engine != EnginePostgres {
		return query
	}
	return rebindPositional(query)
}

func rebindPositional(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func open(cfg EngineConfig) (*sql.DB, error) {
	db, err := sql.Open(driverName(cfg.Engine), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Engine, err)
	}

	// Single logical session per process run; SQLite additionally
	// serializes writers, so one open connection avoids lock contention.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Engine, err)
	}

	if err := createSchema(db, cfg.Engine); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema setup on %s: %w", cfg.Engine, err)
	}

	return db, nil
}

func driverName(engine Engine) string {
	switch engine {
	case EnginePostgres:
		return "pgx"
	case EngineSQLite:
		return "sqlite"
	default:
		return string(engine)
	}
}
