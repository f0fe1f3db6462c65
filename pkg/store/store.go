// Package store opens and manages the two storage backends (embedded SQLite
// and server-side Postgres), routes reads and writes between them, mirrors
// writes when dual-write is enabled, and implements the SQLite→Postgres
// backfill and parity tooling.
package store

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	_ "github.com/mattn/go-sqlite3"    // embedded backend driver

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
)

// Backend is one opened storage backend: the ent client plus the raw
// connection it runs on. The raw handle serves the backfill/parity SQL and
// the serial-id mirror path.
type Backend struct {
	Name    string
	Dialect string
	Client  *ent.Client
	DB      *stdsql.DB
}

// Close releases the backend's connections.
func (b *Backend) Close() error {
	if b == nil || b.Client == nil {
		return nil
	}
	return b.Client.Close()
}

// OpenSQLite opens the embedded backend and creates its schema.
func OpenSQLite(ctx context.Context, path string) (*Backend, error) {
	dsn := fmt.Sprintf("file:%s?_fk=1&cache=shared", path)
	db, err := stdsql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite at %s: %w", path, err)
	}
	// The embedded backend serializes writers; a single connection avoids
	// SQLITE_BUSY under concurrent tickers.
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}

	return &Backend{Name: config.BackendSQLite, Dialect: dialect.SQLite, Client: client, DB: db}, nil
}

// OpenPostgres opens the server-side backend and creates its schema.
func OpenPostgres(ctx context.Context, dsn string, maxOpen, maxIdle int) (*Backend, error) {
	db, err := stdsql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create postgres schema: %w", err)
	}

	return &Backend{Name: config.BackendPostgres, Dialect: dialect.Postgres, Client: client, DB: db}, nil
}

// Switchboard routes repository traffic between the two backends. Writes
// always go to the primary chosen at boot; reads follow the runtime-
// switchable read source; the mirror (when present) receives a copy of
// every tracked write.
type Switchboard struct {
	primary   *Backend
	secondary *Backend // nil when only one backend is configured

	readSource atomic.Value // string: backend name
	mirror     *Mirror      // nil when dual-write is off
}

// Open builds the switchboard from configuration: it opens the embedded
// backend, the Postgres backend when a DSN is configured, picks the primary
// per read_source, and arms the mirror when dual-write is enabled.
func Open(ctx context.Context, cfg *config.StoreConfig) (*Switchboard, error) {
	lite, err := OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	var pg *Backend
	if cfg.PostgresDSN != "" {
		pg, err = OpenPostgres(ctx, cfg.PostgresDSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			_ = lite.Close()
			return nil, err
		}
	}

	primary, secondary := lite, pg
	if cfg.ReadSource == config.BackendPostgres {
		if pg == nil {
			_ = lite.Close()
			return nil, fmt.Errorf("read_source=postgres but no postgres backend configured")
		}
		primary, secondary = pg, lite
	}

	sb := &Switchboard{primary: primary, secondary: secondary}
	sb.readSource.Store(primary.Name)

	if cfg.DualWrite {
		if secondary == nil {
			_ = lite.Close()
			return nil, fmt.Errorf("dual_write requires both backends")
		}
		sb.mirror = newMirror(primary, secondary, cfg.DualWriteStrict)
	}

	slog.Info("Store opened",
		"primary", primary.Name,
		"dual_write", sb.mirror != nil,
		"read_source", sb.ReadSource())

	return sb, nil
}

// NewSingle wraps one already-open backend; used by tests and by tools that
// operate on a single store.
func NewSingle(b *Backend) *Switchboard {
	sb := &Switchboard{primary: b}
	sb.readSource.Store(b.Name)
	return sb
}

// NewDual wraps two open backends with dual-write armed. Tests use two
// embedded backends to exercise the mirror without a server.
func NewDual(primary, secondary *Backend, strict bool) *Switchboard {
	sb := &Switchboard{primary: primary, secondary: secondary}
	sb.readSource.Store(primary.Name)
	sb.mirror = newMirror(primary, secondary, strict)
	return sb
}

// Writer returns the client every write goes through.
func (s *Switchboard) Writer() *ent.Client {
	return s.primary.Client
}

// Reader returns the client serving reads under the current read source.
func (s *Switchboard) Reader() *ent.Client {
	if s.secondary != nil && s.readSource.Load().(string) == s.secondary.Name {
		return s.secondary.Client
	}
	return s.primary.Client
}

// Mirror returns the dual-write proxy. The zero value is safe: all Mirror
// methods are no-ops on a nil receiver.
func (s *Switchboard) Mirror() *Mirror {
	return s.mirror
}

// Primary returns the primary backend.
func (s *Switchboard) Primary() *Backend { return s.primary }

// Secondary returns the secondary backend, or nil.
func (s *Switchboard) Secondary() *Backend { return s.secondary }

// SupportsRowLocks reports whether the write path can use
// SELECT ... FOR UPDATE SKIP LOCKED. The embedded backend serializes
// writers at the connection level instead.
func (s *Switchboard) SupportsRowLocks() bool {
	return s.primary.Dialect == dialect.Postgres
}

// ReadSource returns the backend name currently serving reads.
func (s *Switchboard) ReadSource() string {
	return s.readSource.Load().(string)
}

// SwitchReadSource points reads at the named backend.
func (s *Switchboard) SwitchReadSource(source string) error {
	switch source {
	case s.primary.Name:
	case secondaryName(s.secondary):
	default:
		return fmt.Errorf("unknown read source %q", source)
	}
	s.readSource.Store(source)
	slog.Info("Read source switched", "read_source", source)
	return nil
}

// SetStrict toggles strict dual-write at runtime. Returns false when
// dual-write is not configured.
func (s *Switchboard) SetStrict(strict bool) bool {
	if s.mirror == nil {
		return false
	}
	s.mirror.SetStrict(strict)
	return true
}

// Status reports the switchboard and mirror state.
func (s *Switchboard) Status() Status {
	st := Status{
		Primary:    s.primary.Name,
		ReadSource: s.ReadSource(),
		DualWrite:  s.mirror != nil,
	}
	if s.secondary != nil {
		st.Secondary = s.secondary.Name
	}
	if s.mirror != nil {
		ms := s.mirror.Status()
		st.Strict = ms.Strict
		st.MirrorSuccess = ms.MirrorSuccess
		st.MirrorErrors = ms.MirrorErrors
		st.LastError = ms.LastError
	}
	return st
}

// Close releases both backends.
func (s *Switchboard) Close() error {
	var firstErr error
	if err := s.primary.Close(); err != nil {
		firstErr = err
	}
	if s.secondary != nil {
		if err := s.secondary.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Status is the externally visible store state.
type Status struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary,omitempty"`
	ReadSource    string `json:"read_source"`
	DualWrite     bool   `json:"dual_write"`
	Strict        bool   `json:"strict,omitempty"`
	MirrorSuccess int64  `json:"mirror_success"`
	MirrorErrors  int64  `json:"mirror_errors"`
	LastError     string `json:"last_error,omitempty"`
}

func secondaryName(b *Backend) string {
	if b == nil {
		return ""
	}
	return b.Name
}
