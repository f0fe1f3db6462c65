package config

// Store backend names.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// StoreConfig configures the primary store, the optional mirror, and the
// dual-write mode.
type StoreConfig struct {
	// SQLitePath is the embedded store file. ":memory:" is accepted for
	// ephemeral runs.
	SQLitePath string `yaml:"sqlite_path"`

	// PostgresDSN enables the server-side backend when non-empty.
	PostgresDSN string `yaml:"postgres_dsn"`

	// ReadSource selects where reads go: sqlite or postgres.
	ReadSource string `yaml:"read_source"`

	// DualWrite mirrors every primary write into the other backend.
	DualWrite bool `yaml:"dual_write"`

	// DualWriteStrict propagates mirror failures to the caller instead of
	// counting them.
	DualWriteStrict bool `yaml:"dual_write_strict"`

	// MaxOpenConns and MaxIdleConns tune the Postgres pool.
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
}

// DefaultStoreConfig returns the built-in store defaults.
func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		SQLitePath:   "scout.db",
		ReadSource:   BackendSQLite,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}
}
