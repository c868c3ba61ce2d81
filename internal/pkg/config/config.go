package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (drivers, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Ledger  LedgerConfig
	Journal JournalConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// DBConfig is only consulted when the ledger or journal driver is "postgres".
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"market"`
	Password string `envconfig:"DB_PASSWORD" default:"market"`
	DBName   string `envconfig:"DB_NAME" default:"market"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// LedgerConfig selects the token-ledger adapter holding balances and
// allowances. "memory" keeps everything in-process (dev, unit tests);
// "postgres" stores them in the configured database.
type LedgerConfig struct {
	Driver string `envconfig:"LEDGER_DRIVER" default:"memory"`
}

// JournalConfig selects the append-only event journal adapter.
type JournalConfig struct {
	Driver string `envconfig:"JOURNAL_DRIVER" default:"memory"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// NeedsDB reports whether any configured adapter requires a database pool.
func (c Config) NeedsDB() bool {
	return c.Ledger.Driver == DriverPostgres || c.Journal.Driver == DriverPostgres
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := validateDriver(cfg.Ledger.Driver); err != nil {
		return Config{}, fmt.Errorf("LEDGER_DRIVER: %w", err)
	}
	if err := validateDriver(cfg.Journal.Driver); err != nil {
		return Config{}, fmt.Errorf("JOURNAL_DRIVER: %w", err)
	}
	return cfg, nil
}

func validateDriver(driver string) error {
	switch driver {
	case DriverMemory, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("unknown driver %q", driver)
	}
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Ledger:  LedgerConfig{Driver: DriverMemory},
		Journal: JournalConfig{Driver: DriverMemory},
	}
}
