package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Sink kinds accepted by RECORD_SINK.
const (
	SinkFile     = "file"
	SinkPostgres = "postgres"
	SinkSqlite   = "sqlite"
)

// Config holds every tunable of the CLI and the HTTP server.
// Defaults reproduce the original fixed inputs.
type Config struct {
	PostcodeA      string        `env:"POSTCODE_A,       default=BS1 6Q"`
	PostcodeB      string        `env:"POSTCODE_B,       default=B1 2HL"`
	LogPath        string        `env:"LOG_PATH,         default=log.txt"`
	ServiceBaseURL string        `env:"SERVICE_BASE_URL, default=http://api.postcodes.io"`
	LookupTimeout  time.Duration `env:"LOOKUP_TIMEOUT,   default=10s"`

	RecordSink  string `env:"RECORD_SINK,  default=file"`
	DatabaseURL string `env:"DATABASE_URL"`
	SqlitePath  string `env:"SQLITE_PATH,  default=data/app.db"`

	Port      string `env:"PORT,       default=8080"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
}

// Load reads a .env file when present, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom processes configuration from the given lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	c.RecordSink = strings.ToLower(strings.TrimSpace(c.RecordSink))
	switch c.RecordSink {
	case SinkFile:
		if strings.TrimSpace(c.LogPath) == "" {
			return fmt.Errorf("config: LOG_PATH is required for the %s sink", SinkFile)
		}
	case SinkPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the %s sink", SinkPostgres)
		}
	case SinkSqlite:
		if strings.TrimSpace(c.SqlitePath) == "" {
			return fmt.Errorf("config: SQLITE_PATH is required for the %s sink", SinkSqlite)
		}
	default:
		return fmt.Errorf("config: unknown RECORD_SINK %q (want file, postgres or sqlite)", c.RecordSink)
	}

	if strings.TrimSpace(c.ServiceBaseURL) == "" {
		return fmt.Errorf("config: SERVICE_BASE_URL must be non-empty")
	}
	if c.LookupTimeout <= 0 {
		return fmt.Errorf("config: LOOKUP_TIMEOUT must be positive, got %s", c.LookupTimeout)
	}

	return nil
}
