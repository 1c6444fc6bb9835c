// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"fmt" // Error wrapping

	"github.com/caarlos0/env/v11" // Struct-tag based env parsing
	"github.com/joho/godotenv"    // Loads .env files into the environment
)

// Supported values for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration values, read from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`                         // HTTP listen port
	Env          string `env:"APP_ENV" envDefault:"development"`               // development or production
	DBDriver     string `env:"DB_DRIVER" envDefault:"sqlite"`                  // sqlite or postgres
	DBPath       string `env:"DB_PATH" envDefault:"data.db"`                   // Path to the SQLite database file
	DatabaseURL  string `env:"DATABASE_URL"`                                   // Postgres DSN, required when DB_DRIVER=postgres
	DBLogLevel   string `env:"DB_LOG_LEVEL" envDefault:"warn"`                 // silent, error, warn or info
	CORSOrigin   string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"` // Allowed browser origin
	BcryptCost   int    `env:"BCRYPT_COST" envDefault:"10"`                    // Work factor for password hashes
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"10485760"`           // Largest accepted request body (10 MiB)
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional, missing file is fine

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks combinations env.Parse cannot express.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for driver %q", c.DBDriver)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for driver %q", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

// IsDevelopment reports whether verbose errors and request logging are enabled.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
