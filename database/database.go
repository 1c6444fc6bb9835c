// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"recipe-cart-backend/config" // Project config
	"recipe-cart-backend/models" // Schema models

	"gorm.io/driver/postgres" // Postgres driver for GORM
	"gorm.io/driver/sqlite"   // SQLite driver for GORM
	"gorm.io/gorm"            // GORM ORM
	"gorm.io/gorm/logger"     // SQL logging
)

// Store is the schema layer: CRUD over users, recipes, carts and cart items.
// Every method runs a single statement against the underlying database.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open, migrated connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Connect opens the configured database and migrates the schema.
func Connect(cfg *config.Config) (*Store, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

// Open opens a gorm connection for cfg.DBDriver without migrating.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.DBPath))
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger(cfg.DBLogLevel)})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// Migrate creates or updates the tables and their foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Cart{}, &models.CartItem{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per connection.
// Cascading deletes depend on it.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func newLogger(level string) logger.Interface {
	return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
