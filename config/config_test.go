package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "DB_LOG_LEVEL", "CORS_ORIGIN", "BCRYPT_COST", "MAX_BODY_BYTES"} {
		t.Setenv(key, "") // restores the original value after the test
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "data.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.DBLogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, int64(10<<20), cfg.MaxBodyBytes)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DATABASE_URL", "postgres://app@localhost/recipes")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("BCRYPT_COST", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"sqlite ok", Config{DBDriver: DriverSQLite, DBPath: "x.db", MaxBodyBytes: 1024}, false},
		{"sqlite without path", Config{DBDriver: DriverSQLite}, true},
		{"postgres without url", Config{DBDriver: DriverPostgres}, true},
		{"postgres ok", Config{DBDriver: DriverPostgres, DatabaseURL: "postgres://localhost/db", MaxBodyBytes: 1024}, false},
		{"zero body limit", Config{DBDriver: DriverSQLite, DBPath: "x.db"}, true},
		{"unknown driver", Config{DBDriver: "mysql"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
