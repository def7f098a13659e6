package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:            "development",
		Port:           "4000",
		JWTSecret:      "secure-secret-at-least-32-chars-long",
		BcryptCost:     10,
		DBDriver:       DriverPostgres,
		DBPassword:     "secure-password",
		DBSSLMode:      "require",
		DBMaxOpenConns: 10,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid development", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Zero pool size", func(c *Config) { c.DBMaxOpenConns = 0 }, true},
		{"Bcrypt cost too low", func(c *Config) { c.BcryptCost = 1 }, true},
		{"Bcrypt cost too high", func(c *Config) { c.BcryptCost = 40 }, true},
		{"Unknown driver", func(c *Config) { c.DBDriver = "oracle" }, true},
		{"MySQL driver", func(c *Config) { c.DBDriver = DriverMySQL }, false},
		{"SQLite driver", func(c *Config) { c.DBDriver = DriverSQLite }, false},
		{"Production with default secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = defaultJWTSecret
		}, true},
		{"Production with short secret", func(c *Config) {
			c.Env = "prod"
			c.JWTSecret = "short"
		}, true},
		{"Production with default DB password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"Production with SSL disabled", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "disable"
		}, true},
		{"Production with DATABASE_URL skips discrete checks", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "disable"
			c.DBPassword = ""
			c.DatabaseURL = "postgres://u:p@db/fitlog?sslmode=require"
		}, false},
		{"Production hardened", func(c *Config) { c.Env = "production" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_TokenTTL(t *testing.T) {
	c := &Config{}
	assert.Equal(t, 7*24*time.Hour, c.TokenTTL())

	c.JWTTTLHours = 2
	assert.Equal(t, 2*time.Hour, c.TokenTTL())
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()
	t.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "4000", c.Port)
	assert.Equal(t, DriverPostgres, c.DBDriver)
	assert.Equal(t, 10, c.DBMaxOpenConns)
	assert.Equal(t, 12, c.BcryptCost)
	assert.Equal(t, 7*24*time.Hour, c.TokenTTL())
	assert.True(t, c.DBAutoMigrate)
}

func TestLoadConfig_EnvironmentOverridesAndNormalization(t *testing.T) {
	defer viper.Reset()
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "  SQLite ")
	t.Setenv("DB_SSLMODE", "  DISABLE  ")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, c.DBDriver)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, 3, c.DBMaxOpenConns)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, IsProduction("production"))
	assert.True(t, IsProduction(" PROD "))
	assert.False(t, IsProduction("staging"))
	assert.False(t, IsProduction(""))
}
