package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("STORE_TYPE", "")
	t.Setenv("SCOPES", "openid, email,,profile")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, StoreMemory, cfg.Store.Type)
	assert.True(t, cfg.Store.SeedDemoData)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, []string{"openid", "email", "profile"}, cfg.OAuth2Google.Scopes)
	assert.Equal(t, "gemini-2.5-flash", cfg.GenAI.Model)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port", key: "APP_PORT", val: "eighty"},
		{name: "seed flag", key: "SEED_DEMO_DATA", val: "maybe"},
		{name: "db port", key: "DB_PORT", val: "x"},
		{name: "expiration", key: "JWT_ACCESS_EXPIRATION_TIME", val: "soon"},
		{name: "store", key: "STORE_TYPE", val: "redis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "test-secret")
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Store: StoreConfig{Type: StoreMemory},
			JWT:   JWTConfig{Secret: "s", AccessExpiration: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "JWT_SECRET_KEY"},
		{name: "postgres without password", mutate: func(c *Config) { c.Store.Type = StorePostgres }, wantErr: "DB_PASSWORD"},
		{name: "postgres with password", mutate: func(c *Config) {
			c.Store.Type = StorePostgres
			c.Database.Password = "pw"
		}},
		{name: "sqlite without path", mutate: func(c *Config) { c.Store.Type = StoreSQLite }, wantErr: "SQLITE_PATH"},
		{name: "partial google config", mutate: func(c *Config) { c.OAuth2Google.ClientID = "id" }, wantErr: "CLIENT_SECRET"},
		{name: "complete google config", mutate: func(c *Config) {
			c.OAuth2Google = OAuth2GoogleConfig{ClientID: "id", ClientSecret: "secret", RedirectURL: "http://localhost/cb"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{}
	for level, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	} {
		cfg.App.LogLevel = level
		assert.Equal(t, want, cfg.SlogLevel(), level)
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "hris", SSLMode: "disable"}}
	assert.Equal(t, "postgres://u:p@db:5432/hris?sslmode=disable", cfg.DatabaseURL())
}
