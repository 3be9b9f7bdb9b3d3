package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "AI_SERVICE_URL", "PROVIDER_MODE", "ANALYZE_TIMEOUT", "CHAT_TIMEOUT", "STORE_BACKEND", "JWT_EXPIRY_HOURS", "CORS_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.AIServiceURL)
	assert.Equal(t, ProviderModeHTTP, cfg.ProviderMode)
	assert.Equal(t, 30*time.Second, cfg.AnalyzeTimeout)
	assert.Equal(t, 15*time.Second, cfg.ChatTimeout)
	assert.Equal(t, StoreFirestore, cfg.StoreBackend)
	assert.Equal(t, 168, cfg.JWTExpiryHours)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AI_SERVICE_URL", "http://ai:9000/")
	t.Setenv("ANALYZE_TIMEOUT", "45000")
	t.Setenv("CHAT_TIMEOUT", "5s")
	t.Setenv("CORS_ORIGIN", "https://a.example, https://b.example")
	t.Setenv("STORE_BACKEND", "MEMORY")

	cfg := Load()

	assert.Equal(t, "http://ai:9000", cfg.AIServiceURL)
	assert.Equal(t, 45*time.Second, cfg.AnalyzeTimeout)
	assert.Equal(t, 5*time.Second, cfg.ChatTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			AIServiceURL:   "http://localhost:8000",
			ProviderMode:   ProviderModeHTTP,
			StoreBackend:   StoreMemory,
			AnalyzeTimeout: time.Second,
			ChatTimeout:    time.Second,
			HistoryLimit:   10,
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "gemini without project", mutate: func(c *Config) { c.ProviderMode = ProviderModeGemini }, field: "PROJECT_ID"},
		{name: "firestore without project", mutate: func(c *Config) { c.StoreBackend = StoreFirestore }, field: "PROJECT_ID"},
		{name: "unknown provider mode", mutate: func(c *Config) { c.ProviderMode = "grpc" }, field: "PROVIDER_MODE"},
		{name: "unknown store", mutate: func(c *Config) { c.StoreBackend = "mongo" }, field: "STORE_BACKEND"},
		{name: "zero analyze timeout", mutate: func(c *Config) { c.AnalyzeTimeout = 0 }, field: "ANALYZE_TIMEOUT"},
		{name: "zero chat timeout", mutate: func(c *Config) { c.ChatTimeout = 0 }, field: "CHAT_TIMEOUT"},
		{name: "no store is fine", mutate: func(c *Config) { c.StoreBackend = StoreNone }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
