package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "checkout-go", cfg.App.Name)
	assert.Equal(t, "BRL", cfg.App.Currency)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Database.DSN)
	assert.Equal(t, 5*time.Second, cfg.Gateways.Timeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SamplingRatio)
	assert.False(t, cfg.Database.Migrate)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPS_ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/checkout")
	t.Setenv("OPS_GATEWAYS_STOCK_URL", "http://stock.internal")
	t.Setenv("OPS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/checkout", cfg.Database.DSN)
	assert.Equal(t, "http://stock.internal", cfg.Gateways.StockURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPS_LOG_FORMAT", "xml")

	_, err := Load()
	assert.ErrorContains(t, err, "Config.Log.Format")
}

func validConfig() Config {
	return Config{
		App:       AppConfig{Currency: "BRL"},
		Server:    ServerConfig{Port: 8080, RequestTimeout: time.Second},
		Log:       LogConfig{Level: "info", Format: "console"},
		Gateways:  GatewaysConfig{StockURL: "http://stock", PaymentURL: "http://payment", Timeout: time.Second},
		RateLimit: RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
		Metrics:   MetricsConfig{Path: "/metrics"},
	}
}

func TestValidate(t *testing.T) {
	valid := validConfig()
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "Config.Server.Port"},
		{"burst", func(c *Config) { c.RateLimit.Burst = 0 }, "Config.RateLimit.Burst"},
		{"sampling ratio", func(c *Config) { c.Tracing.SamplingRatio = 1.5 }, "Config.Tracing.SamplingRatio"},
		{"currency", func(c *Config) { c.App.Currency = "JPY" }, "Config.App.Currency"},
		{"stock url", func(c *Config) { c.Gateways.StockURL = "" }, "Config.Gateways.StockURL"},
		{"gateway timeout", func(c *Config) { c.Gateways.Timeout = 0 }, "Config.Gateways.Timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.field)
		})
	}
}
