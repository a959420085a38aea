// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables and supporting external configuration files.
//
// 12-Factor App Compilance:
//   - III. Config: Store config in the environment
//   - Configuration is loaded from environment variables
//   - Sensitive data (database DSN) only via environment
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
// All fields are populated from environment variables or config files.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logging configuration
	Log LogConfig `mapstructure:"log"`

	// Database contains PostgreSQL configuration
	Database DatabaseConfig `mapstructure:"database"`

	// Gateways contains the external stock and payment services
	Gateways GatewaysConfig `mapstructure:"gateways"`

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Metrics contains Prometheus exposition settings
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Tracing contains OpenTelemetry export settings
	Tracing TracingConfig `mapstructure:"tracing"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, staging, production)
	Environment string `mapstructure:"environment"`

	// Currency every price and total is expressed in
	Currency string `mapstructure:"currency" validate:"oneof=BRL USD EUR"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address
	Host string `mapstructure:"host"`

	// Port is the server port
	Port int `mapstructure:"port" validate:"min=1,max=65535"`

	// ReadTimeout is the maximum duration for reading the entire request, including the body
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// RequestTimeout bounds the handling of a single request
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// CORSAllowedOrigins is a list of allowed origins for CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum level (debug, info, warn, error)
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`

	// Format is json or console
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// DatabaseConfig contains PostgreSQL configuration.
// An empty DSN selects the in-memory repositories.
type DatabaseConfig struct {
	// DSN is the connection string
	DSN string `mapstructure:"dsn"`

	// MaxConns caps the pool size, pgx default when 0
	MaxConns int32 `mapstructure:"max_conns" validate:"gte=0"`

	// Migrate applies the embedded schema migrations at startup
	Migrate bool `mapstructure:"migrate"`
}

// GatewaysConfig contains the base URLs of the external services.
type GatewaysConfig struct {
	// StockURL is the inventory service base URL
	StockURL string `mapstructure:"stock_url" validate:"required,url"`

	// PaymentURL is the payment service base URL
	PaymentURL string `mapstructure:"payment_url" validate:"required,url"`

	// Timeout bounds every gateway call
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// RateLimitConfig contains per-client token bucket settings.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gt=0"`

	// Burst is the bucket size
	Burst int `mapstructure:"burst" validate:"gt=0"`
}

// MetricsConfig contains Prometheus exposition settings.
type MetricsConfig struct {
	// Enabled mounts the metrics endpoint
	Enabled bool `mapstructure:"enabled"`

	// Path of the metrics endpoint
	Path string `mapstructure:"path" validate:"startswith=/"`
}

// TracingConfig contains OpenTelemetry export settings.
type TracingConfig struct {
	// Enabled installs an exporting tracer provider
	Enabled bool `mapstructure:"enabled"`

	// Endpoint is the OTLP/HTTP collector URL
	Endpoint string `mapstructure:"endpoint"`

	// SamplingRatio is the fraction of root traces kept
	SamplingRatio float64 `mapstructure:"sampling_ratio" validate:"gte=0,lte=1"`
}

// Load loads the configuration from environment variables and config files.
// It follows this precedence (higest to lowest):
//  1. Environment variables
//  2. Config file (if provided)
//  3. Default values
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading or validation
func Load() (*Config, error) {
	// A local .env file is optional and never overrides the real environment
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/checkout-go")

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		// If the error is not "file not found", return the error
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read environment variables
	v.SetEnvPrefix("OPS") // Order Processing System
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "checkout-go")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.currency", "BRL")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Database defaults
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.migrate", false)

	// Gateway defaults
	v.SetDefault("gateways.stock_url", "http://localhost:8081")
	v.SetDefault("gateways.payment_url", "http://localhost:8082")
	v.SetDefault("gateways.timeout", 5*time.Second)

	// Rate limit defaults
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Tracing defaults
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.sampling_ratio", 1.0)
}

// bindEnvVars binds specific environment variables to configuration keys.
func bindEnvVars(v *viper.Viper) error {
	bindings := map[string][]string{
		"app.environment": {"OPS_ENVIRONMENT"},
		"server.port":     {"OPS_SERVER_PORT", "PORT"}, // Common convention
		"database.dsn":    {"OPS_DATABASE_DSN", "DATABASE_URL"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the values that would otherwise fail at runtime.
//
// Returns:
//   - error: description of the first invalid setting
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("invalid config %s: %v fails %q", fe.Namespace(), fe.Value(), fe.ActualTag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
