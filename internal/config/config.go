package config

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	AppPort                int    `mapstructure:"APP_PORT"`
	LogLevel               string `mapstructure:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	LogFormat              string `mapstructure:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
	MongoURI               string `mapstructure:"MONGO_URI"`
	MongoDBName            string `mapstructure:"MONGO_DB_NAME"`
	RequestLoggingEnabled  bool   `mapstructure:"REQUEST_LOGGING_ENABLED"`
	RouteMetricsEnabled    bool   `mapstructure:"ROUTE_METRICS_ENABLED"`
	RateLimitPerMin        int    `mapstructure:"RATE_LIMIT_PER_MIN"`
	CORSAllowOrigins       string `mapstructure:"CORS_ALLOW_ORIGINS"`
	SanitizeHTML           bool   `mapstructure:"SANITIZE_HTML"`
	WSOutboxBuffer         int    `mapstructure:"WS_OUTBOX_BUFFER"`
	WSMaxSessionSec        int    `mapstructure:"WS_MAX_SESSION_SEC"`
	PyroscopeServerAddress string `mapstructure:"PYROSCOPE_SERVER_ADDRESS" validate:"omitempty,url"`
}

// Validation errors
var (
	ErrAppPortRange        = errors.New("APP_PORT must be between 1 and 65535")
	ErrLogLevelEmpty       = errors.New("LOG_LEVEL cannot be empty")
	ErrLogFormatEmpty      = errors.New("LOG_FORMAT cannot be empty")
	ErrMongoURIEmpty       = errors.New("MONGO_URI cannot be empty")
	ErrMongoDBNameEmpty    = errors.New("MONGO_DB_NAME cannot be empty")
	ErrRateLimitNegative   = errors.New("RATE_LIMIT_PER_MIN must be greater than or equal to 0")
	ErrWSOutboxBuffer      = errors.New("WS_OUTBOX_BUFFER must be greater than 0")
	ErrWSMaxSessionSec     = errors.New("WS_MAX_SESSION_SEC must be greater than 0")
	ErrInvalidConfigFormat = errors.New("invalid configuration value")
)

var (
	cachedConfig *Config
	configMutex  sync.RWMutex

	structValidator = validator.New()
)

// Load loads configuration from environment variables and .env file
// It caches the result for subsequent calls
func Load() (Config, error) {
	configMutex.RLock()
	if cachedConfig != nil {
		defer configMutex.RUnlock()
		return *cachedConfig, nil
	}
	configMutex.RUnlock()

	configMutex.Lock()
	defer configMutex.Unlock()

	// Double-check in case another goroutine loaded it while we waited for the lock
	if cachedConfig != nil {
		return *cachedConfig, nil
	}

	v := viper.New()

	v.SetDefault("APP_PORT", 4000)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("MONGO_URI", "mongodb://127.0.0.1:27017")
	v.SetDefault("MONGO_DB_NAME", "quirknotes")
	v.SetDefault("REQUEST_LOGGING_ENABLED", true)
	v.SetDefault("ROUTE_METRICS_ENABLED", true)
	v.SetDefault("RATE_LIMIT_PER_MIN", 0) // disabled
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("SANITIZE_HTML", false)
	v.SetDefault("WS_OUTBOX_BUFFER", 256)
	v.SetDefault("WS_MAX_SESSION_SEC", 900)
	v.SetDefault("PYROSCOPE_SERVER_ADDRESS", "")

	// Configure Viper to read from .env file (if present)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Try to read .env file (it's okay if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	// Override with OS environment variables
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cachedConfig = &cfg

	return cfg, nil
}

// ResetCache clears the cached configuration (for testing purposes)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()
	cachedConfig = nil
}

// Validate checks if required configuration fields are properly set
func (c Config) Validate() error {
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return ErrAppPortRange
	}
	if c.LogLevel == "" {
		return ErrLogLevelEmpty
	}
	if c.LogFormat == "" {
		return ErrLogFormatEmpty
	}
	if c.MongoURI == "" {
		return ErrMongoURIEmpty
	}
	if c.MongoDBName == "" {
		return ErrMongoDBNameEmpty
	}
	if c.RateLimitPerMin < 0 {
		return ErrRateLimitNegative
	}
	if c.WSOutboxBuffer <= 0 {
		return ErrWSOutboxBuffer
	}
	if c.WSMaxSessionSec <= 0 {
		return ErrWSMaxSessionSec
	}
	if err := structValidator.Struct(c); err != nil {
		return errors.Join(ErrInvalidConfigFormat, err)
	}
	return nil
}
