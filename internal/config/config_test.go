package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// helpers
// -----------------------------------------------------------------------------

// baseValidConfig returns a fully-valid configuration object that callers
// can tweak inside table tests.
func baseValidConfig() Config {
	return Config{
		AppPort:               4000,
		LogLevel:              "info",
		LogFormat:             "json",
		MongoURI:              "mongodb://localhost:27017",
		MongoDBName:           "test",
		RequestLoggingEnabled: true,
		RouteMetricsEnabled:   true,
		CORSAllowOrigins:      "*",
		WSOutboxBuffer:        256,
		WSMaxSessionSec:       900,
	}
}

// clearConfigEnvVars removes every environment variable that the Config loader
// consumes so each test starts with a clean slate.
func clearConfigEnvVars(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"APP_PORT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"MONGO_URI",
		"MONGO_DB_NAME",
		"REQUEST_LOGGING_ENABLED",
		"ROUTE_METRICS_ENABLED",
		"RATE_LIMIT_PER_MIN",
		"CORS_ALLOW_ORIGINS",
		"SANITIZE_HTML",
		"WS_OUTBOX_BUFFER",
		"WS_MAX_SESSION_SEC",
		"PYROSCOPE_SERVER_ADDRESS",
	} {
		if err := os.Unsetenv(k); err != nil {
			t.Logf("warning: failed to unset %s: %v", k, err)
		}
	}
}

func TestConfigLoadDefaults(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	t.Cleanup(ResetCache)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	assert.Equal(t, "quirknotes", cfg.MongoDBName)
	assert.True(t, cfg.RequestLoggingEnabled)
	assert.True(t, cfg.RouteMetricsEnabled)
	assert.Equal(t, 0, cfg.RateLimitPerMin)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.False(t, cfg.SanitizeHTML)
	assert.Equal(t, 256, cfg.WSOutboxBuffer)
	assert.Equal(t, 900, cfg.WSMaxSessionSec)
	assert.Empty(t, cfg.PyroscopeServerAddress)
}

func TestConfigLoadWithOverride(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	t.Cleanup(ResetCache)

	t.Setenv("APP_PORT", "9999")
	t.Setenv("MONGO_DB_NAME", "other")
	t.Setenv("SANITIZE_HTML", "true")
	t.Setenv("RATE_LIMIT_PER_MIN", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.AppPort)
	assert.Equal(t, "other", cfg.MongoDBName)
	assert.True(t, cfg.SanitizeHTML)
	assert.Equal(t, 120, cfg.RateLimitPerMin)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigCaching(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	t.Cleanup(ResetCache)

	cfg1, err := Load()
	require.NoError(t, err)

	// second call should hit the cache even though the env changed
	t.Setenv("APP_PORT", "5000")
	cfg2, err := Load()
	require.NoError(t, err)

	assert.Equal(t, cfg1, cfg2)
}

func TestConfigLoadRejectsInvalidEnv(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	t.Cleanup(ResetCache)

	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfigFormat)
}

// -----------------------------------------------------------------------------
// Validate() unit tests (table-driven)
// -----------------------------------------------------------------------------

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config",
			modify: func(*Config) {},
		},
		{
			name:    "invalid port - zero",
			modify:  func(c *Config) { c.AppPort = 0 },
			wantErr: ErrAppPortRange,
		},
		{
			name:    "invalid port - too high",
			modify:  func(c *Config) { c.AppPort = 70000 },
			wantErr: ErrAppPortRange,
		},
		{
			name:    "empty log level",
			modify:  func(c *Config) { c.LogLevel = "" },
			wantErr: ErrLogLevelEmpty,
		},
		{
			name:    "empty log format",
			modify:  func(c *Config) { c.LogFormat = "" },
			wantErr: ErrLogFormatEmpty,
		},
		{
			name:    "empty mongo uri",
			modify:  func(c *Config) { c.MongoURI = "" },
			wantErr: ErrMongoURIEmpty,
		},
		{
			name:    "empty mongo db name",
			modify:  func(c *Config) { c.MongoDBName = "" },
			wantErr: ErrMongoDBNameEmpty,
		},
		{
			name:    "negative rate limit",
			modify:  func(c *Config) { c.RateLimitPerMin = -1 },
			wantErr: ErrRateLimitNegative,
		},
		{
			name:    "zero outbox buffer",
			modify:  func(c *Config) { c.WSOutboxBuffer = 0 },
			wantErr: ErrWSOutboxBuffer,
		},
		{
			name:    "zero session length",
			modify:  func(c *Config) { c.WSMaxSessionSec = 0 },
			wantErr: ErrWSMaxSessionSec,
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: ErrInvalidConfigFormat,
		},
		{
			name:    "malformed pyroscope address",
			modify:  func(c *Config) { c.PyroscopeServerAddress = "not a url" },
			wantErr: ErrInvalidConfigFormat,
		},
		{
			name:   "pyroscope address set",
			modify: func(c *Config) { c.PyroscopeServerAddress = "http://pyroscope:4040" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseValidConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
