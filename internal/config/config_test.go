package config

import (
	"testing"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "DB_DSN", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "SESSION_COOKIE_NAME",
	"SESSION_COOKIE_SECURE", "BCRYPT_COST", "BUSINESS_TIMEZONE", "SEED_SAMPLE_DATA",
	"LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	got, err := FromEnv()
	require.NoError(t, err)

	want := Config{
		Port:                 "8080",
		SessionTTL:           24 * time.Hour,
		SessionSweepInterval: 10 * time.Minute,
		SessionCookieName:    middleware.DefaultSessionCookie,
		BcryptCost:           12,
		SeedData:             true,
		LogLevel:             logger.Info,
		LogFormat:            logger.FormatText,
		AppName:              "pet-adoption",
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Config{}, "Location")); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, time.Local, got.Location)
	assert.Equal(t, ":8080", got.Addr())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://u:p@localhost/pets")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("BUSINESS_TIMEZONE", "UTC")
	t.Setenv("SEED_SAMPLE_DATA", "false")
	t.Setenv("LOG_FORMAT", "json")

	got, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", got.Addr())
	assert.Equal(t, "postgres://u:p@localhost/pets", got.DBDSN)
	assert.Equal(t, 4, got.BcryptCost)
	assert.False(t, got.SeedData)
	assert.Equal(t, logger.FormatJSON, got.LogFormat)
	assert.Equal(t, "UTC", got.Location.String())

	ck := got.Cookie()
	assert.True(t, ck.Secure)
	assert.Equal(t, 2*time.Hour, ck.TTL)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SESSION_TTL", "forever"},
		{"SESSION_TTL", "-1h"},
		{"SESSION_SWEEP_INTERVAL", "0s"},
		{"BCRYPT_COST", "twelve"},
		{"SESSION_COOKIE_SECURE", "maybe"},
		{"SEED_SAMPLE_DATA", "si"},
		{"BUSINESS_TIMEZONE", "Mars/Olympus"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}
