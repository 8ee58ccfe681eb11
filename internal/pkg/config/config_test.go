package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg := InitConfig("")

	assert.Equal(t, "pioneer-funding", cfg.App.Name)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, 7*24*60, cfg.JWT.Expiration)
	assert.Equal(t, 60, cfg.JWT.LinkTTL)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, 24, cfg.Stripe.DedupTTL)
	assert.Equal(t, 5, cfg.Stripe.BreakerFailures)
	assert.Equal(t, 30, cfg.Stripe.BreakerCooldown)
	assert.Equal(t, "nats", cfg.Events.Driver)
}

func TestInitConfig_LocalLoadsDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STRIPE_WEBHOOK_SECRET=whsec_test\nSERVER_PORT=8088\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that are already set, so clear them
	// and restore them when the test finishes.
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")
	t.Setenv("SERVER_PORT", "")
	os.Unsetenv("STRIPE_WEBHOOK_SECRET")
	os.Unsetenv("SERVER_PORT")

	cfg := InitConfig(path)

	assert.Equal(t, "whsec_test", cfg.Stripe.WebhookSecret)
	assert.Equal(t, 8088, cfg.Server.Port)
}

func TestGetEnvHelpers(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T)
	}{
		{
			name:  "invalid int falls back to default",
			value: "abc",
			check: func(t *testing.T) { assert.Equal(t, 7, GetEnvAsInt("PF_TEST_VAR", 7)) },
		},
		{
			name:  "valid int is parsed",
			value: "42",
			check: func(t *testing.T) { assert.Equal(t, 42, GetEnvAsInt("PF_TEST_VAR", 7)) },
		},
		{
			name:  "invalid bool falls back to default",
			value: "maybe",
			check: func(t *testing.T) { assert.True(t, GetEnvAsBool("PF_TEST_VAR", true)) },
		},
		{
			name:  "valid bool is parsed",
			value: "false",
			check: func(t *testing.T) { assert.False(t, GetEnvAsBool("PF_TEST_VAR", true)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PF_TEST_VAR", tt.value)
			tt.check(t)
		})
	}
}
