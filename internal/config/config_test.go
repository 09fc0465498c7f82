package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	t.Setenv("POSTGRESQL_URL", "postgres://localhost:5432/inventory")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("TEST_MODE", "true")

	config, err := Load()

	require.Nil(t, err)
	require.Equal(t, uint16(8000), config.Port)
	require.True(t, config.IsTestMode)
	require.Equal(t, 10, config.BcryptHasherCost)
	require.Equal(t, uint(24), config.PasswordResetValidDurationHours)
	require.Equal(t, "product_sales", config.RabbitmqProductSalesQueue)
	require.Equal(t, []string{"*"}, config.AllowedOrigins)
	require.Equal(t, "", config.RabbitmqURL)
	require.Nil(t, config.SentryDsn)
	require.Equal(t, 20*time.Second, config.ShutdownTimeout)
	require.Equal(t, 3*time.Second, config.RabbitmqReconnectDelay)
}

func TestLoadValues(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("PASSWORD_RESET_VALID_DURATION_HOURS", "0")
	t.Setenv("ALLOWED_ORIGINS", "https://a.test,https://b.test")
	t.Setenv("AWS_EMAIL_SENDER", "noreply@test.test")
	t.Setenv("SENTRY_DSN", "https://key@sentry.test/1")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	config, err := Load()

	require.Nil(t, err)
	require.Equal(t, uint16(9000), config.Port)
	require.Equal(t, uint(0), config.PasswordResetValidDurationHours)
	require.Equal(t, []string{"https://a.test", "https://b.test"}, config.AllowedOrigins)
	require.NotNil(t, config.SentryDsn)
	require.Equal(t, "sentry.test", config.SentryDsn.Host)
	require.Equal(t, 5*time.Second, config.ShutdownTimeout)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("SECRET", "")
	t.Setenv("TEST_MODE", "true")

	_, err := Load()

	require.NotNil(t, err)
}

func TestLoadEmailSenderRequiredOutsideTestMode(t *testing.T) {
	setRequired(t)
	t.Setenv("TEST_MODE", "false")
	t.Setenv("AWS_EMAIL_SENDER", "")

	_, err := Load()

	require.NotNil(t, err)
}

func TestLoadMigrateConfig(t *testing.T) {
	t.Setenv("POSTGRESQL_URL", "postgres://localhost:5432/inventory")
	t.Setenv("MIGRATIONS_PATH", "/srv/migrations")

	config, err := LoadMigrateConfig()

	require.Nil(t, err)
	require.Equal(t, "postgres://localhost:5432/inventory", config.PostgresqlURL)
	require.Equal(t, "/srv/migrations", config.MigrationsPath)
}
