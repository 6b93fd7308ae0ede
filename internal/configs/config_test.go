package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"findhome-bot/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "token-123")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.Discord.Token)
	assert.Equal(t, "!", cfg.Discord.CommandPrefix)
	assert.Equal(t, "findhome", cfg.Discord.CommandName)
	assert.Equal(t, 60*time.Second, cfg.Session.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, constants.RealtorSearchURL, cfg.Provider.SearchURL)
	assert.Equal(t, constants.DefaultEventsExchange, cfg.RabbitMQ.Exchange)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfig_RequiresToken(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "  ")

	_, err := LoadConfig(missingEnvFile(t))
	assert.Error(t, err)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.env")
	content := "DISCORD_BOT_TOKEN=from-file\nSESSION_TIMEOUT=90s\nCORS_ALLOWED_ORIGINS=http://a.test, ,http://b.test\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv не перезаписывает существующие переменные
	for _, key := range []string{"DISCORD_BOT_TOKEN", "SESSION_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Discord.Token)
	assert.Equal(t, 90*time.Second, cfg.Session.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadConfig_BadValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "t")
	t.Setenv("PROVIDER_TIMEOUT", "soon")
	t.Setenv("HTTP_ENABLED", "maybe")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.True(t, cfg.HTTP.Enabled)
}

func TestLoadConfig_RejectsNonPositiveSessionTimeout(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "t")
	t.Setenv("SESSION_TIMEOUT", "0s")

	_, err := LoadConfig(missingEnvFile(t))
	assert.Error(t, err)
}

func TestLoadConfig_FluentBitWithoutHostIsDisabled(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "t")
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)
}
