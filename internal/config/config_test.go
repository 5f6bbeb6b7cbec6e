package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "shh")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("TOKEN_TTL", "2h")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.DiscordEnabled())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadReadsYAML(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("HTTP_ADDR: \":9000\"\nJWT_SECRET: from-file\n"), 0o600)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "from-file", cfg.JWTSecret)
}

func TestValidate(t *testing.T) {
	cfg := &Config{JWTSecret: "x", DatabaseDriver: "mysql", DatabaseURL: "dsn"}
	assert.ErrorIs(t, cfg.Validate(), ErrUnsupportedDriver)

	cfg.DatabaseDriver = "postgres"
	cfg.DatabaseURL = ""
	assert.ErrorIs(t, cfg.Validate(), ErrMissingDatabaseURL)

	cfg.DatabaseURL = "postgres://localhost/tavern"
	assert.NoError(t, cfg.Validate())
}
