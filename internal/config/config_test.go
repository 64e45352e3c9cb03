package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "memory", cfg.StoreDriver)
		assert.True(t, cfg.SeedOnStart)
		assert.True(t, cfg.Playground)
		assert.False(t, cfg.MutationsRequireAuth)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 10, cfg.GraphQLMaxDepth)
	})

	t.Run("env file", func(t *testing.T) {
		dir := t.TempDir()
		env := "PORT=9090\nSTORE_DRIVER=sqlite\nDATABASE_URL=games.db\nTOKEN_TTL=1h\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

		cfg, err := Load(dir)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "sqlite", cfg.StoreDriver)
		assert.Equal(t, "games.db", cfg.DatabaseURL)
		assert.Equal(t, time.Hour, cfg.TokenTTL)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9090\n"), 0o600))
		t.Setenv("PORT", "7070")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Port)
	})

	t.Run("invalid driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")

		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown STORE_DRIVER")
	})
}

func TestValidate(t *testing.T) {
	base := Config{StoreDriver: "memory", TokenTTL: time.Hour}

	cfg := base
	assert.NoError(t, cfg.Validate())

	cfg = base
	cfg.StoreDriver = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = base
	cfg.MutationsRequireAuth = true
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())
}
