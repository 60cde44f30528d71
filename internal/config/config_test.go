package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BASE_URL", "APP_URL", "APP_REQUIREURL", "SERVER_PORT", "CACHE_MAXAGE", "CACHE_SHAREDMAXAGE", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func load(t *testing.T, configFile string) (Config, error) {
	t.Helper()
	v, err := New(configFile)
	require.NoError(t, err)
	return Load(v)
}

func TestNewBindsBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "https://example.com")

	v, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", v.GetString("app.url"))
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	c, err := load(t, "")
	require.NoError(t, err)

	assert.Equal(t, "", c.App.URL)
	assert.False(t, c.App.RequireURL)
	assert.Equal(t, 1338, c.Server.Port)
	assert.Equal(t, 10*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, time.Hour, c.Cache.MaxAge)
	assert.Equal(t, time.Hour, c.Cache.SharedMaxAge)
	assert.Equal(t, []string{"*"}, c.CORS.AllowedOrigins)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	t.Run("BASE_URL", func(t *testing.T) {
		t.Setenv("BASE_URL", "https://example.com/")
		c, err := load(t, "")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", c.App.URL)
	})

	t.Run("APP_URL", func(t *testing.T) {
		t.Setenv("APP_URL", "https://profile.example.org")
		c, err := load(t, "")
		require.NoError(t, err)
		assert.Equal(t, "https://profile.example.org", c.App.URL)
	})

	t.Run("nested keys", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("CACHE_MAXAGE", "30m")
		c, err := load(t, "")
		require.NoError(t, err)
		assert.Equal(t, 9000, c.Server.Port)
		assert.Equal(t, 30*time.Minute, c.Cache.MaxAge)
		assert.Equal(t, time.Hour, c.Cache.SharedMaxAge)
	})
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	content := `app:
  url: https://readme.example.com
server:
  port: 8081
cors:
  allowedOrigins:
    - https://readme.example.com
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := load(t, path)
	require.NoError(t, err)
	assert.Equal(t, "https://readme.example.com", c.App.URL)
	assert.Equal(t, 8081, c.Server.Port)
	assert.Equal(t, []string{"https://readme.example.com"}, c.CORS.AllowedOrigins)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := load(t, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	t.Run("malformed url", func(t *testing.T) {
		t.Setenv("BASE_URL", "example.com")
		_, err := load(t, "")
		assert.ErrorIs(t, err, ErrInvalidBaseURL)
	})

	t.Run("required url missing", func(t *testing.T) {
		t.Setenv("APP_REQUIREURL", "true")
		_, err := load(t, "")
		assert.ErrorIs(t, err, ErrMissingBaseURL)
	})

	t.Run("required url present", func(t *testing.T) {
		t.Setenv("APP_REQUIREURL", "true")
		t.Setenv("BASE_URL", "https://example.com")
		_, err := load(t, "")
		assert.NoError(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		_, err := load(t, "")
		assert.Error(t, err)
	})
}
