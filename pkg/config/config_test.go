package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, c.Server.Port)
	assert.Equal(t, 30*time.Minute, c.Cache.TTL)
	assert.Equal(t, "file", c.Cache.Backend)
	assert.Equal(t, "./cache.json", c.Cache.File)
	assert.Equal(t, "https://www.banxico.org.mx/SieAPIRest/service/v1", c.Banxico.BaseURL)
	assert.False(t, c.Metrics.Enabled)
}

func TestLoadYAMLKeepsExplicitValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
server:
  port: 8081
cache:
  backend: redis
  ttl: 5m
banxico:
  token: from-file
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, c.Server.Port)
	assert.Equal(t, "redis", c.Cache.Backend)
	assert.Equal(t, 5*time.Minute, c.Cache.TTL)
	assert.Equal(t, "from-file", c.Banxico.Token)
	assert.Equal(t, "sade", c.Cache.Redis.Prefix)
	assert.Equal(t, 10, c.Cache.Redis.PoolSize)
	assert.Equal(t, 2, c.Cache.Redis.MinIdleConns)
	assert.Equal(t, 30*time.Second, c.Cache.Redis.PoolTimeout)
}

func TestLoadYAMLRedisPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
cache:
  backend: redis
  redis:
    addr: redis:6379
    pool_size: 4
    min_idle_conns: 1
    pool_timeout: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", c.Cache.Redis.Addr)
	assert.Equal(t, 4, c.Cache.Redis.PoolSize)
	assert.Equal(t, 1, c.Cache.Redis.MinIdleConns)
	assert.Equal(t, 3*time.Second, c.Cache.Redis.PoolTimeout)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("BANXICO_TOKEN", "secret")
	t.Setenv("CACHE_FILE", "/tmp/indicadores.json")

	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 4000, c.Server.Port)
	assert.Equal(t, "secret", c.Banxico.Token)
	assert.Equal(t, "/tmp/indicadores.json", c.Cache.File)
}

func TestLoadWithEnvRequiresToken(t *testing.T) {
	t.Setenv("BANXICO_TOKEN", "")

	_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Token")
}

func TestLoadWithEnvRejectsBadPort(t *testing.T) {
	t.Setenv("BANXICO_TOKEN", "secret")
	t.Setenv("PORT", "abc")

	_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	c.Banxico.Token = "secret"
	c.Cache.Backend = "memcached"

	assert.Error(t, c.Validate())
}
