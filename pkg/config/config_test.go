package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, name string, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestProcess(t *testing.T) {
	// Default config
	config, err := Process([]string{})
	require.NoError(t, err)
	assert.Equal(t, StoreKindFS, config.Store.Kind)
	assert.Equal(t, "info", config.LogLevel)

	dir := t.TempDir()

	// yaml config
	{
		yaml := writeConfig(t, dir, "config.yaml", `
store:
  kind: redis
  redis:
    address: redis:6379
  ttl: 1h
`)
		config, err := Process([]string{yaml})
		require.NoError(t, err)
		assert.Equal(t, StoreKindRedis, config.Store.Kind)
		assert.Equal(t, "redis:6379", config.Store.Redis.Address)
		assert.Equal(t, time.Hour, config.Store.TTL)
		// Untouched fields keep their defaults
		assert.Equal(t, ".gdlevel/catalog.db", config.Catalog.Path)
	}

	// json config
	{
		json := writeConfig(t, dir, "config.json", `{
  "catalog": {
    "path": "/tmp/levels.db"
  }
}`)
		config, err := Process([]string{json})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/levels.db", config.Catalog.Path)
	}

	// multiple yaml, later files win
	{
		yaml1 := writeConfig(t, dir, "config1.yaml", `
logLevel: debug
store:
  directory: /first
`)
		yaml2 := writeConfig(t, dir, "config2.yaml", `
store:
  directory: /second
`)
		config, err := Process([]string{yaml1, yaml2})
		require.NoError(t, err)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "/second", config.Store.Directory)
	}
}

func TestProcessInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := Process([]string{filepath.Join(dir, "absent.yaml")})
	assert.Error(t, err)

	_, err = Process([]string{writeConfig(t, dir, "config.toml", "")})
	assert.Error(t, err)

	_, err = Process([]string{writeConfig(t, dir, "typo.yaml", "stor:\n  kind: fs\n")})
	assert.Error(t, err)

	_, err = Process([]string{writeConfig(t, dir, "kind.yaml", "store:\n  kind: s3\n")})
	assert.Error(t, err)

	_, err = Process([]string{writeConfig(t, dir, "level.yaml", "logLevel: loud\n")})
	assert.Error(t, err)

	_, err = Process([]string{writeConfig(t, dir, "redis.yaml", "store:\n  kind: redis\n  redis:\n    address: \"\"\n")})
	assert.Error(t, err)
}

func TestProcessEmptyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "empty.yaml", "")
	config, err := Process([]string{path})
	require.NoError(t, err)
	assert.Equal(t, StoreKindFS, config.Store.Kind)
}
