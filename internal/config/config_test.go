package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://paste.rs/", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 500_000, c.MaxTextLength)
	assert.Equal(t, 3, c.RetryAttempts)
	assert.Equal(t, time.Second, c.RetryDelay)
	assert.Equal(t, 50, c.HistoryCapacity)
	assert.Equal(t, "sqlite", c.StoreType)
	assert.True(t, c.NotifyEnabled)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "empty base url", mutate: func(c *Config) { c.APIBaseURL = "" }, wantErr: true},
		{name: "unknown store type", mutate: func(c *Config) { c.StoreType = "postgres" }, wantErr: true},
		{name: "sqlite without path", mutate: func(c *Config) { c.SQLitePath = "" }, wantErr: true},
		{name: "redis without addr", mutate: func(c *Config) { c.StoreType = "redis"; c.RedisAddr = "" }, wantErr: true},
		{name: "memory ignores paths", mutate: func(c *Config) { c.StoreType = "memory"; c.SQLitePath = "" }},
		{name: "zero capacity", mutate: func(c *Config) { c.HistoryCapacity = 0 }, wantErr: true},
		{name: "negative retries", mutate: func(c *Config) { c.RetryAttempts = -1 }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadJsonFile_OverlaysOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://localhost:9999/",
		"request_timeout": "5s",
		"retry_attempts": 0,
		"store_type": "memory",
		"notify": false
	}`), 0o600))

	var c Config
	c.LoadDefaults()
	require.NoError(t, loadJsonFile(&c, path))

	assert.Equal(t, "http://localhost:9999/", c.APIBaseURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, 0, c.RetryAttempts, "explicit zero must override the default")
	assert.Equal(t, "memory", c.StoreType)
	assert.False(t, c.NotifyEnabled)

	// untouched fields keep their defaults
	assert.Equal(t, 500_000, c.MaxTextLength)
	assert.Equal(t, 50, c.HistoryCapacity)
}

func TestLoadJsonFile_Errors(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Error(t, loadJsonFile(&c, filepath.Join(t.TempDir(), "missing.json")))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{nope"), 0o600))
	assert.Error(t, loadJsonFile(&c, bad))
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("SHAREPAD_API_BASE_URL", "http://127.0.0.1:8080/")
	t.Setenv("SHAREPAD_REQUEST_TIMEOUT", "10s")
	t.Setenv("SHAREPAD_HISTORY_CAPACITY", "7")
	t.Setenv("SHAREPAD_STORE_TYPE", "redis")
	t.Setenv("SHAREPAD_REDIS_DB", "2")
	t.Setenv("SHAREPAD_NOTIFY", "0")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://127.0.0.1:8080/", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 7, c.HistoryCapacity)
	assert.Equal(t, "redis", c.StoreType)
	assert.Equal(t, 2, c.RedisDB)
	assert.False(t, c.NotifyEnabled)
}

func TestParseEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("SHAREPAD_REQUEST_TIMEOUT", "soon")
	t.Setenv("SHAREPAD_HISTORY_CAPACITY", "many")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 50, c.HistoryCapacity)
}
