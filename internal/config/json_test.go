package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeConfigFile(t, `{
		"api": {"address": "http://localhost:9191", "request_timeout": "20s"},
		"auth": {"token_sign_key": "key", "token_issuer": "fincaudita", "token_duration": "12h"},
		"storage": {
			"db": {"dsn": "postgres://localhost/fincaudita"},
			"session": {"path": "/tmp/session.db"}
		},
		"server": {"http_address": ":9191", "request_timeout": "30s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9191", cfg.API.Address)
	assert.Equal(t, 20*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "key", cfg.Auth.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/fincaudita", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/session.db", cfg.Storage.Session.Path)
	assert.Equal(t, ":9191", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSONPartialFile(t *testing.T) {
	path := writeConfigFile(t, `{"api": {"address": "http://remoto:8080"}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "http://remoto:8080", cfg.API.Address)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseJSONMissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSONBrokenFile(t *testing.T) {
	path := writeConfigFile(t, `{broken`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDurationUnmarshal(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"pronto"`), &d))
}

func TestDurationMarshal(t *testing.T) {
	raw, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(raw))
}

func TestBuilderMergePriority(t *testing.T) {
	// mergo keeps the first non-zero value, so earlier sources win.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{Address: "http://primero:1"}},
		&StructuredConfig{API: API{Address: "http://segundo:2"}, Server: Server{HTTPAddress: ":9191"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://primero:1", cfg.API.Address)
	assert.Equal(t, ":9191", cfg.Server.HTTPAddress)
}
