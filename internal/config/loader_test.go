package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https", cfg.Gateway.Scheme)
	assert.Equal(t, "api.clickatell.com", cfg.Gateway.Hostname)
	assert.Equal(t, 443, cfg.Gateway.Port)
	assert.Equal(t, 30*time.Second, cfg.Gateway.Timeout)
	assert.False(t, cfg.Gateway.DeliveryAck)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9090", cfg.Metrics.Listen)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
gateway:
  scheme: http
  hostname: localhost
  port: 8080
  username: username
  password: sw0rdf1sh
  api_id: "1234567"
  delivery_ack: true
logging:
  level: debug
  format: console
metrics:
  enabled: true
  listen: ":9999"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.Gateway.Scheme)
	assert.Equal(t, "localhost", cfg.Gateway.Hostname)
	assert.Equal(t, 8080, cfg.Gateway.Port)
	assert.Equal(t, "username", cfg.Gateway.Username)
	assert.Equal(t, "1234567", cfg.Gateway.APIID)
	assert.True(t, cfg.Gateway.DeliveryAck)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9999", cfg.Metrics.Listen)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SMS_BRIDGE_GATEWAY_PASSWORD", "fromenv")

	path := writeConfig(t, `
gateway:
  username: username
  password: fromfile
  api_id: "1234567"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Gateway.Password)
}

func TestLoad_EnvOnlyCredentials(t *testing.T) {
	t.Setenv("SMS_BRIDGE_GATEWAY_USERNAME", "username")
	t.Setenv("SMS_BRIDGE_GATEWAY_PASSWORD", "fromenv")
	t.Setenv("SMS_BRIDGE_GATEWAY_API_ID", "1234567")

	// Credentials absent from the file must still bind from the
	// environment, with or without a config file at all.
	path := writeConfig(t, "gateway:\n  hostname: localhost\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "username", cfg.Gateway.Username)
	assert.Equal(t, "fromenv", cfg.Gateway.Password)
	assert.Equal(t, "1234567", cfg.Gateway.APIID)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Gateway.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/bridge.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad scheme",
			content: "gateway:\n  scheme: gopher\n",
			wantErr: "gateway.scheme",
		},
		{
			name:    "bad port",
			content: "gateway:\n  port: 700000\n",
			wantErr: "gateway.port",
		},
		{
			name:    "bad log level",
			content: "logging:\n  level: chatty\n",
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			content: "logging:\n  format: xml\n",
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
