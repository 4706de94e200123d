package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "vaultctl.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_endpoint_addr": "vault.example:443",
		"request_timeout": "15s",
		"admin_token_validity": 30000000000
	}`), 0o600))

	os.Args = []string{"vaultctl", "-c", path, "download", "abc"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "vault.example:443", cfg.ServerEndpointAddr)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.AdminTokenValidity)
	assert.Equal(t, "downloads", cfg.DownloadDir, "absent keys keep defaults")
}

func TestParseJson_NoFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"vaultctl", "reconcile"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	want := &Config{}
	want.LoadDefaults()
	assert.Equal(t, want, cfg)
}

func TestParseJson_Malformed(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	os.Args = []string{"vaultctl", "-config", path}

	assert.Panics(t, func() { parseJson(&Config{}) })
}
