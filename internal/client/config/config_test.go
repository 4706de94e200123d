package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 2*time.Minute, c.RequestTimeout)
	assert.Equal(t, "downloads", c.DownloadDir)
	assert.Equal(t, "vaultctl", c.AdminSubject)
}

func TestLoadConfig_ReturnsCommand(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"vaultctl", "-a", "gw:50051", "upload", "notes.txt", "3600"}

	cfg, args := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "gw:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, []string{"upload", "notes.txt", "3600"}, args)
}
