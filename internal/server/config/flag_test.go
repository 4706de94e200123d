package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	defaults := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name        string
		args        []string
		mutate      func(c *Config)
		expectPanic bool
	}{
		{
			name:   "no flags",
			args:   []string{"cmd"},
			mutate: func(c *Config) {},
		},
		{
			name: "short and long flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-h", ":9999", "-d", "db", "-s", "secret",
				"--storage", "postgres", "-blob=s3", "-s3-bucket", "bucket",
				"-oracle", "exec", "-oracle-dir", "/contracts", "-oracle-timeout", "5s",
				"-view-ttl", "30s", "-rollback=false", "-reconcile", "@every 10s",
			},
			mutate: func(c *Config) {
				c.EndpointAddrGRPC = "127.0.0.1:9090"
				c.EndpointAddrHTTP = ":9999"
				c.DatabaseDSN = "db"
				c.SecretKey = "secret"
				c.Storage = StoragePostgres
				c.BlobBackend = BlobS3
				c.S3Bucket = "bucket"
				c.OracleBackend = OracleExec
				c.OracleWorkDir = "/contracts"
				c.OracleTimeout = 5 * time.Second
				c.ViewTokenTTL = 30 * time.Second
				c.RollbackOnRegistrationFailure = false
				c.ReconcileSchedule = "@every 10s"
			},
		},
		{
			name:   "unknown flags are ignored",
			args:   []string{"cmd", "-c", "cfg.json", "-x", "1", "-oracle-check-retries", "4"},
			mutate: func(c *Config) { c.OracleCheckRetries = 4 },
		},
		{
			name:        "bad duration panics",
			args:        []string{"cmd", "-view-ttl", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			expected := defaults()
			tt.mutate(expected)
			assert.Empty(t, cmp.Diff(expected, config))
		})
	}
}
