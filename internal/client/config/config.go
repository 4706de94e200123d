// Package config holds vaultctl settings: defaults, an optional JSON file
// and command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings for vaultctl.
type Config struct {
	// ServerEndpointAddr is host:port of the gateway gRPC endpoint.
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	// DownloadDir receives downloads; a relative path is taken from the
	// working directory.
	DownloadDir string
	// MaxMessageBytes bounds gRPC messages in both directions.
	MaxMessageBytes int
	// AdminSubject is the JWT subject used for admin commands.
	AdminSubject       string
	AdminTokenValidity time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 2 * time.Minute
	c.DownloadDir = "downloads"
	c.MaxMessageBytes = 96 << 20
	c.AdminSubject = "vaultctl"
	c.AdminTokenValidity = time.Minute
}

// LoadConfig constructs a Config from defaults, JSON and flags, and returns
// the arguments left after the flags: the command and its operands.
func LoadConfig() (*Config, []string) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	args := parseFlags(cfg)
	return cfg, args
}
