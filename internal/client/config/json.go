package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/timevault/internal/flagx"
	"github.com/dmitrijs2005/timevault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept strings like "30s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	DownloadDir        string         `json:"download_dir"`
	MaxMessageBytes    int            `json:"max_message_bytes"`
	AdminSubject       string         `json:"admin_subject"`
	AdminTokenValidity timex.Duration `json:"admin_token_validity"`
}

// parseJson overlays cfg with the file named by -c / -config. Missing keys
// keep their current values. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.MaxMessageBytes > 0 {
		cfg.MaxMessageBytes = jc.MaxMessageBytes
	}
	if jc.AdminSubject != "" {
		cfg.AdminSubject = jc.AdminSubject
	}
	if jc.AdminTokenValidity.Duration != 0 {
		cfg.AdminTokenValidity = jc.AdminTokenValidity.Duration
	}
}
