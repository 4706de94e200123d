package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/timevault/internal/flagx"
	"github.com/dmitrijs2005/timevault/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept "60s" style strings or integer nanoseconds. Absent keys leave the
// corresponding Config field untouched.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP string `json:"endpoint_addr_http"`
	LogLevel         string `json:"log_level"`

	Storage      string `json:"storage"`
	DatabaseDSN  string `json:"database_dsn"`
	MasterSecret string `json:"master_secret"`
	MasterSalt   string `json:"master_salt"`

	BlobBackend    string         `json:"blob_backend"`
	BlobTimeout    timex.Duration `json:"blob_timeout"`
	S3RootUser     string         `json:"s3_root_user"`
	S3RootPassword string         `json:"s3_root_password"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	S3Prefix       *string        `json:"s3_prefix"`
	GCSBucket      string         `json:"gcs_bucket"`
	GCSPrefix      *string        `json:"gcs_prefix"`
	GCSEndpoint    string         `json:"gcs_endpoint"`

	OracleBackend         string         `json:"oracle_backend"`
	OracleCommand         string         `json:"oracle_command"`
	OracleWorkDir         string         `json:"oracle_work_dir"`
	OracleAddressFile     string         `json:"oracle_address_file"`
	DrandURL              string         `json:"drand_url"`
	OracleTimeout         timex.Duration `json:"oracle_timeout"`
	OracleCheckRetries    *int           `json:"oracle_check_retries"`
	OracleRegisterRetries *int           `json:"oracle_register_retries"`
	OracleBackoff         timex.Duration `json:"oracle_backoff"`

	ViewTokenTTL                  timex.Duration `json:"view_token_ttl"`
	MaxUploadBytes                int64          `json:"max_upload_bytes"`
	RollbackOnRegistrationFailure *bool          `json:"rollback_on_registration_failure"`
	ReconcileSchedule             *string        `json:"reconcile_schedule"`

	SecretKey                  string         `json:"secret_key"`
	AdminTokenValidityDuration timex.Duration `json:"admin_token_validity_duration"`
}

// parseJson loads the file named by -c / -config, if any, over config.
// An unreadable or malformed file panics, as do bad flags.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.LogLevel, c.LogLevel)

	setString(&config.Storage, c.Storage)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MasterSecret, c.MasterSecret)
	setString(&config.MasterSalt, c.MasterSalt)

	setString(&config.BlobBackend, c.BlobBackend)
	setDuration(&config.BlobTimeout, c.BlobTimeout)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.S3Prefix != nil {
		config.S3Prefix = *c.S3Prefix
	}
	setString(&config.GCSBucket, c.GCSBucket)
	if c.GCSPrefix != nil {
		config.GCSPrefix = *c.GCSPrefix
	}
	setString(&config.GCSEndpoint, c.GCSEndpoint)

	setString(&config.OracleBackend, c.OracleBackend)
	setString(&config.OracleCommand, c.OracleCommand)
	setString(&config.OracleWorkDir, c.OracleWorkDir)
	setString(&config.OracleAddressFile, c.OracleAddressFile)
	setString(&config.DrandURL, c.DrandURL)
	setDuration(&config.OracleTimeout, c.OracleTimeout)
	if c.OracleCheckRetries != nil {
		config.OracleCheckRetries = *c.OracleCheckRetries
	}
	if c.OracleRegisterRetries != nil {
		config.OracleRegisterRetries = *c.OracleRegisterRetries
	}
	setDuration(&config.OracleBackoff, c.OracleBackoff)

	setDuration(&config.ViewTokenTTL, c.ViewTokenTTL)
	if c.MaxUploadBytes != 0 {
		config.MaxUploadBytes = c.MaxUploadBytes
	}
	if c.RollbackOnRegistrationFailure != nil {
		config.RollbackOnRegistrationFailure = *c.RollbackOnRegistrationFailure
	}
	if c.ReconcileSchedule != nil {
		config.ReconcileSchedule = *c.ReconcileSchedule
	}

	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AdminTokenValidityDuration, c.AdminTokenValidityDuration)
}
