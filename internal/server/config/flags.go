package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/timevault/internal/flagx"
)

// parseFlags overlays command-line flags on config. Only flags defined here
// are looked at; everything else in os.Args is ignored.
//
// Short forms exist for the most common settings. Booleans must be written
// as -rollback=false.
//
//	-a string   gRPC bind address
//	-h string   HTTP bind address
//	-d string   PostgreSQL DSN
//	-s string   admin JWT secret
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "h", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "admin JWT secret key")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "debug, info, warn or error")

	fs.StringVar(&config.Storage, "storage", config.Storage, "custody storage: memory or postgres")
	fs.StringVar(&config.MasterSecret, "master-secret", config.MasterSecret, "secret for wrapping custody keys")
	fs.StringVar(&config.MasterSalt, "master-salt", config.MasterSalt, "salt for wrapping custody keys")

	fs.StringVar(&config.BlobBackend, "blob", config.BlobBackend, "blob backend: memory, s3 or gcs")
	fs.DurationVar(&config.BlobTimeout, "blob-timeout", config.BlobTimeout, "per-call blob timeout")
	fs.StringVar(&config.S3RootUser, "s3-user", config.S3RootUser, "S3 access key")
	fs.StringVar(&config.S3RootPassword, "s3-password", config.S3RootPassword, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "s3-bucket", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "s3-region", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "s3-endpoint", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.GCSBucket, "gcs-bucket", config.GCSBucket, "GCS bucket")
	fs.StringVar(&config.GCSEndpoint, "gcs-endpoint", config.GCSEndpoint, "GCS emulator endpoint")

	fs.StringVar(&config.OracleBackend, "oracle", config.OracleBackend, "oracle backend: ledger, exec or drand")
	fs.StringVar(&config.OracleCommand, "oracle-cmd", config.OracleCommand, "oracle command line")
	fs.StringVar(&config.OracleWorkDir, "oracle-dir", config.OracleWorkDir, "oracle working directory")
	fs.StringVar(&config.DrandURL, "drand-url", config.DrandURL, "drand HTTP relay")
	fs.DurationVar(&config.OracleTimeout, "oracle-timeout", config.OracleTimeout, "per-call oracle timeout")
	fs.IntVar(&config.OracleCheckRetries, "oracle-check-retries", config.OracleCheckRetries, "extra attempts for a failed check")

	fs.DurationVar(&config.ViewTokenTTL, "view-ttl", config.ViewTokenTTL, "view token lifetime")
	fs.Int64Var(&config.MaxUploadBytes, "max-upload", config.MaxUploadBytes, "maximum upload size in bytes")
	fs.BoolVar(&config.RollbackOnRegistrationFailure, "rollback", config.RollbackOnRegistrationFailure, "roll back uploads whose registration fails")
	fs.StringVar(&config.ReconcileSchedule, "reconcile", config.ReconcileSchedule, "reconciler cron spec, empty to disable")

	args := flagx.FilterArgs(os.Args[1:], flagx.FlagNames(fs))

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
