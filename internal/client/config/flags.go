package config

import (
	"flag"
	"os"
)

// parseFlags reads the flags that precede the command and returns the rest.
//
//	-a string   gateway gRPC address
//	-t duration per-request timeout
//	-o string   download directory
//	-c string   JSON config file (read by parseJson)
func parseFlags(cfg *Config) []string {
	fs := flag.NewFlagSet("vaultctl", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the gateway")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "directory for downloaded files")
	fs.StringVar(&cfg.AdminSubject, "admin", cfg.AdminSubject, "subject for admin tokens")

	// consumed by parseJson; declared so Parse accepts them
	fs.String("c", "", "path to config file")
	fs.String("config", "", "path to config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}

	return fs.Args()
}
