package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/memoria/internal/flagx"
)

var knownFlags = []string{"-a", "-w", "-d", "-s", "-t", "-u", "-p", "-b", "-g", "-e", "-n", "-o", "-k", "-x"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-n string   default tenant
//	-o string   tenant origins, "host=tenant,host=tenant"
//	-k string   service key
//	-x int      maximum extensions per memory (0 = unlimited)
//
// Only the flags above are looked at, so other components may share the
// command line.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("memoria", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&cfg.EndpointAddrHTTP, "w", cfg.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	accessTTL := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.DefaultTenant, "n", cfg.DefaultTenant, "default tenant")
	origins := fs.String("o", "", "tenant origins (host=tenant,...)")
	fs.StringVar(&cfg.ServiceKey, "k", cfg.ServiceKey, "service key")
	fs.IntVar(&cfg.MaxExtensions, "x", cfg.MaxExtensions, "maximum extensions per memory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.AccessTokenValidityDuration = time.Duration(*accessTTL) * time.Minute
		case "o":
			cfg.TenantOrigins = flagx.ParseKeyValues(*origins)
		}
	})
	return nil
}
