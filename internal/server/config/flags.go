package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-m string   storage type: postgres | memory
//	-s string   token HMAC secret key
//	-t int      token validity, seconds
//	-b int      bcrypt cost
//	-w int      shutdown timeout, seconds
//
// Only the flags above are taken from os.Args; -c/-config belongs to the
// JSON loader. Durations are given as whole seconds.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-m", "-s", "-t", "-b", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.StorageType, "m", config.StorageType, "storage type (postgres|memory)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Seconds()), "token validity (in seconds)")
	shutdownTimeout := fs.Int("w", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Second
	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
