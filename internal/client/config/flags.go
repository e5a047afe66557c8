package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from args.
//
//	-a string   base URL of the account server
//	-t int      request timeout in seconds
//
// Only the flags listed above are parsed; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the account server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
