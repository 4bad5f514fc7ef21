package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tqlclient/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the database HTTP API (default from Config)
//	-u string   username for sign-in
//	-p string   password for sign-in
//	-d string   default database name
//	-t int      request timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-p", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Endpoint, "a", cfg.Endpoint, "base URL of the database HTTP API")
	fs.StringVar(&cfg.Username, "u", cfg.Username, "username for sign-in")
	fs.StringVar(&cfg.Password, "p", cfg.Password, "password for sign-in")
	fs.StringVar(&cfg.Database, "d", cfg.Database, "default database name")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
