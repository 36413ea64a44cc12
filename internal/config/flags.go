package config

import (
	"flag"
	"os"
	"time"

	"github.com/mkarpovs/accountd/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   token signing secret
//	-t int      token lifetime, minutes
//	-w int      bcrypt work factor (cost)
//	-headless   run without the interactive console
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the config-file flags.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-w", "-headless"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port for the HTTP API")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")

	tokenLifetime := fs.Int("t", int(config.TokenLifetime.Minutes()), "token lifetime (in minutes)")

	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt work factor (0 = library default)")
	fs.BoolVar(&config.Headless, "headless", config.Headless, "run the HTTP API without the console")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenLifetime = time.Duration(*tokenLifetime) * time.Minute
}
