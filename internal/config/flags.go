package config

import (
	"flag"
	"os"

	"github.com/sharepad/sharepad/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   base URL of the paste service
//	-s string   history store type: memory, sqlite or redis
//	-d string   path to the sqlite history database
//	-l string   listen address for the agent HTTP API
//	-n int      history capacity (entry count)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-s", "-d", "-l", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the paste service")
	fs.StringVar(&cfg.StoreType, "s", cfg.StoreType, "history store type (memory, sqlite, redis)")
	fs.StringVar(&cfg.SQLitePath, "d", cfg.SQLitePath, "path to the sqlite history database")
	fs.StringVar(&cfg.HTTPAddr, "l", cfg.HTTPAddr, "listen address for the agent HTTP API")
	fs.IntVar(&cfg.HistoryCapacity, "n", cfg.HistoryCapacity, "history capacity (entry count)")

	_ = fs.Parse(args)
}
