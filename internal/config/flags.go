package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/samba/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (upper case, so they never collide with the per-command
// action flags parsed elsewhere):
//
//	-H string   database host
//	-P int      database port
//	-U string   database user
//	-D string   database name
//
// Arguments are first filtered to the flags handled here via
// flagx.FilterArgs to avoid collisions with other flag sets.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-H", "-P", "-U", "-D"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseHost, "H", cfg.DatabaseHost, "database host")
	fs.IntVar(&cfg.DatabasePort, "P", cfg.DatabasePort, "database port")
	fs.StringVar(&cfg.DatabaseUser, "U", cfg.DatabaseUser, "database user")
	fs.StringVar(&cfg.DatabaseName, "D", cfg.DatabaseName, "database name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
