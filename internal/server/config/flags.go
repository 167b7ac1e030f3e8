package config

import (
	"flag"
	"io"

	"github.com/scholarshipops/scholarshipops/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":8787")
//	-d string     PostgreSQL DSN
//	-l string     log level
//	-o string     comma-separated CORS origins
//	-r string     Redis address for trigger jobs
//	-m bool       run migrations at startup
//
// Only the flags above are picked out of args with flagx.FilterArgs, so the
// -c config flag and unrelated arguments are left alone.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-o", "-r", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.Func("o", "comma-separated CORS origins", func(v string) error {
		config.CORSOrigins = splitList(v)
		return nil
	})
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "Redis address for trigger jobs")
	fs.BoolVar(&config.RunMigrations, "m", config.RunMigrations, "run migrations at startup")

	return fs.Parse(args)
}
