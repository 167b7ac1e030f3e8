package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/scholarshipops/scholarshipops/internal/envx"
)

// loadDotEnv exports the variables from path into the process environment.
// Variables that are already set win; a missing file is not an error.
func loadDotEnv(path string) {
	_ = godotenv.Load(path)
}

// parseEnv overlays SCHOLARSHIPOPS_* variables onto config using the env
// tags on Config. environ is nil outside tests.
//
//	SCHOLARSHIPOPS_HTTP_ADDR           HTTP bind address
//	SCHOLARSHIPOPS_DATABASE_DSN        PostgreSQL DSN
//	SCHOLARSHIPOPS_LOG_LEVEL           debug|info|warn|error
//	SCHOLARSHIPOPS_READ_TIMEOUT        Go duration, e.g. "15s"
//	SCHOLARSHIPOPS_WRITE_TIMEOUT       Go duration
//	SCHOLARSHIPOPS_SHUTDOWN_TIMEOUT    Go duration
//	SCHOLARSHIPOPS_CORS_ORIGINS        comma-separated origins
//	SCHOLARSHIPOPS_REDIS_ADDR          host:port, unset disables the queue
//	SCHOLARSHIPOPS_REDIS_PASSWORD
//	SCHOLARSHIPOPS_REDIS_DB            integer
//	SCHOLARSHIPOPS_REDIS_QUEUE_PREFIX
//	SCHOLARSHIPOPS_RUN_MIGRATIONS      true|false
func parseEnv(config *Config, environ map[string]string) error {
	if err := envx.Parse(config, environ); err != nil {
		return err
	}
	config.CORSOrigins = trimList(config.CORSOrigins)
	return nil
}

func splitList(s string) []string {
	return trimList(strings.Split(s, ","))
}

// trimList drops surrounding blanks and empty entries.
func trimList(items []string) []string {
	var out []string
	for _, item := range items {
		if p := strings.TrimSpace(item); p != "" {
			out = append(out, p)
		}
	}
	return out
}
