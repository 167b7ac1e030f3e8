package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scholarshipops/scholarshipops/internal/flagx"
	"github.com/scholarshipops/scholarshipops/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration, so both "15s" and integer nanoseconds are accepted.
type JsonConfig struct {
	HTTPAddr         string         `json:"http_addr"`
	DatabaseDSN      string         `json:"database_dsn"`
	LogLevel         string         `json:"log_level"`
	ReadTimeout      timex.Duration `json:"read_timeout"`
	WriteTimeout     timex.Duration `json:"write_timeout"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
	CORSOrigins      []string       `json:"cors_origins"`
	RedisAddr        string         `json:"redis_addr"`
	RedisPassword    string         `json:"redis_password"`
	RedisDB          int            `json:"redis_db"`
	RedisQueuePrefix string         `json:"redis_queue_prefix"`
	RunMigrations    bool           `json:"run_migrations"`
}

// parseJson overlays the file named by -c / -config onto config. Keys absent
// from the file keep their current value. No flag means no file.
func parseJson(config *Config, args []string) error {

	// try flags
	jsonConfigFile := flagx.ConfigFile(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{
		HTTPAddr:         config.HTTPAddr,
		DatabaseDSN:      config.DatabaseDSN,
		LogLevel:         config.LogLevel,
		ReadTimeout:      timex.Duration{Duration: config.ReadTimeout},
		WriteTimeout:     timex.Duration{Duration: config.WriteTimeout},
		ShutdownTimeout:  timex.Duration{Duration: config.ShutdownTimeout},
		CORSOrigins:      config.CORSOrigins,
		RedisAddr:        config.RedisAddr,
		RedisPassword:    config.RedisPassword,
		RedisDB:          config.RedisDB,
		RedisQueuePrefix: config.RedisQueuePrefix,
		RunMigrations:    config.RunMigrations,
	}

	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	config.HTTPAddr = c.HTTPAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.LogLevel = c.LogLevel
	config.ReadTimeout = c.ReadTimeout.Duration
	config.WriteTimeout = c.WriteTimeout.Duration
	config.ShutdownTimeout = c.ShutdownTimeout.Duration
	config.CORSOrigins = c.CORSOrigins
	config.RedisAddr = c.RedisAddr
	config.RedisPassword = c.RedisPassword
	config.RedisDB = c.RedisDB
	config.RedisQueuePrefix = c.RedisQueuePrefix
	config.RunMigrations = c.RunMigrations

	return nil
}
