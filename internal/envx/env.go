// Package envx decodes SCHOLARSHIPOPS_* environment variables into config
// structs tagged with `env:"NAME"`. Variables that are not set leave
// the field as it was, so env parsing can overlay earlier config layers.
package envx

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const Prefix = "SCHOLARSHIPOPS_"

// Parse overlays the environment onto dst, which must be a pointer to a
// struct. A nil environ reads the process environment.
func Parse(dst any, environ map[string]string) error {
	if err := env.ParseWithOptions(dst, env.Options{
		Prefix:      Prefix,
		Environment: environ,
	}); err != nil {
		return fmt.Errorf("env config error: %w", err)
	}
	return nil
}
