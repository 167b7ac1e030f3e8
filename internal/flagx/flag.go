// Package flagx lets several components parse their own subset of the
// process arguments without tripping over each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the arguments that belong to allowedFlags, together
// with their values. Both "-f value" and "-f=value" forms are recognised.
// A token starting with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFile extracts the JSON config path given with -c or -config.
// It returns "" when neither flag is present; the last occurrence wins.
func ConfigFile(args []string) string {
	var config string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "path to JSON config file")
	fs.StringVar(&config, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return config
}
