// Package flagx lets several parsers share one command line. Each parser
// picks out the flags it owns and leaves the rest for the next one.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// ConfigFlags are the flags that select the JSON config file.
var ConfigFlags = []string{"-c", "-config"}

// SplitArgs partitions args into the allowed flags (with their values) and
// everything else, preserving order in both.
//
// Recognized forms:
//
//	-c conf.json
//	-config=conf.json
//
// A separate value is taken only when the next argument does not start with
// "-".
func SplitArgs(args []string, allowedFlags []string) (matched, rest []string) {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				matched = append(matched, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			rest = append(rest, arg)
			continue
		}

		matched = append(matched, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			matched = append(matched, args[i+1])
			i++
		}
	}

	return matched, rest
}

// FilterArgs returns only the allowed flags of args and their values.
func FilterArgs(args []string, allowedFlags []string) []string {
	matched, _ := SplitArgs(args, allowedFlags)
	return matched
}

// ConfigPath extracts the config file path given with -c or -config.
// The last occurrence wins; "" means no file was requested.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, ConfigFlags))

	return path
}
