// Package flagx lets several loaders share os.Args without stepping on each
// other: each one picks out only the flags it owns before calling flag.Parse.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Pick returns the subset of args that belong to the named flags, keeping
// their values. Both "-a value" and "-a=value" forms are recognised; a
// following argument starting with "-" is never taken as a value.
//
//	Pick([]string{"-a", "http://x", "-v", "-t", "5"}, "-a", "-t")
//	// => []string{"-a", "http://x", "-t", "5"}
func Pick(args []string, names ...string) []string {
	owned := make(map[string]bool, len(names))
	for _, n := range names {
		owned[n] = true
	}

	picked := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, found := strings.Cut(arg, "="); found {
			if owned[name] {
				picked = append(picked, arg)
			}
			continue
		}

		if !owned[arg] {
			continue
		}
		picked = append(picked, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			picked = append(picked, args[i+1])
			i++
		}
	}

	return picked
}

// ConfigPath extracts the JSON config file given via -c or -config.
// The last occurrence wins; an empty string means none was given.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(Pick(args, "-c", "-config", "--config"))

	return path
}
