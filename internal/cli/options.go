// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"dicestats/internal/version"
)

// Defaults are the pre-flag default values, after environment overrides
// have been applied by the caller.
type Defaults struct {
	Input  string
	OutDir string
}

// Options holds all CLI flags plus the positional arguments (command
// word first). It is threaded explicitly into every pipeline stage.
type Options struct {
	Input  string
	OutDir string // reserved for future file output; currently inert

	Version bool

	Args []string
}

// Usage installs the usage/help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – die-roll statistics\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [options] <command> [args]\n\n", name)
		fmt.Fprintf(out, "Run \"%s help\" to list commands.\n\n", name)
		fmt.Fprintln(out, "Examples:")
		fmt.Fprintf(out, "  %s basic  -i ./path/to/rolls.txt\n", name)
		fmt.Fprintf(out, "  %s chi_sq -i ./rolls/\n\n", name)
		fmt.Fprintln(out, "Options:")
		fmt.Fprintf(out, "  -i, --input string    die file, directory, or glob pattern [%s]\n", def("input"))
		fmt.Fprintf(out, "  -o, --outDir string   directory for future file output (reserved) [%s]\n", def("outDir"))
		fmt.Fprintln(out, "  -v, --version         print the program version")
		fmt.Fprintln(out, "  -h                    show this help message")
	}
}

// ParseArgs registers and parses all flags, returning an Options struct.
// argv must contain only flag-like arguments; positionals are split off
// beforehand (see cliutil) and attached to Options by the caller.
func ParseArgs(fs *flag.FlagSet, argv []string, defs Defaults) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "input", defs.Input, "die file, directory, or glob pattern")
	fs.StringVar(&opt.Input, "i", defs.Input, "shorthand for --input")
	fs.StringVar(&opt.OutDir, "outDir", defs.OutDir, "directory for future file output (reserved)")
	fs.StringVar(&opt.OutDir, "o", defs.OutDir, "shorthand for --outDir")
	fs.BoolVar(&opt.Version, "version", false, "print the program version")
	fs.BoolVar(&opt.Version, "v", false, "shorthand for --version")
	fs.BoolVar(&help, "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	return opt, nil
}
