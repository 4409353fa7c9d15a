package cli

import (
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/footprint-tools/cobalt/internal/usage"
)

// Flags holds the process-level options of the cobalt binary.
type Flags struct {
	ConfigPath string
	LogLevel   string
	NoColor    bool
	Command    string
	Version    bool
	Help       bool
}

func newFlagSet(f *Flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("cobalt", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	// Flags end at the first command word; the rest belongs to the command.
	fs.SetInterspersed(false)

	fs.StringVar(&f.ConfigPath, "config", "", "Path to config.toml")
	fs.StringVar(&f.LogLevel, "log-level", "", "Override log_level (debug, info, warn, error)")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
	fs.StringVarP(&f.Command, "command", "c", "", "Run one command line and exit")
	fs.BoolVarP(&f.Version, "version", "v", false, "Show version")
	fs.BoolVarP(&f.Help, "help", "h", false, "Show help")
	return fs
}

// ParseFlags parses the process arguments. Positional arguments left after
// the flags are joined into a command line, so `cobalt math add 1 2` runs
// like `cobalt -c "math add 1 2"`.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args); err != nil {
		flag := badFlag(fs, args)
		if flag == "" {
			flag = err.Error()
		}
		return nil, usage.InvalidFlag(flag)
	}

	if rest := fs.Args(); len(rest) > 0 && f.Command == "" {
		f.Command = strings.Join(rest, " ")
	}
	return f, nil
}

// FlagUsages renders the flag help block.
func FlagUsages() string {
	return newFlagSet(&Flags{}).FlagUsages()
}

// badFlag returns the first flag token in args that fs rejects: an unknown
// name or a value flag with nothing after it. It stops at "--" or the
// first command word, and returns "" when every flag is accepted.
func badFlag(fs *pflag.FlagSet, args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			return ""
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		takesNext := false

		if strings.HasPrefix(arg, "--") {
			f := fs.Lookup(name)
			if f == nil {
				return arg
			}
			takesNext = f.Value.Type() != "bool" && !hasValue
		} else {
			// -abc is a cluster of shorthands; a value flag ends the cluster
			// and takes the rest, or the next argument when it is last.
			shorts := []rune(name)
			if len(shorts) == 0 {
				return arg
			}
			for j, r := range shorts {
				if r > 0x7f {
					return arg
				}
				f := fs.ShorthandLookup(string(r))
				if f == nil {
					return arg
				}
				if f.Value.Type() != "bool" {
					takesNext = j == len(shorts)-1 && !hasValue
					break
				}
			}
		}

		if takesNext {
			if i+1 >= len(args) {
				return arg
			}
			i++
		}
	}
	return ""
}
