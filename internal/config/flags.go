package config

// This file implements CLI flag parsing and help text.
// The YAML config file is applied before flags are defined so that flag
// defaults reflect it and explicit flags override it.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (e.g. unknown
// flag, unreadable config file, wrong positional args).
func ParseFlags(cfg *Config, args []string, version string) error {
	if err := loadConfigFile(cfg, args); err != nil {
		return err
	}

	fs := flag.NewFlagSet("sortbox", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so values from DefaultConfig() and the config file hold unless set.
	var negated negatedFlags

	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "sortbox v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a setting (noColor) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
	configPath  string // consumed by loadConfigFile; registered so Parse accepts it
}

// defineBehaviorFlags registers -n/--dry-run and -i/--ignore.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Plan only; do not create, move or rename")
	fs.BoolVar(&cfg.DryRun, "n", cfg.DryRun, "Same as --dry-run")
	fs.Var(&patternList{&cfg.Ignore}, "ignore", "Glob for entry names to leave alone (repeatable)")
	fs.Var(&patternList{&cfg.Ignore}, "i", "Same as --ignore")
}

// defineDisplayFlags registers --color, --no-color, verbose, --diff, --progress, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.ShowDiff, "diff", cfg.ShowDiff, "Show layout diff for sort/rename")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show a progress bar for sort/rename")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run directory diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --config, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.StringVar(&n.configPath, "config", "", "YAML config file")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Command and TargetDir. With --check only the
// directory is expected.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		if len(args) != 1 {
			return fmt.Errorf("--check needs exactly one directory")
		}
		cfg.TargetDir = NormalizeDirArg(args[0])
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("need exactly a command and a directory")
	}
	cfg.Command = Command(strings.ToLower(args[0]))
	cfg.TargetDir = NormalizeDirArg(args[1])
	return nil
}

// loadConfigFile applies --config when given, otherwise the default config
// path if it exists.
func loadConfigFile(cfg *Config, args []string) error {
	if path := configPathFromArgs(args); path != "" {
		return LoadFile(cfg, path, false)
	}
	path, err := DefaultConfigPath()
	if err != nil {
		return nil
	}
	return LoadFile(cfg, path, true)
}

// valueFlags are the flags that consume the following argument.
var valueFlags = map[string]bool{"config": true, "log": true, "l": true, "ignore": true, "i": true}

// configPathFromArgs scans args for -config/--config ahead of flag parsing.
// Scanning stops at the first positional argument, as flag.Parse does.
func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || a == "-" || !strings.HasPrefix(a, "-") {
			return ""
		}
		name := strings.TrimLeft(a, "-")
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
		if strings.Contains(name, "=") || !valueFlags[name] {
			continue
		}
		if i+1 >= len(args) {
			return ""
		}
		if name == "config" {
			return args[i+1]
		}
		i++
	}
	return ""
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "sortbox v" + version + " - directory triage by file type"},
		{"", ""},
		{"  sortbox [OPTIONS] <command> <dir>", ""},
		{"  sortbox --check <dir>", ""},
		{"", ""},
		{"Commands", ""},
		{"  list", "List entries"},
		{"  types", "List entries with type and extension"},
		{"  groups", "List entries grouped by category"},
		{"  sort", "Move files into per-type folders (TXT, DOT_C, No Extension, …)"},
		{"  rename", "Trim names and replace spaces with underscores"},
		{"", ""},
		{"Behavior", ""},
		{"  -n, --dry-run", "Plan only; do not create, move or rename"},
		{"  -i, --ignore <glob>", "Leave matching entries alone (repeatable)"},
		{"", ""},
		{"Display", ""},
		{"  --diff", "Show layout diff for sort/rename"},
		{"  --progress", "Show a progress bar for sort/rename"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML config file (default: user config dir)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Directory diagnostics (exists, listable, writable)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// patternList is a repeatable string flag that appends to a slice.
type patternList struct{ p *[]string }

func (l *patternList) String() string {
	if l.p == nil {
		return ""
	}
	return strings.Join(*l.p, ",")
}

func (l *patternList) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("empty ignore pattern")
	}
	*l.p = append(*l.p, s)
	return nil
}
