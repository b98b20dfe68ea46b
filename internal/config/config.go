// Package config holds runtime configuration: defaults, an optional YAML
// config file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// --- Enum types for validated string fields ---

// Command selects what sortbox does with the target directory.
type Command string

const (
	CommandList   Command = "list"   // Print entry names.
	CommandTypes  Command = "types"  // Print entry names with type and extension.
	CommandGroups Command = "groups" // Print entries grouped by category.
	CommandSort   Command = "sort"   // Move files into per-category bucket folders.
	CommandRename Command = "rename" // Normalize filenames (trim, spaces to underscores).
)

// Mutates reports whether the command changes the filesystem.
func (c Command) Mutates() bool {
	return c == CommandSort || c == CommandRename
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile], then mutated by [ParseFlags] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Positional arguments.
	Command   Command
	TargetDir string

	// Behavior.
	DryRun bool     // Plan only; create no folders, move or rename nothing.
	Ignore []string // Glob patterns for entry names to leave alone.

	// Display and logging.
	Verbose   bool
	ShowDiff  bool      // Print a unified diff of the layout before/after.
	Progress  bool      // Show a progress bar for sort/rename.
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// ConfigFile is the YAML file that was loaded, if any.
	ConfigFile string
}

// DefaultConfig returns a Config with built-in defaults. Used as the base
// before [LoadFile] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		DryRun:    false,
		Verbose:   false,
		ShowDiff:  false,
		Progress:  false,
		ColorMode: ColorAuto,
		CheckOnly: false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and ignore patterns. When not in CheckOnly
// mode, it also requires a known command and a non-empty target directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	for _, p := range c.Ignore {
		if strings.TrimSpace(p) == "" {
			return errors.New("ignore pattern must not be empty")
		}
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}

	if c.CheckOnly {
		if c.TargetDir == "" {
			return errors.New("--check needs a directory")
		}
		return nil
	}

	switch c.Command {
	case CommandList, CommandTypes, CommandGroups, CommandSort, CommandRename:
		// valid
	case "":
		return errors.New("need a command and a directory")
	default:
		return fmt.Errorf("unknown command %q (use list, types, groups, sort or rename)", c.Command)
	}
	if c.TargetDir == "" {
		return errors.New("need a command and a directory")
	}
	return nil
}
