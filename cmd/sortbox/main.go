// Command sortbox is the CLI entrypoint for the sortbox directory triage tool.
//
// It parses flags, validates configuration and the target directory, and
// either runs directory diagnostics (--check) or the requested command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/backmassage/sortbox/internal/check"
	"github.com/backmassage/sortbox/internal/config"
	"github.com/backmassage/sortbox/internal/display"
	"github.com/backmassage/sortbox/internal/logging"
	"github.com/backmassage/sortbox/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "sortbox: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "sortbox: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sortbox: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	if cfg.CheckOnly {
		display.PrintBanner(os.Stdout)
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if err := check.CheckTarget(cfg.TargetDir, cfg.Command.Mutates() && !cfg.DryRun); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Debug(cfg.Verbose, "sortbox v%s (%s): %s %s", version, commit, cfg.Command, cfg.TargetDir)
	if cfg.ConfigFile != "" {
		log.Debug(cfg.Verbose, "Config: %s", cfg.ConfigFile)
	}

	// Phase 3: Run the command.
	stats := pipeline.Run(&cfg, log, os.Stdout)
	if !stats.OK() {
		return 1
	}
	return 0
}
