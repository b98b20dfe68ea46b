// Package check provides target directory diagnostics (--check mode) and the
// pre-run validation (CheckTarget) used before any command touches the disk.
package check

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/sortbox/internal/config"
)

// Sentinel errors returned by CheckTarget.
var (
	ErrNotFound     = errors.New("target does not exist")
	ErrNotDirectory = errors.New("target is not a directory")
	ErrNotListable  = errors.New("target cannot be listed")
	ErrNotWritable  = errors.New("target is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the --check flow against cfg.TargetDir and logs one line per
// probe. It returns false if any probe failed.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Directory Check: %s ===", cfg.TargetDir)
	dir := cfg.TargetDir

	fi, err := os.Stat(dir)
	if err != nil {
		log.Error("%s: %v", ErrNotFound, err)
		return false
	}
	log.Success("exists")
	if !fi.IsDir() {
		log.Error("%v", ErrNotDirectory)
		return false
	}
	log.Success("is a directory")

	ok := true
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Error("%s: %v", ErrNotListable, err)
		ok = false
	} else {
		log.Success("listable (%d entries)", len(entries))
	}

	if err := probeWritable(dir); err != nil {
		log.Error("%v", err)
		ok = false
	} else {
		log.Success("writable")
	}

	if cfg.ConfigFile != "" {
		log.Info("Config: %s", cfg.ConfigFile)
	} else {
		log.Debug(cfg.Verbose, "No config file loaded")
	}
	if len(cfg.Ignore) > 0 {
		log.Info("Ignoring: %v", cfg.Ignore)
	}
	return ok
}

// CheckTarget is the pre-run validation: dir must exist, be a directory and
// be listable. Mutating commands also need it to be writable.
func CheckTarget(dir string, needWrite bool) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, dir)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotListable, err)
	}
	_, err = f.Readdirnames(1)
	f.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrNotListable, err)
	}
	if needWrite {
		return probeWritable(dir)
	}
	return nil
}

// probeWritable creates and removes a hidden temp file inside dir.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".sortbox-check-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotWritable, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
