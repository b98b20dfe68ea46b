// Package logging provides the leveled console logger with an optional
// append-only file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/backmassage/sortbox/internal/config"
	"github.com/backmassage/sortbox/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	file     *os.File
	filePath string
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := &Logger{out: os.Stdout, errOut: os.Stderr}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// SetOutput redirects console output. ERROR lines go to errOut, the rest to
// out. The log file sink is unaffected.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = out
	l.errOut = errOut
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, style *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+style.Sprint("["+level+"]")+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Skip logs at SKIP level (magenta) for entries deliberately left alone.
func (l *Logger) Skip(format string, args ...interface{}) {
	l.line("SKIP", term.Magenta, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
