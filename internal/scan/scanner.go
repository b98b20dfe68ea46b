package scan

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/backmassage/sortbox/internal/report"
)

// Scanner lists directories, hiding entries whose names match any of its
// ignore patterns. The zero value ignores nothing.
type Scanner struct {
	ignore []string
}

// NewScanner validates the glob patterns (doublestar syntax, matched against
// the bare entry name) and returns a Scanner using them.
func NewScanner(ignore []string) (*Scanner, error) {
	for _, p := range ignore {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return &Scanner{ignore: append([]string(nil), ignore...)}, nil
}

// Ignored reports whether name matches an ignore pattern.
func (s *Scanner) Ignored(name string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.ignore {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// List returns the names of dir's immediate entries in lexical order,
// minus ignored ones.
func (s *Scanner) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, report.Errorf(report.KindListing, dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if s.Ignored(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Classify lists dir and classifies every entry.
func (s *Scanner) Classify(dir string) ([]Entry, error) {
	names, err := s.List(dir)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(names))
	for i, name := range names {
		out[i] = Classify(dir, name)
	}
	return out, nil
}

// Group lists dir and partitions its entries by category.
func (s *Scanner) Group(dir string) (*Grouping, error) {
	entries, err := s.Classify(dir)
	if err != nil {
		return nil, err
	}
	g := NewGrouping()
	for _, e := range entries {
		g.Add(CategoryOf(e), e.Name)
	}
	return g, nil
}

// Group partitions dir's entries using a Scanner that ignores nothing.
func Group(dir string) (*Grouping, error) {
	var s Scanner
	return s.Group(dir)
}
