package display

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"

	"github.com/backmassage/sortbox/internal/report"
)

// Layout returns the sorted, slash-separated relative paths of dir's
// entries and, for subdirectories, their immediate children. Directories
// carry a trailing "/".
func Layout(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, e.Name())
			continue
		}
		out = append(out, e.Name()+"/")
		children, err := os.ReadDir(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		for _, c := range children {
			p := e.Name() + "/" + c.Name()
			if c.IsDir() {
				p += "/"
			}
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ApplyItems returns the layout that results from applying every Done or
// Planned item to before. Parent directories of each destination are added
// when missing.
func ApplyItems(before []string, items []report.Item) []string {
	set := make(map[string]bool, len(before))
	for _, p := range before {
		set[p] = true
	}
	for _, it := range items {
		if it.Outcome != report.Done && it.Outcome != report.Planned {
			continue
		}
		from := filepath.ToSlash(it.From)
		to := filepath.ToSlash(it.To)
		delete(set, from)
		set[to] = true
		for d := path.Dir(to); d != "." && d != "/"; d = path.Dir(d) {
			set[d+"/"] = true
		}
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// LayoutDiff renders a unified diff between two layouts of dir. It returns
// "" when they are identical.
func LayoutDiff(dir string, before, after []string) string {
	u := difflib.UnifiedDiff{
		A:        withNewlines(before),
		B:        withNewlines(after),
		FromFile: "a/" + filepath.Base(dir),
		ToFile:   "b/" + filepath.Base(dir),
		Context:  2,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return ""
	}
	return s
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSuffix(l, "\n") + "\n"
	}
	return out
}
