package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/backmassage/sortbox/internal/config"
	"github.com/backmassage/sortbox/internal/logging"
)

// --- RunStats tests ---

func TestRunStats_OK(t *testing.T) {
	if s := (RunStats{Total: 3, Done: 3}); !s.OK() {
		t.Error("clean run should be OK")
	}
	if s := (RunStats{Total: 3, Done: 2, Failed: 1}); s.OK() {
		t.Error("run with a failure should not be OK")
	}
	if s := (RunStats{Err: os.ErrNotExist}); s.OK() {
		t.Error("aborted run should not be OK")
	}
}

// --- Read-only commands ---

func TestRun_List(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.txt")
	touch(t, dir, "a.c")

	stats, out, _ := run(t, config.CommandList, dir, nil)
	if !stats.OK() || stats.Total != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if !strings.Contains(out, "Contents of "+dir) || !strings.Contains(out, "\ta.c\n") {
		t.Errorf("listing output:\n%s", out)
	}
}

func TestRun_GroupsDoesNotMutate(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.c")
	touch(t, dir, "Makefile")

	stats, out, _ := run(t, config.CommandGroups, dir, nil)
	if !stats.OK() {
		t.Errorf("stats = %+v", stats)
	}
	if !strings.Contains(out, "No Extension:") || !strings.Contains(out, ".c:") {
		t.Errorf("groups output:\n%s", out)
	}
	if got := names(t, dir); strings.Join(got, ",") != "Makefile,a.c" {
		t.Errorf("groups changed the directory: %v", got)
	}
}

func TestRun_ListingFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	stats, _, log := run(t, config.CommandTypes, dir, nil)
	if stats.Err == nil || stats.OK() {
		t.Errorf("missing directory should abort: %+v", stats)
	}
	if !strings.Contains(log, "[ERROR] Aborted") {
		t.Errorf("log:\n%s", log)
	}
}

// --- Mutating commands ---

func TestRun_Sort(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.c")
	touch(t, dir, "b.txt")
	touch(t, dir, "Makefile")
	mkdir(t, dir, "old")

	stats, _, log := run(t, config.CommandSort, dir, nil)
	if stats.Total != 3 || stats.Done != 3 || !stats.OK() {
		t.Errorf("stats = %+v", stats)
	}
	for _, p := range []string{"DOT_C/a.c", "TXT/b.txt", "No Extension/Makefile", "old"} {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
	if !strings.Contains(log, "Done: 3 moved, 0 skipped, 0 failed") {
		t.Errorf("summary missing:\n%s", log)
	}
}

func TestRun_SortCollisionIsolated(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")
	touch(t, dir, "b.txt")
	mkdir(t, dir, "TXT")
	touch(t, filepath.Join(dir, "TXT"), "a.txt")

	stats, _, log := run(t, config.CommandSort, dir, nil)
	if stats.Done != 1 || stats.Failed != 1 || stats.OK() {
		t.Errorf("stats = %+v", stats)
	}
	if !strings.Contains(log, "[ERROR] move a.txt") {
		t.Errorf("failure not logged with entry name:\n%s", log)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.txt")); err != nil {
		t.Error("colliding source should stay in place")
	}
}

func TestRun_SortDryRunWithDiff(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.c")
	touch(t, dir, "keep.part")

	stats, out, log := run(t, config.CommandSort, dir, func(c *config.Config) {
		c.DryRun = true
		c.ShowDiff = true
		c.Ignore = []string{"*.part"}
	})
	if stats.Done != 1 || !stats.OK() {
		t.Errorf("stats = %+v", stats)
	}
	if got := names(t, dir); strings.Join(got, ",") != "a.c,keep.part" {
		t.Errorf("dry run changed the directory: %v", got)
	}
	for _, want := range []string{"-a.c", "+DOT_C/", "+DOT_C/a.c"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "PART") {
		t.Errorf("ignored entry was planned:\n%s", out)
	}
	if !strings.Contains(log, "Done: 1 planned") {
		t.Errorf("summary missing:\n%s", log)
	}
}

func TestRun_RenameWithDiff(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a b.txt")
	touch(t, dir, "a_b.txt")
	touch(t, dir, "done.txt")

	stats, out, log := run(t, config.CommandRename, dir, func(c *config.Config) {
		c.ShowDiff = true
		c.Progress = true
	})
	if stats.Total != 1 || stats.Done != 1 || !stats.OK() {
		t.Errorf("stats = %+v", stats)
	}
	if got := names(t, dir); strings.Join(got, ",") != "a_b.txt,a_b_2.txt,done.txt" {
		t.Errorf("names = %v", got)
	}
	if !strings.Contains(out, "-a b.txt") || !strings.Contains(out, "+a_b_2.txt") {
		t.Errorf("diff:\n%s", out)
	}
	if !strings.Contains(log, "Done: 1 renamed, 0 skipped, 0 failed") {
		t.Errorf("summary missing:\n%s", log)
	}
}

func TestRun_InvalidIgnore(t *testing.T) {
	stats, _, _ := run(t, config.CommandSort, t.TempDir(), func(c *config.Config) {
		c.Ignore = []string{"[bad"}
	})
	if stats.Err == nil {
		t.Error("invalid ignore pattern should abort")
	}
}

// --- Helpers ---

func run(t *testing.T, cmd config.Command, dir string, mutate func(*config.Config)) (RunStats, string, string) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Command = cmd
	cfg.TargetDir = dir
	cfg.ColorMode = config.ColorNever
	if mutate != nil {
		mutate(&cfg)
	}
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer log.Close()
	var logOut, out bytes.Buffer
	log.SetOutput(&logOut, &logOut)

	stats := Run(&cfg, log, &out)
	return stats, out.String(), logOut.String()
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func mkdir(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, name), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", name, err)
	}
}

func names(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	sort.Strings(out)
	return out
}
