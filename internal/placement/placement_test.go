package placement

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/sortbox/internal/bucket"
	"github.com/backmassage/sortbox/internal/report"
	"github.com/backmassage/sortbox/internal/scan"
)

func TestRun_SortsScenario(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"report.txt", "notes.txt", "photo.JPG", "a.c", "README"} {
		touch(t, dir, n)
	}
	mkdir(t, dir, "old")
	touch(t, filepath.Join(dir, "old"), "keep.txt")

	_, batch, err := Run(nil, dir, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !batch.Complete() {
		t.Fatalf("unexpected failures: %+v", batch.Failures())
	}
	if got := batch.Count(report.Done); got != 5 {
		t.Errorf("Done = %d, want 5", got)
	}

	for _, p := range []string{
		"TXT/report.txt",
		"TXT/notes.txt",
		"JPG/photo.JPG",
		"DOT_C/a.c",
		"No Extension/README",
		"old/keep.txt",
	} {
		assertExists(t, filepath.Join(dir, filepath.FromSlash(p)))
	}
	for _, n := range []string{"report.txt", "notes.txt", "photo.JPG", "a.c", "README"} {
		assertMissing(t, filepath.Join(dir, n))
	}
	if fi, err := os.Stat(filepath.Join(dir, "old")); err != nil || !fi.IsDir() {
		t.Error("old/ should remain a top-level folder")
	}
}

func TestRun_RerunIsSafe(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")

	if _, _, err := Run(nil, dir, Options{}); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	touch(t, dir, "b.txt")
	_, batch, err := Run(nil, dir, Options{})
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if len(batch.Items) != 1 || batch.Items[0].Name != "b.txt" {
		t.Errorf("second run items = %+v, want only b.txt", batch.Items)
	}
	assertExists(t, filepath.Join(dir, "TXT", "a.txt"))
	assertExists(t, filepath.Join(dir, "TXT", "b.txt"))
}

func TestExecute_CollisionInBucketDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	mkdir(t, dir, "TXT")
	write(t, filepath.Join(dir, "TXT", "notes.txt"), "old")
	write(t, filepath.Join(dir, "notes.txt"), "new")
	touch(t, dir, "other.txt")

	_, batch, err := Run(nil, dir, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	failures := batch.Failures()
	if len(failures) != 1 || failures[0].Name != "notes.txt" {
		t.Fatalf("failures = %+v, want notes.txt only", failures)
	}
	if !errors.Is(failures[0].Err, fs.ErrExist) {
		t.Errorf("failure cause = %v, want fs.ErrExist", failures[0].Err)
	}
	if report.KindOf(failures[0].Err) != report.KindMove {
		t.Errorf("failure kind = %v, want move", report.KindOf(failures[0].Err))
	}
	if got := read(t, filepath.Join(dir, "TXT", "notes.txt")); got != "old" {
		t.Errorf("bucket file overwritten: %q", got)
	}
	assertExists(t, filepath.Join(dir, "notes.txt"))
	assertExists(t, filepath.Join(dir, "TXT", "other.txt"))
}

func TestExecute_VanishedSourceContinues(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.txt")

	b := bucket.New()
	b.Add("TXT", scan.Extension(".txt"), "gone.txt", "b.txt")
	mkdir(t, dir, "TXT")

	var seen []string
	batch := Execute(dir, b, Options{OnItem: func(it report.Item) { seen = append(seen, it.Name) }})

	if len(seen) != 2 {
		t.Errorf("OnItem called %d times, want 2", len(seen))
	}
	if batch.Count(report.Failed) != 1 || batch.Count(report.Done) != 1 {
		t.Errorf("outcomes = %+v", batch.Items)
	}
	if !errors.Is(batch.Failures()[0].Err, fs.ErrNotExist) {
		t.Errorf("cause = %v, want fs.ErrNotExist", batch.Failures()[0].Err)
	}
	assertExists(t, filepath.Join(dir, "TXT", "b.txt"))
}

func TestRun_DryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.c")
	touch(t, dir, "b.txt")

	b, batch, err := Run(nil, dir, Options{DryRun: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("planned %d buckets, want 2", b.Len())
	}
	if batch.Count(report.Planned) != 2 {
		t.Errorf("Planned = %d, want 2", batch.Count(report.Planned))
	}
	assertMissing(t, filepath.Join(dir, "DOT_C"))
	assertMissing(t, filepath.Join(dir, "TXT"))
	assertExists(t, filepath.Join(dir, "a.c"))
}

func TestRun_BucketFailureMovesNothing(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "TXT") // occupies the bucket name
	touch(t, dir, "a.txt")

	_, batch, err := Run(nil, dir, Options{})
	if report.KindOf(err) != report.KindBucketCreate {
		t.Fatalf("err = %v, want bucket create failure", err)
	}
	if len(batch.Items) != 0 {
		t.Errorf("items = %+v, want none", batch.Items)
	}
	assertExists(t, filepath.Join(dir, "a.txt"))
}

func TestRun_ListingFailure(t *testing.T) {
	_, _, err := Run(nil, filepath.Join(t.TempDir(), "nope"), Options{})
	if report.KindOf(err) != report.KindListing {
		t.Errorf("err = %v, want listing failure", err)
	}
}

// --- Helpers ---

func touch(t *testing.T, dir, name string) {
	t.Helper()
	write(t, filepath.Join(dir, name), "")
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func mkdir(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, name), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", name, err)
	}
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected %s to be absent (err=%v)", path, err)
	}
}
