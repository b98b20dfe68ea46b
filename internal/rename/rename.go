// Package rename normalizes the filenames of regular files in a directory
// without ever overwriting an existing entry.
package rename

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/sortbox/internal/fsutil"
	"github.com/backmassage/sortbox/internal/naming"
	"github.com/backmassage/sortbox/internal/report"
	"github.com/backmassage/sortbox/internal/scan"
)

// Options controls a rename run.
type Options struct {
	// DryRun resolves final names against the current directory and names
	// already planned in this run, but renames nothing.
	DryRun bool
	// OnItem, when set, is called after each renamed, planned, skipped or
	// failed file. Files whose name is already normalized are not reported.
	OnItem func(report.Item)
}

// Run normalizes every regular file directly inside dir. On collision the
// name is retried as stem_2.ext, stem_3.ext, … until a free one is found.
// Only a listing failure is returned as an error; per-file failures are
// recorded in the batch and the run continues.
func Run(s *scan.Scanner, dir string, opts Options) (report.Batch, error) {
	var batch report.Batch
	names, err := s.List(dir)
	if err != nil {
		return batch, err
	}

	var resolver *naming.Resolver
	if opts.DryRun {
		resolver = naming.NewResolver()
	}

	for _, name := range names {
		if scan.Classify(dir, name).Kind != scan.Regular {
			continue
		}
		target := naming.Normalize(name)
		if target == name {
			continue
		}

		it := report.Item{Name: name, From: name, To: target}
		switch {
		case target == "":
			it.Outcome = report.Skipped
			it.Reason = "name is blank after normalization"
		case opts.DryRun:
			it.To = resolver.Resolve(name, target, func(n string) bool {
				_, err := os.Lstat(filepath.Join(dir, n))
				return err == nil
			})
			it.Outcome = report.Planned
			if it.To != target {
				it.Reason = target + " is taken"
			}
		default:
			renameOne(dir, target, &it)
		}

		batch.Add(it)
		if opts.OnItem != nil {
			opts.OnItem(it)
		}
	}
	return batch, nil
}

// renameOne tries each candidate for target until one is free. Any error
// other than "target exists" abandons the file.
func renameOne(dir, target string, it *report.Item) {
	src := filepath.Join(dir, it.Name)
	for n := 1; ; n++ {
		candidate := naming.Candidate(target, n)
		err := fsutil.RenameNoReplace(src, filepath.Join(dir, candidate))
		if err == nil {
			it.To = candidate
			it.Outcome = report.Done
			if n > 1 {
				it.Reason = target + " is taken"
			}
			return
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		it.Outcome = report.Failed
		it.Err = report.Errorf(report.KindRename, it.Name, err)
		return
	}
}
