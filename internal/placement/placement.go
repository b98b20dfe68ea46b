// Package placement moves classified entries into their bucket folders.
//
// A failure to move one entry is recorded and the batch continues; only a
// listing or bucket-creation failure stops the run before any move.
package placement

import (
	"path/filepath"

	"github.com/backmassage/sortbox/internal/bucket"
	"github.com/backmassage/sortbox/internal/fsutil"
	"github.com/backmassage/sortbox/internal/report"
	"github.com/backmassage/sortbox/internal/scan"
)

// Options controls a placement run.
type Options struct {
	// DryRun plans moves without creating buckets or moving anything.
	DryRun bool
	// OnItem, when set, is called after each entry is processed.
	OnItem func(report.Item)
}

// Execute moves dir/name to dir/dest/name for every bucket member. An entry
// already present in the destination is not overwritten; the move fails for
// that entry alone.
func Execute(dir string, b *bucket.Buckets, opts Options) report.Batch {
	var batch report.Batch
	for _, dest := range b.Destinations() {
		for _, name := range b.Members(dest) {
			it := report.Item{
				Name: name,
				From: name,
				To:   filepath.Join(dest, name),
			}
			switch {
			case opts.DryRun:
				it.Outcome = report.Planned
			default:
				err := fsutil.RenameNoReplace(filepath.Join(dir, name), filepath.Join(dir, dest, name))
				if err != nil {
					it.Outcome = report.Failed
					it.Err = report.Errorf(report.KindMove, name, err)
				} else {
					it.Outcome = report.Done
				}
			}
			batch.Add(it)
			if opts.OnItem != nil {
				opts.OnItem(it)
			}
		}
	}
	return batch
}

// Run groups dir, ensures its buckets (skipped on dry run), and executes the
// moves. A non-nil error means nothing was moved.
func Run(s *scan.Scanner, dir string, opts Options) (*bucket.Buckets, report.Batch, error) {
	var b *bucket.Buckets
	if opts.DryRun {
		g, err := s.Group(dir)
		if err != nil {
			return nil, report.Batch{}, err
		}
		b = bucket.Plan(g)
	} else {
		var err error
		b, err = bucket.Materialize(s, dir)
		if err != nil {
			return nil, report.Batch{}, err
		}
	}
	return b, Execute(dir, b, opts), nil
}
