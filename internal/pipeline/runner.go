package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/sortbox/internal/config"
	"github.com/backmassage/sortbox/internal/display"
	"github.com/backmassage/sortbox/internal/logging"
	"github.com/backmassage/sortbox/internal/placement"
	"github.com/backmassage/sortbox/internal/rename"
	"github.com/backmassage/sortbox/internal/report"
	"github.com/backmassage/sortbox/internal/scan"
)

// Run is the top-level entry point. It builds the scanner from cfg.Ignore,
// runs cfg.Command against cfg.TargetDir and returns aggregate stats.
// Reports and diffs are written to out.
func Run(cfg *config.Config, log *logging.Logger, out io.Writer) RunStats {
	s, err := scan.NewScanner(cfg.Ignore)
	if err != nil {
		log.Error("Invalid ignore pattern: %v", err)
		return RunStats{Err: err}
	}
	dir := cfg.TargetDir

	switch cfg.Command {
	case config.CommandList:
		names, err := s.List(dir)
		if err != nil {
			return batchFailed(log, err)
		}
		display.WriteListing(out, dir, names)
		return RunStats{Total: len(names), Done: len(names)}
	case config.CommandTypes:
		entries, err := s.Classify(dir)
		if err != nil {
			return batchFailed(log, err)
		}
		display.WriteTypes(out, dir, entries)
		return RunStats{Total: len(entries), Done: len(entries)}
	case config.CommandGroups:
		g, err := s.Group(dir)
		if err != nil {
			return batchFailed(log, err)
		}
		display.WriteGroups(out, dir, g)
		return RunStats{Total: g.Size(), Done: g.Size()}
	case config.CommandSort, config.CommandRename:
		return runMutating(cfg, log, out, s)
	}
	err = fmt.Errorf("unknown command %q", cfg.Command)
	log.Error("%v", err)
	return RunStats{Err: err}
}

// runMutating runs sort or rename with optional progress bar and layout diff.
func runMutating(cfg *config.Config, log *logging.Logger, out io.Writer, s *scan.Scanner) RunStats {
	dir := cfg.TargetDir
	verb := "moved"
	if cfg.Command == config.CommandRename {
		verb = "renamed"
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: nothing will be changed")
	}

	var before []string
	if cfg.ShowDiff {
		before, _ = display.Layout(dir)
	}

	bar := newBar(cfg, s, dir)
	onItem := func(it report.Item) {
		logItem(cfg, log, it, bar != nil)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	var (
		batch report.Batch
		err   error
	)
	if cfg.Command == config.CommandSort {
		var dests []string
		b, bt, perr := placement.Run(s, dir, placement.Options{DryRun: cfg.DryRun, OnItem: onItem})
		batch, err = bt, perr
		if b != nil {
			dests = b.Destinations()
		}
		for _, d := range dests {
			if cfg.DryRun {
				log.Info("[DRY] Would create %s/ (%d entries)", d, len(b.Members(d)))
			} else {
				log.Debug(cfg.Verbose, "Bucket %s/: %d entries", d, len(b.Members(d)))
			}
		}
	} else {
		batch, err = rename.Run(s, dir, rename.Options{DryRun: cfg.DryRun, OnItem: onItem})
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return batchFailed(log, err)
	}

	if cfg.ShowDiff && before != nil {
		after := display.ApplyItems(before, batch.Items)
		if !cfg.DryRun {
			if live, lerr := display.Layout(dir); lerr == nil {
				after = live
			}
		}
		if d := display.LayoutDiff(dir, before, after); d != "" {
			fmt.Fprint(out, d)
		} else {
			log.Info("Layout unchanged")
		}
	}

	stats := statsOf(batch)
	logSummary(cfg, log, &stats, verb)
	return stats
}

// newBar returns a progress bar sized to the current listing, or nil when
// progress is off or the listing fails.
func newBar(cfg *config.Config, s *scan.Scanner, dir string) *progressbar.ProgressBar {
	if !cfg.Progress {
		return nil
	}
	names, err := s.List(dir)
	if err != nil || len(names) == 0 {
		return nil
	}
	return progressbar.NewOptions(len(names),
		progressbar.OptionSetDescription(string(cfg.Command)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
}

// logItem logs one processed item. Applied items drop to debug while a
// progress bar is drawn so the bar stays readable.
func logItem(cfg *config.Config, log *logging.Logger, it report.Item, quiet bool) {
	note := ""
	if it.Reason != "" {
		note = " (" + it.Reason + ")"
	}
	switch it.Outcome {
	case report.Done:
		if quiet {
			log.Debug(cfg.Verbose, "%s -> %s%s", it.From, it.To, note)
		} else {
			log.Success("%s -> %s%s", it.From, it.To, note)
		}
	case report.Planned:
		log.Info("[DRY] %s -> %s%s", it.From, it.To, note)
	case report.Skipped:
		log.Skip("%s: %s", it.Name, it.Reason)
	case report.Failed:
		log.Error("%v", it.Err)
	}
}

func batchFailed(log *logging.Logger, err error) RunStats {
	log.Error("Aborted: %v", err)
	return RunStats{Err: err}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats, verb string) {
	if cfg.DryRun {
		verb = "planned"
	}
	line := fmt.Sprintf("Done: %d %s, %d skipped, %d failed", stats.Done, verb, stats.Skipped, stats.Failed)
	if stats.Failed > 0 {
		log.Warn("%s", line)
		return
	}
	log.Success("%s", line)
}
