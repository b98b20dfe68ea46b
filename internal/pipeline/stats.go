package pipeline

import "github.com/backmassage/sortbox/internal/report"

// RunStats tracks aggregate counters across a batch run. Done counts both
// applied and, on dry run, planned items.
type RunStats struct {
	Total   int
	Done    int
	Skipped int
	Failed  int
	// Err is set when the batch failed before any item was processed
	// (listing or bucket creation).
	Err error
}

// OK reports whether the run finished with no failed item and no batch error.
func (s *RunStats) OK() bool {
	return s.Err == nil && s.Failed == 0
}

func statsOf(b report.Batch) RunStats {
	return RunStats{
		Total:   len(b.Items),
		Done:    b.Count(report.Done) + b.Count(report.Planned),
		Skipped: b.Count(report.Skipped),
		Failed:  b.Count(report.Failed),
	}
}
