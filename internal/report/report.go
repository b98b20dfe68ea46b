// Package report defines the error taxonomy and per-item outcome types shared
// by the scan, placement, and rename stages.
//
// Batch-level failures (an unlistable directory, a bucket that cannot be
// created) are returned as *Error. Per-entry failures never escape as errors;
// they are recorded as Failed items in a Batch so callers can tell a fully
// successful run from a partial one.
package report

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown         Kind = iota
	KindListing              // directory cannot be enumerated
	KindClassification       // a single entry cannot be stat'd
	KindBucketCreate         // destination folder cannot be created
	KindMove                 // a single entry cannot be relocated
	KindRenameCollision      // target name already occupied
	KindRename               // any other rename error
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindListing:         "listing",
	KindClassification:  "classification",
	KindBucketCreate:    "bucket create",
	KindMove:            "move",
	KindRenameCollision: "rename collision",
	KindRename:          "rename",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error carries a Kind, the affected name (entry, bucket, or directory), and
// the underlying cause.
type Error struct {
	Kind Kind
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error wrapping err.
func Errorf(kind Kind, name string, err error) *Error {
	return &Error{Kind: kind, Name: name, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Outcome is the result of processing one entry.
type Outcome int

const (
	Done    Outcome = iota // applied to the filesystem
	Planned                // dry run: would be applied
	Skipped                // nothing to do, or deliberately not applied
	Failed                 // attempted and failed; Err is set
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Planned:
		return "planned"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Item records what happened to one entry. From and To are paths relative
// to the batch directory.
type Item struct {
	Name    string
	From    string
	To      string
	Outcome Outcome
	Reason  string // why it was skipped, or a note on how it was applied
	Err     error  // set for Failed
}

// Batch collects items in processing order.
type Batch struct {
	Items []Item
}

// Add appends it to the batch.
func (b *Batch) Add(it Item) {
	b.Items = append(b.Items, it)
}

// Count returns the number of items with outcome o.
func (b *Batch) Count(o Outcome) int {
	n := 0
	for _, it := range b.Items {
		if it.Outcome == o {
			n++
		}
	}
	return n
}

// Failures returns the failed items.
func (b *Batch) Failures() []Item {
	var out []Item
	for _, it := range b.Items {
		if it.Outcome == Failed {
			out = append(out, it)
		}
	}
	return out
}

// Complete reports whether no item failed.
func (b *Batch) Complete() bool {
	return b.Count(Failed) == 0
}
