// Package pipeline dispatches a sortbox command against the target
// directory, logs each item as it is processed and reports batch totals.
//
// Read-only commands (list, types, groups) render through the display
// package. Mutating commands (sort, rename) run through placement and
// rename respectively and are summarized in a [RunStats].
package pipeline
