// Package scan lists the immediate entries of a directory, classifies each
// one by filesystem type and extension, and partitions the names into
// categories.
//
// Types:
//   - Kind, Entry (one classified entry; ephemeral, recomputed per scan)
//   - Category (tagged variant: extension, no extension, improper, folder)
//   - Grouping (insertion-ordered Category → names map)
//
// Functions:
//   - Classify(dir, name) → Entry; never fails, degrades to Unclassifiable.
//   - (*Scanner).List / Group; listing failures return *report.Error with
//     report.KindListing.
package scan
