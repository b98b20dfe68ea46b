// Package fsutil holds filesystem primitives the standard library lacks.
package fsutil

import (
	"io/fs"
	"os"
)

// RenameNoReplace renames oldpath to newpath, failing with an error that
// matches fs.ErrExist when newpath already exists. Unlike os.Rename it never
// replaces an existing entry.
func RenameNoReplace(oldpath, newpath string) error {
	return renameNoReplace(oldpath, newpath)
}

// renameChecked is the portable fallback: check, then rename. It is only
// race-free when nothing else writes to the directory concurrently.
func renameChecked(oldpath, newpath string) error {
	if _, err := os.Lstat(newpath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrExist}
	}
	return os.Rename(oldpath, newpath)
}
