//go:build !linux

package fsutil

func renameNoReplace(oldpath, newpath string) error {
	return renameChecked(oldpath, newpath)
}
