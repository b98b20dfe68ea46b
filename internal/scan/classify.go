package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind is the filesystem type of an entry as far as triage is concerned.
type Kind int

const (
	Unclassifiable Kind = iota // stat failed, broken link, device, socket, …
	Regular
	Directory
)

func (k Kind) String() string {
	switch k {
	case Regular:
		return "File"
	case Directory:
		return "Folder"
	default:
		return "Improper File"
	}
}

// Entry is one classified directory entry. Ext is the lowercase extension
// including its leading dot, or "" when the entry has none or is not a
// regular file.
type Entry struct {
	Name string
	Kind Kind
	Ext  string
}

// HasExt reports whether e is a regular file with an extension.
func (e Entry) HasExt() bool { return e.Kind == Regular && e.Ext != "" }

// Classify stats dir/name (following symlinks) and returns its Entry. Any
// resolution error yields Unclassifiable.
func Classify(dir, name string) Entry {
	e := Entry{Name: name, Kind: Unclassifiable}
	fi, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		return e
	}
	switch {
	case fi.Mode().IsRegular():
		e.Kind = Regular
		_, ext := SplitExt(name)
		e.Ext = strings.ToLower(ext)
	case fi.IsDir():
		e.Kind = Directory
	}
	return e
}

// SplitExt splits name into stem and extension. Leading dots never start an
// extension (".bashrc" has none) and a lone trailing dot is not one either
// ("file." has none). stem+ext always equals name.
func SplitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	if strings.Trim(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}
