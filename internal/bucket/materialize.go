package bucket

import (
	"os"
	"path/filepath"

	"github.com/backmassage/sortbox/internal/naming"
	"github.com/backmassage/sortbox/internal/report"
	"github.com/backmassage/sortbox/internal/scan"
)

// Plan derives buckets from g without touching the filesystem. The Folder
// category is skipped: existing subdirectories stay where they are.
func Plan(g *scan.Grouping) *Buckets {
	b := New()
	for _, c := range g.Categories() {
		dest, ok := naming.BucketName(c)
		if !ok {
			continue
		}
		b.Add(dest, c, g.Members(c)...)
	}
	return b
}

// Ensure creates every bucket folder under dir. Existing folders are
// accepted. The first creation failure stops the pass and is returned as a
// report.KindBucketCreate error; folders created before it are left in place.
func Ensure(dir string, b *Buckets) error {
	for _, dest := range b.Destinations() {
		if err := os.MkdirAll(filepath.Join(dir, dest), 0o755); err != nil {
			return report.Errorf(report.KindBucketCreate, dest, err)
		}
	}
	return nil
}

// Materialize groups dir with s, plans buckets, and creates them. Listing
// failures are returned unchanged.
func Materialize(s *scan.Scanner, dir string) (*Buckets, error) {
	g, err := s.Group(dir)
	if err != nil {
		return nil, err
	}
	b := Plan(g)
	if err := Ensure(dir, b); err != nil {
		return nil, err
	}
	return b, nil
}
