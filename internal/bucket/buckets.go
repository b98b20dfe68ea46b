// Package bucket turns a scan.Grouping into destination folders: it names
// one bucket per non-folder category and makes sure each exists on disk.
package bucket

import "github.com/backmassage/sortbox/internal/scan"

// Buckets maps destination folder names to the entry names that belong in
// them. Destinations iterate in the order they were first added.
type Buckets struct {
	order      []string
	members    map[string][]string
	categories map[string][]scan.Category
}

// New returns an empty Buckets.
func New() *Buckets {
	return &Buckets{
		members:    make(map[string][]string),
		categories: make(map[string][]scan.Category),
	}
}

// Add appends names from category c to destination dest. Two categories
// that resolve to the same destination share one bucket.
func (b *Buckets) Add(dest string, c scan.Category, names ...string) {
	if _, ok := b.members[dest]; !ok {
		b.order = append(b.order, dest)
	}
	b.members[dest] = append(b.members[dest], names...)
	b.categories[dest] = append(b.categories[dest], c)
}

// Destinations returns the bucket names in first-seen order.
func (b *Buckets) Destinations() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Members returns the entry names destined for dest.
func (b *Buckets) Members(dest string) []string {
	m := b.members[dest]
	out := make([]string, len(m))
	copy(out, m)
	return out
}

// Categories returns the categories that resolved to dest.
func (b *Buckets) Categories(dest string) []scan.Category {
	c := b.categories[dest]
	out := make([]scan.Category, len(c))
	copy(out, c)
	return out
}

// Len returns the number of buckets.
func (b *Buckets) Len() int { return len(b.order) }

// Size returns the total number of entries across all buckets.
func (b *Buckets) Size() int {
	n := 0
	for _, d := range b.order {
		n += len(b.members[d])
	}
	return n
}
