package naming

import (
	"strconv"
	"sync"

	"github.com/backmassage/sortbox/internal/scan"
)

// Candidate returns the n-th name to try for name. For n < 2 it is name
// itself; otherwise "_n" is inserted before the extension. The counter is
// always applied to the stem of name, so suffixes never accumulate.
//
//	Candidate("a.txt", 1) → "a.txt"
//	Candidate("a.txt", 2) → "a_2.txt"
//	Candidate("a.txt", 10) → "a_10.txt"
func Candidate(name string, n int) string {
	if n < 2 {
		return name
	}
	stem, ext := scan.SplitExt(name)
	return stem + "_" + strconv.Itoa(n) + ext
}

// Resolver tracks names claimed by owners within a single run and resolves
// duplicates with [Candidate] suffixes. It is used by dry runs, where a
// planned rename has not yet occupied its target on disk. All methods are
// goroutine-safe.
type Resolver struct {
	mu       sync.Mutex
	owners   map[string]string // claimed name → owner that holds it
	counters map[string]int    // requested name → next counter to try
}

// NewResolver creates a ready-to-use resolver.
func NewResolver() *Resolver {
	return &Resolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the first candidate for requested that is neither claimed
// by another owner nor reported by exists, and claims it for owner. exists
// may be nil.
func (r *Resolver) Resolve(owner, requested string, exists func(string) bool) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	free := func(name string) bool {
		if o, ok := r.owners[name]; ok && o != owner {
			return false
		}
		return exists == nil || !exists(name)
	}

	if free(requested) {
		r.owners[requested] = owner
		return requested
	}

	n := r.counters[requested]
	if n < 2 {
		n = 2
	}
	for {
		candidate := Candidate(requested, n)
		if free(candidate) {
			r.counters[requested] = n + 1
			r.owners[candidate] = owner
			return candidate
		}
		n++
	}
}
