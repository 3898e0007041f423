// Package index maps clues to the suspect they incriminate.
//
// The table has a fixed number of buckets chosen at construction and
// resolves collisions by chaining. It is filled once when a scenario is
// loaded and only read afterwards.
package index

import "sort"

// DefaultBuckets is the bucket count used when none is configured
const DefaultBuckets = 10

// entry is one clue/suspect pair in a bucket chain
type entry struct {
	clue    string
	suspect string
	next    *entry
}

// HashIndex is a fixed-size chained hash table from clue to suspect
type HashIndex struct {
	buckets []*entry
	count   int
}

// New creates an index with the given number of buckets.
// A non-positive count falls back to DefaultBuckets.
func New(buckets int) *HashIndex {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}
	return &HashIndex{
		buckets: make([]*entry, buckets),
	}
}

// Bucket returns the bucket a clue hashes to: the sum of its code points
// modulo the bucket count
func (h *HashIndex) Bucket(clue string) int {
	sum := 0
	for _, r := range clue {
		sum += int(r)
	}
	return sum % len(h.buckets)
}

// Insert prepends a clue/suspect pair to its bucket chain.
// Keys are not deduplicated: a later insert of the same clue shadows the earlier one.
func (h *HashIndex) Insert(clue, suspect string) {
	i := h.Bucket(clue)
	h.buckets[i] = &entry{
		clue:    clue,
		suspect: suspect,
		next:    h.buckets[i],
	}
	h.count++
}

// Lookup returns the suspect for a clue
func (h *HashIndex) Lookup(clue string) (string, bool) {
	for e := h.buckets[h.Bucket(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// Len returns the number of stored entries, shadowed ones included
func (h *HashIndex) Len() int {
	return h.count
}

// BucketCount returns the fixed number of buckets
func (h *HashIndex) BucketCount() int {
	return len(h.buckets)
}

// Suspects returns the distinct suspect names some visible clue points at,
// sorted. A suspect named only by shadowed entries is left out.
func (h *HashIndex) Suspects() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	h.Entries(func(_, suspect string) {
		if !seen[suspect] {
			seen[suspect] = true
			names = append(names, suspect)
		}
	})
	sort.Strings(names)
	return names
}

// Entries calls fn for every visible clue/suspect pair, bucket by bucket.
// Shadowed entries are skipped.
func (h *HashIndex) Entries(fn func(clue, suspect string)) {
	for _, head := range h.buckets {
		seen := make(map[string]bool)
		for e := head; e != nil; e = e.next {
			if seen[e.clue] {
				continue
			}
			seen[e.clue] = true
			fn(e.clue, e.suspect)
		}
	}
}
