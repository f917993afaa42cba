// internal/kmer/rank.go
package kmer

import "sort"

// Entry is one ranked (k-mer, count) pair.
type Entry struct {
	Kmer  string
	Count int
}

// Less orders entries by count descending, then k-mer ascending.
// Keys are unique in a Counts map, so the order is total.
func Less(a, b Entry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Kmer < b.Kmer
}

// Rank returns every k-mer in c exactly once, ordered by Less.
func Rank(c Counts) []Entry {
	out := make([]Entry, 0, len(c))
	for k, n := range c {
		out = append(out, Entry{Kmer: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}
