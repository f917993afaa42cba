// internal/kmer/alphabet.go
package kmer

// K is the k-mer length counted by this package.
const K = 4

// HeaderMarker starts a non-sequence annotation line.
const HeaderMarker = '>'

// bases is the accepted nucleotide alphabet. Matching is case-sensitive.
var bases = [256]bool{'A': true, 'C': true, 'G': true, 'T': true}

// Valid reports whether every byte of s is one of A, C, G, T.
// The empty string is valid.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if !bases[s[i]] {
			return false
		}
	}
	return true
}

// IsHeader reports whether line carries no sequence data (blank or '>'-prefixed).
func IsHeader(line string) bool {
	return len(line) == 0 || line[0] == HeaderMarker
}
