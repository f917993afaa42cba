// internal/kmer/count.go
package kmer

// Counts maps a k-mer to its number of occurrences.
type Counts map[string]int

// WarningKind classifies a skipped sequence line.
type WarningKind int

const (
	// InvalidSequence marks a line containing a byte outside the alphabet.
	InvalidSequence WarningKind = iota + 1
	// TooShort marks a valid line shorter than K.
	TooShort
)

func (k WarningKind) String() string {
	switch k {
	case InvalidSequence:
		return "invalid_sequence"
	case TooShort:
		return "too_short"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal data-quality finding.
// Line is 1-based; Text is the full offending line.
type Warning struct {
	Kind WarningKind
	Line int
	Text string
}

// Stats summarizes one Count pass.
type Stats struct {
	Lines     int // all input lines
	Headers   int // blank or '>' lines
	Sequences int // lines that contributed windows
	Invalid   int
	TooShort  int
	Windows   int // equals the sum of all counts
}

// Count extracts every overlapping K-length window from the valid sequence
// lines and tallies them. Headers and blank lines are skipped silently;
// invalid and too-short lines are skipped and reported to warn in input
// order. warn may be nil.
func Count(lines []string, warn func(Warning)) (Counts, Stats) {
	counts := make(Counts)
	var st Stats
	report := func(kind WarningKind, i int, line string) {
		if warn != nil {
			warn(Warning{Kind: kind, Line: i + 1, Text: line})
		}
	}

	for i, line := range lines {
		st.Lines++
		switch {
		case IsHeader(line):
			st.Headers++
			continue
		case !Valid(line):
			st.Invalid++
			report(InvalidSequence, i, line)
			continue
		case len(line) < K:
			st.TooShort++
			report(TooShort, i, line)
			continue
		}

		st.Sequences++
		for j := 0; j+K <= len(line); j++ {
			counts[line[j:j+K]]++
			st.Windows++
		}
	}
	return counts, st
}
