// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"kmercount/internal/kmer"
)

// Format names.
const (
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
	FormatJSON  = "json"
)

// WriteFunc serializes entries to w in the order given.
type WriteFunc func(w io.Writer, entries []kmer.Entry) error

// Writer registry (format → handler), populated in init() blocks.
var formats = map[string]WriteFunc{}

// Register installs fn for format (idempotent last-wins).
func Register(format string, fn WriteFunc) { formats[format] = fn }

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(formats))
	for name := range formats {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a registered writer.
func Known(format string) bool {
	_, ok := formats[format]
	return ok
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, entries []kmer.Entry) error {
	fn, ok := formats[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, entries)
}
