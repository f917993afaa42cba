package writers

import (
	"encoding/json"
	"io"

	"kmercount/internal/kmer"
)

// EntryV1 is the stable JSON/JSONL schema for one ranked k-mer.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type EntryV1 struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}

func init() {
	Register(FormatJSONL, WriteJSONL)
	Register(FormatJSON, WriteJSON)
}

func toV1(entries []kmer.Entry) []EntryV1 {
	out := make([]EntryV1, len(entries))
	for i, e := range entries {
		out[i] = EntryV1{Kmer: e.Kmer, Count: e.Count}
	}
	return out
}

// WriteJSONL emits one JSON object per line.
func WriteJSONL(w io.Writer, entries []kmer.Entry) error {
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(EntryV1{Kmer: e.Kmer, Count: e.Count}); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON emits a single indented array.
func WriteJSON(w io.Writer, entries []kmer.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toV1(entries))
}
