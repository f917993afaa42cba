// Package writers turns ranked k-mer entries into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSON, JSONL).
//   • Counting and ranking stay in internal/kmer; this package never reorders entries.
//   • Formats are looked up in a registry populated from init() blocks.
package writers
