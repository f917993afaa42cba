// internal/fasta/lines.go
package fasta

import (
	"bufio"
	"context"
	"io"
	"strings"

	"kmercount/internal/diag"
)

// ReadLines returns every line of path in order with only the terminating
// LF removed; any other byte, including a CR before the LF, stays in the
// line. Line length is bounded by memory alone. Header and blank lines are
// kept; classifying them is up to the caller. Cancellation is checked
// between lines.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, diag.Errorf(diag.ErrRead, err, "Error: Unable to open input file")
	}
	defer rc.Close()

	r := bufio.NewReaderSize(rc, 64*1024)
	var lines []string
	for {
		select {
		case <-ctx.Done():
			return nil, diag.Errorf(diag.ErrRead, ctx.Err(), "Error: Reading the input file was interrupted")
		default:
		}
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, diag.Errorf(diag.ErrRead, err, "Error: An error occurred while reading the input file")
		}
		eof := err == io.EOF
		if eof && line == "" {
			break
		}
		lines = append(lines, strings.TrimSuffix(line, "\n"))
		if eof {
			break
		}
	}
	return lines, nil
}
