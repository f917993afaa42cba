package writers

import (
	"bufio"
	"io"
	"os"

	"kmercount/internal/diag"
)

// Output is a buffered destination. Close flushes before closing the file.
type Output struct {
	*bufio.Writer
	c io.Closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Create opens path for writing, truncating it. "-" writes to stdout.
func Create(path string, stdout io.Writer) (*Output, error) {
	if path == "-" {
		return &Output{Writer: bufio.NewWriter(stdout), c: nopCloser{}}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, diag.Errorf(diag.ErrWrite, err, "Error: Unable to open output file")
	}
	return &Output{Writer: bufio.NewWriter(fh), c: fh}, nil
}

// Close flushes buffered data and closes the destination.
// Both errors are reported; the flush error wins.
func (o *Output) Close() error {
	ferr := o.Flush()
	cerr := o.c.Close()
	if ferr != nil {
		return ferr
	}
	return cerr
}
