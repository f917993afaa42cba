package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of the k-mer table went
// away (EPIPE or a closed pipe), as when "kmercount in.fa - | head" stops
// reading early. Callers writing to stdout treat that as a clean finish.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
