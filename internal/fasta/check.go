// internal/fasta/check.go
package fasta

import (
	"errors"
	"io/fs"
	"os"

	"kmercount/internal/diag"
)

// CheckInput verifies that path names an existing, non-empty file.
// The size is that of the file on disk, so an empty .gz is rejected too.
func CheckInput(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return diag.Errorf(diag.ErrPrecondition, nil, "Error: File '%s' not found", path)
		}
		return diag.Errorf(diag.ErrPrecondition, err, "Error: File '%s' cannot be accessed", path)
	}
	if fi.IsDir() {
		return diag.Errorf(diag.ErrPrecondition, nil, "Error: File '%s' not found", path)
	}
	if fi.Size() == 0 {
		return diag.Errorf(diag.ErrPrecondition, nil, "Error: File '%s' is empty", path)
	}
	return nil
}
