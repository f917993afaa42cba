// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"kmercount/internal/kmer": {
			"kmercount/internal/fasta", "kmercount/internal/writers",
			"kmercount/internal/diag", "kmercount/internal/cli",
			"kmercount/internal/app", "kmercount/cmd/",
		},
		"kmercount/internal/fasta": {
			"kmercount/internal/kmer", "kmercount/internal/writers",
			"kmercount/internal/cli", "kmercount/internal/app", "kmercount/cmd/",
		},
		"kmercount/internal/writers": {
			"kmercount/internal/fasta", "kmercount/internal/cli",
			"kmercount/internal/app", "kmercount/cmd/",
		},
		"kmercount/internal/diag": {
			"kmercount/internal/kmer", "kmercount/internal/fasta",
			"kmercount/internal/writers", "kmercount/internal/cli",
			"kmercount/internal/app", "kmercount/cmd/",
		},
		"kmercount/internal/cli": {
			"kmercount/internal/app", "kmercount/internal/fasta", "kmercount/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "kmercount/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix && !strings.HasPrefix(imp, prefix+"/") {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "kmercount/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
