// internal/cli/usage.go
package cli

import (
	"fmt"
	"strings"
)

func longHelp(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s – k-mer frequency counter\n\n", name)
	b.WriteString("Reads DNA sequence lines, counts every overlapping 4-mer over A/C/G/T and\n")
	b.WriteString("writes \"<kmer>\\t<count>\" lines sorted by count (desc), then k-mer.\n\n")
	b.WriteString("Lines starting with '>' and blank lines are skipped. Lines with other\n")
	b.WriteString("characters (including lowercase) or shorter than 4 bases are skipped with\n")
	b.WriteString("a warning. Gzip input is detected automatically. Use '-' as output_file\n")
	b.WriteString("to write to STDOUT. Put -- before paths that begin with '-'.\n\n")
	fmt.Fprintf(&b, "Flags may also be set via %s_<FLAG> environment variables\n", EnvPrefix)
	fmt.Fprintf(&b, "(e.g. %s_LOG_LEVEL=debug); flags win over the environment.", EnvPrefix)
	return b.String()
}

func examples(name string) string {
	return strings.Join([]string{
		fmt.Sprintf("  %s reads.fa counts.tsv", name),
		fmt.Sprintf("  %s --format jsonl reads.fa.gz - | head", name),
		fmt.Sprintf("  %s -- -reads.fa counts.tsv", name),
		fmt.Sprintf("  %s_QUIET=true %s reads.fa counts.tsv", EnvPrefix, name),
	}, "\n")
}
