// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"kmercount/internal/cli"
	"kmercount/internal/diag"
	"kmercount/internal/fasta"
	"kmercount/internal/kmer"
	"kmercount/internal/writers"
)

// Name is the command name used in usage and version text.
const Name = "kmercount"

// RunContext parses argv, runs the count and returns the process exit code.
// Fatal failures print exactly one line to stderr.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	opts, err := cli.ParseArgs(Name, argv, stdout, stderr)
	if errors.Is(err, cli.ErrPrintedAndExitOK) {
		return 0
	}
	if err != nil {
		return fail(stderr, err)
	}

	level := opts.LogLevel
	if opts.Quiet {
		level = "error"
	}
	log, err := diag.NewLogger(stderr, level, opts.LogFormat)
	if err != nil {
		return fail(stderr, diag.Errorf(diag.ErrUsage, err, "Error: logger setup"))
	}

	if err := Execute(ctx, opts, stdout, log); err != nil {
		log.WithField("code", diag.Classify(err)).Debug("run failed")
		return fail(stderr, err)
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, err)
	return diag.ExitCode(err)
}

// Execute checks the input, counts and ranks its k-mers and writes the
// table. The first failure aborts the run.
func Execute(ctx context.Context, o cli.Options, stdout io.Writer, log logrus.FieldLogger) error {
	t0 := time.Now()

	if err := fasta.CheckInput(o.Input); err != nil {
		return err
	}
	lines, err := fasta.ReadLines(ctx, o.Input)
	if err != nil {
		return err
	}

	counts, st := kmer.Count(lines, WarnSink(log))
	ranked := kmer.Rank(counts)

	log.WithFields(logrus.Fields{
		"lines":     st.Lines,
		"headers":   st.Headers,
		"sequences": st.Sequences,
		"invalid":   st.Invalid,
		"too_short": st.TooShort,
		"windows":   st.Windows,
		"distinct":  len(ranked),
		"dur_ms":    time.Since(t0).Milliseconds(),
	}).Debug("counted k-mers")

	out, err := writers.Create(o.Output, stdout)
	if err != nil {
		return err
	}
	werr := writers.Write(o.Format, out, ranked)
	cerr := out.Close()
	if err := errors.Join(werr, cerr); err != nil {
		if o.Output == "-" && writers.IsBrokenPipe(err) {
			return nil
		}
		return diag.Errorf(diag.ErrWrite, err, "Error: An error occurred while writing to the output file")
	}
	return nil
}

// WarnSink logs each data-quality warning at warn level.
func WarnSink(log logrus.FieldLogger) func(kmer.Warning) {
	return func(w kmer.Warning) {
		log.WithFields(logrus.Fields{
			"line":     w.Line,
			"sequence": w.Text,
		}).Warn(warningMessage(w.Kind))
	}
}

func warningMessage(k kmer.WarningKind) string {
	switch k {
	case kmer.InvalidSequence:
		return "Invalid DNA sequence found"
	case kmer.TooShort:
		return "Line too short to contain any k-mers"
	default:
		return "Skipped line"
	}
}
