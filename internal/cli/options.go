// internal/cli/options.go
package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kmercount/internal/diag"
	"kmercount/internal/version"
	"kmercount/internal/writers"
)

// EnvPrefix prefixes environment overrides, e.g. KMERCOUNT_LOG_LEVEL=debug.
const EnvPrefix = "KMERCOUNT"

// ErrPrintedAndExitOK signals that help or version text was printed.
var ErrPrintedAndExitOK = errors.New("printed and exit ok")

// Options holds the resolved command line.
type Options struct {
	// Input
	Input  string
	Output string

	// Output
	Format string // tsv|jsonl|json

	// Diagnostics
	Quiet     bool
	LogLevel  string
	LogFormat string
}

// Register wires the flags onto fs.
func Register(fs *pflag.FlagSet) {
	fs.StringP("format", "f", writers.FormatTSV, "output format: "+strings.Join(writers.Formats(), " | "))
	fs.BoolP("quiet", "q", false, "suppress data-quality warnings")
	fs.String("log-level", "warn", "log level: "+strings.Join(diag.Levels, " | "))
	fs.String("log-format", diag.FormatText, "log format: text | json")
}

// usageError is the single message reported for a malformed command line.
func usageError(name string) error {
	return diag.Errorf(diag.ErrUsage, nil, "Usage: %s <input_file> <output_file>", name)
}

// NewCommand builds the root command. On a successful parse the resolved
// Options are stored in *dst; RunE does no work beyond that.
func NewCommand(name string, stdout, stderr io.Writer, dst *Options) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     name + " [flags] <input_file> <output_file>",
		Short:   "Count overlapping 4-mers in DNA sequence lines",
		Long:    longHelp(name),
		Example: examples(name),
		Version: version.Version,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError(name)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			o := Options{
				Input:     args[0],
				Output:    args[1],
				Format:    v.GetString("format"),
				Quiet:     v.GetBool("quiet"),
				LogLevel:  v.GetString("log-level"),
				LogFormat: v.GetString("log-format"),
			}
			if err := Validate(o); err != nil {
				return err
			}
			*dst = o
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(name + " version {{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return diag.Errorf(diag.ErrUsage, err, "Usage: %s <input_file> <output_file>", name)
	})

	Register(cmd.Flags())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())
	return cmd
}

// ParseArgs parses argv. It returns ErrPrintedAndExitOK after --help or
// --version, and an error wrapping diag.ErrUsage for a bad command line.
func ParseArgs(name string, argv []string, stdout, stderr io.Writer) (Options, error) {
	var (
		o   Options
		ran bool
	)
	cmd := NewCommand(name, stdout, stderr, &o)
	inner := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		ran = true
		return inner(c, args)
	}
	cmd.SetArgs(argv)
	if argv == nil {
		cmd.SetArgs([]string{})
	}
	if err := cmd.Execute(); err != nil {
		return o, err
	}
	if !ran {
		return o, ErrPrintedAndExitOK
	}
	return o, nil
}

// Validate applies option invariants that flag parsing cannot express.
func Validate(o Options) error {
	if !writers.Known(o.Format) {
		return diag.Errorf(diag.ErrUsage, nil, "Error: invalid --format %q (want %s)", o.Format, strings.Join(writers.Formats(), "|"))
	}
	if _, err := diag.ParseLevel(o.LogLevel); err != nil {
		return diag.Errorf(diag.ErrUsage, err, "Error: invalid --log-level")
	}
	switch o.LogFormat {
	case diag.FormatText, diag.FormatJSON:
	default:
		return diag.Errorf(diag.ErrUsage, nil, "Error: invalid --log-format %q (want text|json)", o.LogFormat)
	}
	return nil
}
