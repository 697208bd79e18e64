// Command syllabe is a line-oriented batch filter over the syllabification
// core: one IPA phoneme string per stdin line, one "."-joined
// syllabification per stdout line.
//
// Diagnostics go to stderr and never pollute the output stream:
// in strict mode each rejected line is reported (and echoed empty so line
// counts stay aligned); in the default mode, lines whose syllables do not
// concatenate back to the input are flagged as lossy, making the core's
// silent-drop behavior observable without changing it.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/syllabe/syllable"
)

var (
	strict  bool
	quiet   bool
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "syllabe",
	Short: "French phonotactic syllabification, IPA in, IPA out",
	Long: `syllabe reads one phoneme string per line from stdin and writes the
syllabification, syllables joined by ".", to stdout.

Input is IPA using the built-in inventory; the delimiters "/" and " " are
tolerated and excluded from syllables. Notation conversion is out of scope:
convert to IPA before piping in.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		if quiet {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		} else if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject lines containing symbols outside the inventory")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-line diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging (per-line detail)")
}

// run pumps stdin to stdout. In strict mode a non-nil error is returned
// when any line was rejected, so the process exits non-zero.
func run(cmd *cobra.Command) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	strip := strings.NewReplacer("/", "", " ", "")

	var lineNo, rejected int
	for in.Scan() {
		lineNo++
		word := strings.TrimRight(in.Text(), "\r\n")

		var sf syllable.Syllabification
		if strict {
			var err error
			sf, err = syllable.SyllabifyStrict(word)
			if err != nil {
				rejected++
				logger.Warn("rejected line",
					zap.Int("line", lineNo),
					zap.String("word", word),
					zap.Error(err))
				// keep line counts aligned for downstream paste/join
				fmt.Fprintln(out)
				continue
			}
		} else {
			sf = syllable.Syllabify(word)
			if got := sf.Word(); got != strip.Replace(word) {
				logger.Warn("lossy line: some symbols joined no syllable",
					zap.Int("line", lineNo),
					zap.String("word", word),
					zap.String("kept", got))
			}
		}

		logger.Debug("syllabified",
			zap.Int("line", lineNo),
			zap.Int("syllables", len(sf)))
		fmt.Fprintln(out, sf)
	}
	if err := in.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d lines rejected", rejected, lineNo)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
