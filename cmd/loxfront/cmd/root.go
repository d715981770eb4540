package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ostnam/loxfront/internal/config"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

// errDiagnostics signals that lexing or parsing reported at least one
// diagnostic. It maps to exit code 1, distinct from an I/O failure.
var errDiagnostics = errors.New("completed with diagnostics")

// ioError marks a failure reading or writing a file. The CLI maps it to
// exit code 2 instead of the 1 used for diagnostics.
type ioError struct{ err error }

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

var rootCmd = &cobra.Command{
	Use:   "loxfront",
	Short: "loxfront lexes and parses source files for a small C-family scripting language",
	Long: `loxfront drives the lexer, parser, and DOT emitter over a source
file and prints the requested representation: the raw token stream, a
declaration count from a full parse, or a Graphviz DOT rendering of the
resulting AST.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg = config.Default()
		}
		if err != nil {
			return &ioError{err}
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = newLogger(level)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the command tree and translates the result into a
// process exit code: 0 on success, 2 on I/O failure, 1 for any other
// failure including a diagnostic-bearing lex or parse.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, errDiagnostics) {
		fmt.Fprintln(os.Stderr, err)
	}
	var ioErr *ioError
	if errors.As(err, &ioErr) {
		return 2
	}
	return 1
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
