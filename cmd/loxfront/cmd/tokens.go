package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ostnam/loxfront/pkg/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "print the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return &ioError{err}
	}

	toks, bag := lexer.Scan(src)
	logger.Debug("scanned source", zap.String("file", args[0]), zap.Int("tokens", len(toks)))

	for _, t := range toks {
		fmt.Println(t.String())
	}
	for _, d := range bag.All() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	if bag.HadError() {
		return errDiagnostics
	}
	return nil
}
