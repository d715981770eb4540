package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ostnam/loxfront/pkg/lexer"
	"github.com/ostnam/loxfront/pkg/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a source file and report the resulting top-level declaration count",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return &ioError{err}
	}

	toks, lexBag := lexer.Scan(src)
	decls, parseBag := parser.Parse(toks)
	logger.Debug("parsed source",
		zap.String("file", args[0]),
		zap.Int("declarations", len(decls)),
	)

	for _, d := range lexBag.All() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	for _, d := range parseBag.All() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	fmt.Printf("%d top-level declarations\n", len(decls))

	if lexBag.HadError() || parseBag.HadError() {
		return errDiagnostics
	}
	return nil
}
