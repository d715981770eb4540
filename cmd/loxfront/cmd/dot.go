package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ostnam/loxfront/pkg/dot"
	"github.com/ostnam/loxfront/pkg/lexer"
	"github.com/ostnam/loxfront/pkg/parser"
)

var dotOutPath string

var dotCmd = &cobra.Command{
	Use:   "dot <file>",
	Short: "render a source file's AST as Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE:  runDot,
}

func init() {
	dotCmd.Flags().StringVarP(&dotOutPath, "output", "o", "", "write DOT output to this file instead of stdout")
	rootCmd.AddCommand(dotCmd)
}

func runDot(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return &ioError{err}
	}

	toks, lexBag := lexer.Scan(src)
	decls, parseBag := parser.Parse(toks)
	logger.Debug("rendering AST",
		zap.String("file", args[0]),
		zap.Int("declarations", len(decls)),
		zap.String("rankdir", cfg.Output.Rankdir),
	)

	for _, d := range lexBag.All() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	for _, d := range parseBag.All() {
		fmt.Fprintln(os.Stderr, d.Error())
	}

	rendered := dot.PrintWithRankdir(decls, cfg.Output.Rankdir)
	if dotOutPath == "" {
		fmt.Print(rendered)
	} else if err := os.WriteFile(dotOutPath, []byte(rendered), 0o644); err != nil {
		return &ioError{err}
	}

	if lexBag.HadError() || parseBag.HadError() {
		return errDiagnostics
	}
	return nil
}
