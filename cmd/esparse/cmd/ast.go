package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t14raptor/go-esparse/generator"
	"github.com/t14raptor/go-esparse/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file|source]",
	Short: "Parse and dump the syntax tree",
	Long: `Parses the input and prints the syntax tree, one node per line.

Examples:
  esparse ast 'a(b).c'
  esparse ast app.js`,
	RunE: runAst,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAst(cmd *cobra.Command, args []string) error {
	src, err := inputSource(args)
	if err != nil {
		return err
	}

	prog, err := parser.ParseFile(src, parseOptions()...)
	if err != nil {
		return err
	}

	fmt.Print(generator.Dump(prog))
	return nil
}
