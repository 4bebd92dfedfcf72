package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t14raptor/go-esparse/generator"
	"github.com/t14raptor/go-esparse/parser"
)

var printCmd = &cobra.Command{
	Use:   "print [file|source]",
	Short: "Parse and print regenerated source",
	Long: `Parses the input and prints it back from the AST, normalized.

Examples:
  esparse print app.js
  esparse print 'a .  b ( 1 )'`,
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	src, err := inputSource(args)
	if err != nil {
		return err
	}

	prog, err := parser.ParseFile(src, parseOptions()...)
	if err != nil {
		return err
	}

	fmt.Print(generator.Generate(prog))
	return nil
}
