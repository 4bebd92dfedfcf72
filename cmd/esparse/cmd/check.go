package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t14raptor/go-esparse/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check [file|source]",
	Short: "Parse and report syntax errors",
	Long: `Parses the input and reports the first syntax error, if any.

Examples:
  esparse check app.js
  esparse check 'a.b(1)(2)'
  echo 'var x = {,}' | esparse check`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := inputSource(args)
	if err != nil {
		return err
	}

	if _, err := parser.ParseFile(src, parseOptions()...); err != nil {
		switch {
		case errors.Is(err, parser.ErrAbruptEnd):
			fmt.Printf("incomplete: %v\n", err)
		default:
			fmt.Printf("invalid: %v\n", err)
		}
		return fmt.Errorf("syntax check failed")
	}

	fmt.Println("ok")
	return nil
}
