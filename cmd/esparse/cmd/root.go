package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/t14raptor/go-esparse/parser"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "esparse",
	Short: "JavaScript parser toolbox",
	Long: `esparse parses JavaScript source into an AST and prints it back.

Commands:
  check  - parse and report syntax errors
  print  - parse and print regenerated source
  ast    - parse and dump the syntax tree`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace parser activity")
}

// parseOptions builds the parser options the flags ask for.
func parseOptions() []parser.Option {
	if !verbose {
		return nil
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return []parser.Option{parser.WithLogger(slog.New(handler))}
}

// inputSource reads the source to parse: piped stdin first, then a file
// argument, then the argument itself as inline source.
func inputSource(args []string) (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
		return strings.Join(args, " "), nil
	}

	return "", fmt.Errorf("no input: pass a file, inline source, or pipe stdin")
}
