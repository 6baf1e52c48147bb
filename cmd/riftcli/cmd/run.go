package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/riftlang/rift"
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/parser"
	"github.com/riftlang/rift/prelude"
	"github.com/riftlang/rift/value"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Rift source file or an inline expression",
	Long: `Execute a Rift program from a file or an inline expression.

Examples:
  riftcli run script.rift
  riftcli run -e "var x = 2 + 3 * 4; x;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	var source string
	switch {
	case evalExpr != "":
		source = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read file %q: %w", args[0], err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load .riftrc.yaml: %w", err)
	}

	if cfg.EchoAST {
		block, perr := parser.Parse(source)
		if perr != nil {
			reportError(os.Stderr, perr)
			return fmt.Errorf("execution failed")
		}
		fmt.Fprintln(os.Stdout, "AST:")
		fmt.Fprint(os.Stdout, ast.Dump(block.Statements))
	}

	interp := rift.New()
	prelude.Install(interp)
	cfg.applyGlobals(interp)

	result, err := interp.Evaluate(source)
	if err != nil {
		reportError(os.Stderr, err)
		return fmt.Errorf("execution failed")
	}
	if result.Kind != value.UNDEFINED {
		color.New(color.FgYellow).Fprintln(os.Stdout, value.ToDisplayString(result))
	}
	return nil
}

// reportError prints a CompileError or RuntimeError in red, with the
// RuntimeError's traceback indented beneath the message.
func reportError(w *os.File, err error) {
	red := color.New(color.FgRed)
	switch e := err.(type) {
	case *errs.CompileError:
		red.Fprintf(w, "[COMPILE ERROR] %s\n", e.Error())
	case *errs.RuntimeError:
		red.Fprintf(w, "[RUNTIME ERROR] %s\n", e.Error())
	default:
		red.Fprintf(w, "[ERROR] %s\n", err.Error())
	}
}
