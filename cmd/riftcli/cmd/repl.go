package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/riftlang/rift"
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/parser"
	"github.com/riftlang/rift/prelude"
	"github.com/riftlang/rift/value"
)

const banner = `
 ____  _  __ _
|  _ \(_)/ _| |_
| |_) | | |_| __|
|  _ <| |  _| |_
|_| \_\_|_|  \__|
`

const line = "----------------------------------------------------------------"

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Rift session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runRepl(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "Version: %s\n", Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Welcome to Rift!")
	cyanColor.Fprintln(w, "Type an expression and press enter")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", line)
}

func runRepl(w io.Writer) error {
	printBanner(w)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interp := rift.New()
	interp.SetOutput(w)
	prelude.Install(interp)
	cfg.applyGlobals(interp)

	rl, err := readline.New("rift >>> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Goodbye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Goodbye!\n"))
			return nil
		}
		rl.SaveHistory(line)

		evalLine(w, interp, line, cfg.EchoAST)
	}
}

func evalLine(w io.Writer, interp *rift.Interpreter, line string, echoAST bool) {
	if echoAST {
		if block, err := parser.Parse(line); err == nil {
			cyanColor.Fprintln(w, "AST:")
			fmt.Fprint(w, ast.Dump(block.Statements))
		}
	}
	result, err := interp.Evaluate(line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err.Error())
		return
	}
	if result.Kind != value.UNDEFINED {
		yellowColor.Fprintf(w, "%s\n", value.ToDisplayString(result))
	}
}
