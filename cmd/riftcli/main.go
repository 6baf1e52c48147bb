// Command riftcli is the host program for the Rift interpreter. It
// provides two modes of operation: running a source file (`run`) and an
// interactive read-eval-print loop (`repl`), built on a Cobra command
// tree.
package main

import (
	"fmt"
	"os"

	"github.com/riftlang/rift/cmd/riftcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
