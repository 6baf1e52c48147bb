package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the riftcli version string, overridable by build flags.
var Version = "0.1.0-dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "riftcli",
	Short: "Rift interpreter",
	Long: `riftcli runs programs written in Rift, an embeddable, dynamically
typed scripting language with JavaScript-like syntax: var/let/const
declarations, closures, arrays and objects, and try/catch exceptions.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("riftcli version %s\n", Version))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
