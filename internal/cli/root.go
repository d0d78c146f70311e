// Package cli implements the Kintsugi command-line interface using Cobra.
// Each subcommand maps to one engagement operation (add, stats, serve...).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kintsugi",
	Short: "Kintsugi — a local accomplishment journal",
	Long: `Kintsugi is a local-first self-reflection journal.
Log small wins, keep a day streak going, and earn badges along the way.
Everything is stored on your machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
