// Package cmd wires the Cobra CLI for the edge gateway.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quran-apps-edge",
		Short: "Edge gateway for the Quran Apps Directory.",
		Long: `quran-apps-edge fronts the prerendered Quran Apps Directory origin.
It blocks HTML fallback responses for missing static assets and rewrites
Open Graph / Twitter Card metadata for preview crawlers.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (YAML)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newAuditCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
