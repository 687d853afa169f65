// Package cli defines the banwatch command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "banwatch",
		Short: "Free Fire ban-status chat bot",
		Long: `banwatch is a chat bot that checks whether a Free Fire player account
is banned. It relays player IDs to a remote ban-status API, renders the
verdict as a rich embed, and supports per-user language preferences and
per-server channel restrictions.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
