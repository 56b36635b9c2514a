// Package cli provides the Cobra command structure for mdpress.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpress/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdpress command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdpress",
		Short: "A fast, allocation-frugal Markdown to HTML converter",
		Long: `mdpress converts Markdown files to standalone W3.CSS-styled HTML pages.

It uses a two-phase measure-then-write engine: each document is measured
first, then rendered into an exactly-sized buffer, so conversion never
reallocates mid-render. Malformed Markdown degrades to literal text instead
of failing, making mdpress safe to point at whole documentation trees.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
