/*
Copyright © 2026 The aocgen Authors
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: every subcommand validates its raw arguments through the
// identifier constructors before touching the filesystem, and builds paths
// only through the safepath-backed scaffold and workspace packages. The
// root command itself only handles flag validation and author detection.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/polyglot-advent/aocgen/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "aocgen",
	Short: "Scaffold a polyglot Advent of Code workspace",
	Long: `aocgen generates and inspects an Advent of Code workspace: one folder
per year, one per day, one per language, each with a starter file and a
place for the puzzle input.

All inputs are validated before any path is built, so a stray "../" or a
malformed day can never write outside the workspace.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Detect author from config if not explicitly set
		if author == "" {
			author = detectAuthor()
		}

		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens the activity log, executes the command, and closes the log before
// exit. Exit code 1 indicates error.
func Execute() {
	// Initialise activity logger (warn if it fails, but continue).
	// With log.enabled false the logger stays closed and every log call
	// is a no-op.
	if logEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: activity log unavailable: %v\n", err)
		}
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}
