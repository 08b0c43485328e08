/*
Copyright © 2026 The aocgen Authors
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Commands read flag values through the accessor functions rather than the
// variables, and tests swap the output writer via SetOut.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/polyglot-advent/aocgen/internal/config"
)

var validOutputFormats = []string{"json"}

var (
	output  string
	author  string
	force   bool
	baseDir string
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Output returns the output format flag value.
func Output() string { return output }

// Author returns the author, from the flag or the config.
func Author() string { return author }

// Force returns the force flag value.
func Force() bool { return force }

// Base returns the explicitly requested workspace base.
// Priority: --base flag > AOCGEN_BASE env var > empty (use config).
func Base() string {
	if baseDir != "" {
		return baseDir
	}
	return os.Getenv("AOCGEN_BASE")
}

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if the error was printed (suppressing Cobra's duplicate),
// or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// detectAuthor resolves the default author for README attribution.
// Returns empty string when config is missing or has no author set.
func detectAuthor() string {
	if cfg, err := config.Load(); err == nil && cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	return ""
}

// logEnabled reports whether the activity log is switched on in config.
// Missing or unreadable config means enabled.
func logEnabled() bool {
	cfg, err := config.Load()
	if err != nil {
		return true
	}
	return cfg.LogEnabled()
}

// resolveBase picks the workspace base for a command.
// Priority: --base/AOCGEN_BASE > defaults.base from config > ".".
func resolveBase() string {
	if b := Base(); b != "" {
		return b
	}
	if cfg, err := config.Load(); err == nil {
		return cfg.Base()
	}
	return config.DefaultBase
}

// defaultLanguages returns the configured scaffold languages.
func defaultLanguages() []string {
	if cfg, err := config.Load(); err == nil {
		return cfg.Languages()
	}
	return []string{config.DefaultLanguage}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&author, "author", "a", "", "Author for generated READMEs")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Overwrite existing generated files")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base", "", "Workspace base directory (default from config)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
