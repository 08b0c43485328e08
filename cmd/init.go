// init.go implements the "aocgen init" command for workspace creation.
//
// init is the one command that writes config rather than reading it. It
// creates the target directory, a local .aocgen/config.yaml seeded with
// the detected author, and a .gitignore covering puzzle inputs.

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/polyglot-advent/aocgen/internal/config"
	"github.com/polyglot-advent/aocgen/internal/log"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a workspace with a local config",
	Long: `Creates a workspace directory holding a local .aocgen/config.yaml and a
.gitignore for puzzle inputs.

  aocgen init            # initialise the current directory
  aocgen init my-aoc     # create and initialise my-aoc/

Re-running init on an existing workspace fails unless --force is given.
The .gitignore is only written when none exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	log.SetWorkspace(dir)

	cfgPath := filepath.Join(dir, config.LocalPath())
	if _, err := os.Stat(cfgPath); err == nil && !Force() {
		err = fmt.Errorf("workspace already initialised: %s (use --force to rewrite the config)", cfgPath)
		log.Event("workspace:init", "init").Author(Author()).Path(dir).Write(err)
		return PrintJSONError(err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return PrintJSONError(fmt.Errorf("creating workspace: %w", err))
	}

	cfg := &config.Config{}
	cfg.Author.Name = Author()
	cfg.Defaults.Base = config.DefaultBase
	cfg.Defaults.Languages = []string{config.DefaultLanguage}

	err := cfg.SaveTo(cfgPath)
	if err == nil {
		err = writeGitignore(dir)
	}

	log.Event("workspace:init", "init").Author(Author()).Path(dir).Write(err)

	if err != nil {
		return PrintJSONError(fmt.Errorf("init: %w", err))
	}

	if JSON() {
		return PrintJSON(map[string]string{"dir": dir, "config": cfgPath})
	}
	fmt.Fprintf(Out(), "Initialised aocgen workspace in %s\n", dir)
	return nil
}

// writeGitignore seeds a .gitignore excluding puzzle inputs, which the
// Advent of Code creators ask players not to republish. An existing
// .gitignore is left untouched.
func writeGitignore(dir string) error {
	path := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	content := "# Puzzle inputs are personal and must not be republished.\n**/input.txt\n"
	return os.WriteFile(path, []byte(content), 0644)
}
