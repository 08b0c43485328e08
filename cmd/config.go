// config.go implements the "aocgen config" command.
//
// Follows a cascade model like git: local config (.aocgen/config.yaml)
// takes precedence over global (~/.aocgen/config.yaml). Writes go to
// the same place reads come from; --local forces the local scope even
// when the file does not exist yet.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyglot-advent/aocgen/internal/config"
	"github.com/polyglot-advent/aocgen/internal/log"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "View or set config values",
	Long: `View or set config values.

  aocgen config                          # show config
  aocgen config author.name              # show one value
  aocgen config author.name "Jane Doe"   # set a value
  aocgen config defaults.languages go,rust

Configuration locations:
  Global: ~/.aocgen/config.yaml
  Local:  .aocgen/config.yaml (created by init)

Uses local config if it exists, otherwise global. Writes go to the same
place reads come from. Use --local to force the local config.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Use local config (.aocgen/config.yaml)")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if configLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		log.Event("config:list", "list").Author(Author()).Write(nil)
		if JSON() {
			return PrintJSON(cfg.All())
		}
		for k, v := range cfg.All() {
			fmt.Fprintf(Out(), "%s: %s\n", k, v)
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("config:get", "get").Author(Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("config:set", "set").Author(Author()).Detail("key", args[0]).Write(err)
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("config:set", "set").
			Author(Author()).
			Detail("key", args[0]).
			Detail("scope", scopeName).
			Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if JSON() {
			return PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scopeName})
		}
		fmt.Fprintf(Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
