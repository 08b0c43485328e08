// new.go implements the "aocgen new" command, the scaffolding entry point.
//
// Design: raw year/day/language strings from argv go through the
// identifier constructors before anything else happens. The scaffold
// generator then derives every path from the validated values, so new
// refuses hostile input with a precise message instead of creating a
// misplaced directory.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/polyglot-advent/aocgen/internal/identifier"
	"github.com/polyglot-advent/aocgen/internal/log"
	"github.com/polyglot-advent/aocgen/internal/scaffold"
)

var (
	newLangs  []string
	newDryRun bool
)

var newCmd = &cobra.Command{
	Use:   "new <year> <day>",
	Short: "Scaffold an Advent of Code day",
	Long: `Creates the year and day directories, READMEs, and one starter file per
language.

  aocgen new 2024 1
  aocgen new 2024 1 --lang go --lang rust
  aocgen new 2024 1 --force      # regenerate starters, showing a diff
  aocgen new 2024 1 --dry-run    # print the plan only

Languages default to defaults.languages from the config. Existing files
are never overwritten without --force, and input.txt is never
overwritten at all.`,
	Args: cobra.ExactArgs(2),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringSliceVarP(&newLangs, "lang", "l", nil, "Language to scaffold (repeatable or comma-separated)")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Show the plan without writing")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, args []string) error {
	year, err := identifier.ParseYear(args[0])
	if err != nil {
		return PrintJSONError(err)
	}
	day, err := identifier.ParseDay(args[1])
	if err != nil {
		return PrintJSONError(err)
	}

	raw := newLangs
	if len(raw) == 0 {
		raw = defaultLanguages()
	}
	langs := make([]identifier.Language, 0, len(raw))
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		l, err := identifier.NewLanguage(r)
		if err != nil {
			return PrintJSONError(err)
		}
		langs = append(langs, l)
		names = append(names, l.String())
	}

	base := resolveBase()
	log.SetWorkspace(base)

	gen, err := scaffold.New(base, Author())
	if err != nil {
		return PrintJSONError(err)
	}

	opts := scaffold.Options{
		Force:  Force(),
		DryRun: newDryRun,
		Colour: term.IsTerminal(int(os.Stdout.Fd())),
	}

	// JSON mode reports the result, not the per-file progress lines.
	progress := Out()
	if JSON() {
		progress = io.Discard
	}

	result, err := gen.Generate(progress, scaffold.Request{Year: year, Day: day, Languages: langs}, opts)

	log.Event("scaffold:new", "scaffold").
		Author(Author()).
		Year(year.Int()).
		Day(day.Int()).
		Languages(names).
		Path(gen.Base().String()).
		Detail("force", opts.Force).
		Detail("dry_run", opts.DryRun).
		Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(result)
	}
	if len(result.Created) == 0 && len(result.Overwritten) == 0 {
		fmt.Fprintln(Out(), "Nothing new to create.")
	}
	return nil
}
