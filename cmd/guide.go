// guide.go implements the "aocgen guide" command for documentation
// access. Terminal output gets glamour rendering for readability; pipes
// and redirects get raw markdown for machine consumption.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/polyglot-advent/aocgen/guide"
)

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Show the aocgen usage guide",
	Long: `Outputs the aocgen guide for humans and LLMs.

  aocgen guide             # main guide
  aocgen guide config      # configuration reference
  aocgen guide languages   # starter templates and naming rules`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	content, err := guide.Get(name)
	if err != nil {
		available, listErr := guide.List()
		if listErr != nil {
			return listErr
		}
		return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(content, "dark")
		if err == nil {
			fmt.Fprint(Out(), rendered)
			return nil
		}
	}

	fmt.Fprint(Out(), content)
	return nil
}
