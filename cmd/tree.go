// tree.go implements the "aocgen tree" command.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyglot-advent/aocgen/internal/log"
	"github.com/polyglot-advent/aocgen/internal/workspace"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the years, days and languages in the workspace",
	Long: `Scans the workspace and prints each year with its days and the languages
present for each day. Directories that do not follow the workspace
naming rules are skipped; run doctor to see them.`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(_ *cobra.Command, _ []string) error {
	base := resolveBase()
	log.SetWorkspace(base)

	tree, err := workspace.Scan(base)

	log.Event("workspace:tree", "scan").Author(Author()).Path(base).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(tree)
	}
	if tree.Empty() {
		fmt.Fprintf(Out(), "No Advent of Code years found in %s\n", tree.Base)
		return nil
	}
	fmt.Fprint(Out(), tree.String())
	return nil
}
