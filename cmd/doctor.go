// doctor.go implements the "aocgen doctor" command.
//
// Doctor exits non-zero when it finds issues so it can gate commit
// hooks and CI.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyglot-advent/aocgen/internal/log"
	"github.com/polyglot-advent/aocgen/internal/workspace"
)

// errIssuesFound forces a non-zero exit after the issues have already
// been printed.
var errIssuesFound = errors.New("workspace issues found")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report folder names that break the workspace rules",
	Long: `Checks every directory in the workspace against the naming rules and
reports the ones that tree would skip: malformed years, malformed days,
and unknown languages. Exits non-zero when issues are found.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(c *cobra.Command, _ []string) error {
	base := resolveBase()
	log.SetWorkspace(base)

	issues, err := workspace.Check(base)

	log.Event("workspace:doctor", "check").
		Author(Author()).
		Path(base).
		Detail("issues", len(issues)).
		Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		if issues == nil {
			issues = []workspace.Issue{}
		}
		if err := PrintJSON(map[string]any{"ok": len(issues) == 0, "issues": issues}); err != nil {
			return err
		}
		if len(issues) > 0 {
			c.SilenceErrors = true
			c.SilenceUsage = true
			return errIssuesFound
		}
		return nil
	}

	if len(issues) == 0 {
		fmt.Fprintln(Out(), "Workspace looks good.")
		return nil
	}

	for _, i := range issues {
		fmt.Fprintln(Out(), i.String())
	}
	c.SilenceUsage = true
	return fmt.Errorf("doctor found %d issue(s)", len(issues))
}
