// log.go implements the "aocgen log" command for viewing recent
// activity.

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/polyglot-advent/aocgen/internal/log"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent aocgen activity",
	Long: `Shows recent scaffold and workspace operations from the activity log,
newest first. The log lives in ~/.aocgen/log/ and records what ran,
when, and whether it succeeded.`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "Maximum entries to show")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, _ []string) error {
	entries, err := log.Recent(logLimit)
	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(Out(), "No activity recorded.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintln(Out(), formatEntry(e))
	}
	return nil
}

// formatEntry renders one activity line: time, status, source, target.
func formatEntry(e log.Entry) string {
	status := "ok"
	if !e.Success {
		status = "failed"
	}

	target := ""
	if e.Year > 0 {
		target = fmt.Sprintf(" %d", e.Year)
		if e.Day > 0 {
			target = fmt.Sprintf(" %d/day%02d", e.Year, e.Day)
		}
	}
	if e.Languages != "" {
		target += " [" + e.Languages + "]"
	}

	when := time.Unix(e.Start, 0).Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%s  %-6s %s%s", when, status, e.Source, target)
	if e.Error != "" {
		line += "  (" + e.Error + ")"
	}
	return line
}
