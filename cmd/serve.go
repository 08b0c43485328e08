// serve.go implements the "aocgen serve" command for MCP server
// operation. Unlike other commands that run and exit, serve blocks
// handling MCP requests over stdio until the client disconnects.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/polyglot-advent/aocgen/internal/log"
	"github.com/polyglot-advent/aocgen/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server over stdio so LLM clients can
scaffold and inspect the workspace through tool calls.

  aocgen serve                    # serve the configured workspace
  aocgen serve --base ~/aoc       # pin the workspace explicitly

Run "aocgen guide mcp" for the client configuration.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	base := resolveBase()
	log.SetWorkspace(base)
	return mcp.Serve(base, Author(), defaultLanguages())
}
