// tools_workspace.go implements the MCP tools for inspecting the workspace.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/polyglot-advent/aocgen/internal/log"
	"github.com/polyglot-advent/aocgen/internal/workspace"
)

// workspaceTree handles aocgen_tree tool calls.
func (h *handlers) workspaceTree(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	tree, err := workspace.Scan(h.base)

	log.Event("mcp:aocgen_tree", "scan").Author("mcp").Path(h.base).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(tree)
}

// workspaceDoctor handles aocgen_doctor tool calls.
func (h *handlers) workspaceDoctor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	issues, err := workspace.Check(h.base)

	log.Event("mcp:aocgen_doctor", "check").Author("mcp").Path(h.base).Detail("issues", len(issues)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if issues == nil {
		issues = []workspace.Issue{}
	}
	return jsonResult(map[string]any{
		"base":   h.base,
		"ok":     len(issues) == 0,
		"issues": issues,
	})
}
