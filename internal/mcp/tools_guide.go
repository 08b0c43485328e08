// tools_guide.go implements the MCP tool for accessing help content.
//
// The guide tool gives LLMs the same documentation the CLI ships, enabling
// self-service help without external lookups.

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/polyglot-advent/aocgen/guide"
	"github.com/polyglot-advent/aocgen/internal/log"
)

// getGuide handles aocgen_guide tool calls.
func (h *handlers) getGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:aocgen_guide", "read").Author("mcp").Detail("topic", topic).Write(err)

	if err != nil {
		// Unknown topic: tell the LLM what does exist.
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
