// resources.go implements MCP resource handlers for guide access.
//
// Resources give LLM clients read-only access to the documentation without
// spending a tool call. URIs follow the pattern aocgen://guide/{topic};
// an empty topic returns the index page.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/polyglot-advent/aocgen/guide"
)

// ErrInvalidURI indicates a malformed resource URI, helping clients debug
// URI construction issues.
var ErrInvalidURI = errors.New("invalid URI")

// readGuideResource handles aocgen://guide/{topic} resource requests.
func (h *handlers) readGuideResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx for future use
	topic, err := parseGuideURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	content, err := guide.Get(topic)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the topic from a guide URI.
func parseGuideURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, "aocgen://guide/")
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return rest, nil
}
