// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Extraction is permissive: optional parameters fall back to defaults
// rather than failing, because LLMs frequently omit parameters or send the
// wrong JSON type. Anything that must be valid is run through the
// identifier constructors afterwards, whose errors are worth relaying.

package mcp

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def if the parameter is
// missing or not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter. JSON booleans decode as Go bool,
// so a type assertion on the raw argument map suffices.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt extracts an integer parameter. JSON numbers decode as float64 in
// encoding/json, so assert that first and convert.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// getStrings extracts a string array parameter. JSON arrays decode as
// []any; non-string elements are skipped. Returns nil when the parameter
// is absent or not an array, so callers can fall back to other forms.
func getStrings(req mcp.CallToolRequest, name string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// splitComma splits a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// jsonResult serialises v as pretty-printed JSON wrapped in an MCP text
// result. LLMs parse structured output more reliably when it is formatted
// for readability.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
