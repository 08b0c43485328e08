// tools_scaffold.go implements the MCP tool for scaffolding puzzle days.
//
// Year, day and language inputs arrive as untrusted JSON and go through
// the identifier constructors before any path is built. Validation errors
// are relayed verbatim so the LLM can correct its call.

package mcp

import (
	"bytes"
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/polyglot-advent/aocgen/internal/identifier"
	"github.com/polyglot-advent/aocgen/internal/log"
	"github.com/polyglot-advent/aocgen/internal/scaffold"
)

// scaffoldDay handles aocgen_scaffold tool calls.
func (h *handlers) scaffoldDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	year, err := yearArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	day, err := dayArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	langs, err := h.languageArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := scaffold.Options{
		Force:  getBool(req, "force", false),
		DryRun: getBool(req, "dry_run", false),
	}

	var buf bytes.Buffer
	result, err := h.gen.Generate(&buf, scaffold.Request{Year: year, Day: day, Languages: langs}, opts)

	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.String()
	}
	log.Event("mcp:aocgen_scaffold", "scaffold").
		Author("mcp").
		Year(year.Int()).
		Day(day.Int()).
		Languages(names).
		Path(h.base).
		Detail("dry_run", opts.DryRun).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"base":        h.base,
		"created":     result.Created,
		"skipped":     result.Skipped,
		"overwritten": result.Overwritten,
		"dry_run":     opts.DryRun,
	})
}

// yearArg reads the year parameter, accepting a JSON number or a string.
func yearArg(req mcp.CallToolRequest) (identifier.Year, error) {
	if s := getString(req, "year", ""); s != "" {
		return identifier.ParseYear(s)
	}
	return identifier.NewYear(getInt(req, "year", 0))
}

// dayArg reads the day parameter, accepting a JSON number or a string.
func dayArg(req mcp.CallToolRequest) (identifier.Day, error) {
	if s := getString(req, "day", ""); s != "" {
		return identifier.ParseDay(s)
	}
	return identifier.NewDay(getInt(req, "day", 0))
}

// languageArgs reads the languages parameter, accepting a JSON array or a
// comma-separated string. The server default applies when none are given.
func (h *handlers) languageArgs(req mcp.CallToolRequest) ([]identifier.Language, error) {
	raw := getStrings(req, "languages")
	if raw == nil {
		raw = splitComma(getString(req, "languages", ""))
	}
	if len(raw) == 0 {
		raw = h.languages
	}

	langs := make([]identifier.Language, 0, len(raw))
	for _, r := range raw {
		l, err := identifier.NewLanguage(r)
		if err != nil {
			return nil, err
		}
		langs = append(langs, l)
	}
	return langs, nil
}
