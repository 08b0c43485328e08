// Package mcp implements the Model Context Protocol server, exposing the
// scaffolder to LLMs. This enables AI assistants to create puzzle days,
// inspect the workspace, and read documentation through a standardised
// protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/polyglot-advent/aocgen/internal/config"
	"github.com/polyglot-advent/aocgen/internal/scaffold"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio. Logging goes to stderr because
// stdout is reserved for the JSON-RPC stream.
//
// The workspace base is resolved exactly once at startup; every tool call
// derives its paths from that resolved base through the same validated
// core the CLI uses, so a tool input can never write outside it.
func Serve(base, author string, languages []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	gen, err := scaffold.New(base, author)
	if err != nil {
		slog.Error("failed to resolve workspace base", "base", base, "error", err)
		return err
	}

	if len(languages) == 0 {
		languages = []string{config.DefaultLanguage}
	}

	h := &handlers{
		gen:       gen,
		base:      gen.Base().String(),
		author:    author,
		languages: languages,
	}

	s := server.NewMCPServer(
		"aocgen",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("aocgen MCP server ready", "version", Version, "transport", "stdio", "base", h.base)

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers carries the resolved workspace state shared by every tool.
type handlers struct {
	gen       *scaffold.Generator
	base      string   // resolved workspace base
	author    string   // stamped into generated READMEs
	languages []string // scaffold default when a call names none
}

// registerResources adds URI-based access to the guide pages.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"aocgen://guide/{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read an aocgen documentation page"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuideResource,
	)
}

// registerTools exposes the scaffolder operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("aocgen_scaffold",
			mcp.WithDescription("Scaffold an Advent of Code day: year and day directories, READMEs, and a starter file per language. Inputs are validated; generated paths cannot leave the workspace."),
			mcp.WithNumber("year", mcp.Required(), mcp.Description("Puzzle year, 2015-2099")),
			mcp.WithNumber("day", mcp.Required(), mcp.Description("Puzzle day, 1-25")),
			mcp.WithString("languages", mcp.Description("Comma-separated languages (default from config, usually 'go')")),
			mcp.WithBoolean("force", mcp.Description("Overwrite existing starter files; input.txt is never touched")),
			mcp.WithBoolean("dry_run", mcp.Description("Report the plan without writing anything")),
		),
		h.scaffoldDay,
	)

	s.AddTool(
		mcp.NewTool("aocgen_tree",
			mcp.WithDescription("List the years, days and languages present in the workspace"),
		),
		h.workspaceTree,
	)

	s.AddTool(
		mcp.NewTool("aocgen_doctor",
			mcp.WithDescription("Report workspace folders that break the naming rules (bad years, days outside day01..day25, disallowed language names)"),
		),
		h.workspaceDoctor,
	)

	s.AddTool(
		mcp.NewTool("aocgen_guide",
			mcp.WithDescription("Get aocgen documentation"),
			mcp.WithString("topic", mcp.Description("Page name (config, languages, workspace, mcp) or empty for the index")),
		),
		h.getGuide,
	)
}
