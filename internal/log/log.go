// Package log provides centralised audit logging for aocgen operations.
// Logs are stored in ~/.aocgen/log/aocgen-log.db and track all CLI
// commands and MCP tool invocations across workspaces.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("scaffold:new", "scaffold").
//		Author(cmd.Author()).
//		Year(2024).
//		Day(1).
//		Languages([]string{"go", "python"}).
//		Write(err)
//
//	log.Event("workspace:doctor", "check").
//		Author(cmd.Author()).
//		Detail("issues", len(issues)).
//		Write(err)
//
// The source parameter follows the format "{area}:{operation}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "scaffold:new",
// "workspace:tree", "config:set", "mcp:aocgen_scaffold".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source    string // e.g., "scaffold:new", "mcp:aocgen_scaffold"
	Author    string // who performed the action
	Action    string // verb: scaffold, check, list, render, etc.
	Year      int    // event year targeted, 0 when not applicable
	Day       int    // puzzle day targeted, 0 when not applicable
	Languages string // comma-joined language folders targeted
	Path      string // path created or inspected

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data

	// Read-side fields, populated by Recent when listing entries.
	Run       string // uuid grouping the entries of one process run
	Workspace string // hashed base-directory identifier
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{area}:{operation}" (e.g., "scaffold:new", "config:set")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:aocgen_scaffold")
//
// The action describes what operation was performed:
//   - "scaffold", "check", "list", "render", "init", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp" as the author.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Year sets the event year this operation targets.
func (b *Builder) Year(year int) *Builder {
	b.entry.Year = year
	return b
}

// Day sets the puzzle day this operation targets.
func (b *Builder) Day(day int) *Builder {
	b.entry.Day = day
	return b
}

// Languages sets the language folders this operation targets.
func (b *Builder) Languages(langs []string) *Builder {
	b.entry.Languages = strings.Join(langs, ",")
	return b
}

// Path sets the filesystem path this operation created or inspected.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// file counts, dry-run flags, issue counts, etc. Can be called multiple
// times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation:
//
//	result, err := gen.Generate(req, opts)
//	log.Event("scaffold:new", "scaffold").Year(y.Int()).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger and assigns this process a run id.
// Safe to call multiple times. Errors are returned but callers may
// choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db, run: uuid.NewString()}
	return nil
}

// SetWorkspace sets the workspace identifier for subsequent log entries.
// The dir should be the resolved base directory of the workspace.
func SetWorkspace(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.workspace = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns the most recent log entries, newest first. Safe to
// call if the logger is not initialised (returns nil).
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	return l.recent(limit)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
