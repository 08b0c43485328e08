package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/polyglot-advent/aocgen/internal/identifier"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// starter names the file a language template renders into.
type starter struct {
	file string // starter file name inside the language directory
	tmpl string // template name in templateFS
}

// starters maps language folder names to built-in templates. Aliases share
// a template with their long form.
var starters = map[string]starter{
	"go":         {"main.go", "go.tmpl"},
	"python":     {"main.py", "python.tmpl"},
	"py":         {"main.py", "python.tmpl"},
	"rust":       {"main.rs", "rust.tmpl"},
	"rs":         {"main.rs", "rust.tmpl"},
	"typescript": {"main.ts", "typescript.tmpl"},
	"ts":         {"main.ts", "typescript.tmpl"},
}

// genericStarter is used for valid languages without a built-in template.
var genericStarter = starter{"solution.txt", "generic.tmpl"}

// starterFor picks the starter for a language by its folder name, so
// "Python" and "python" resolve to the same template.
func starterFor(lang identifier.Language) starter {
	if st, ok := starters[lang.FolderName()]; ok {
		return st
	}
	return genericStarter
}

// templateContext is the data every built-in template renders against.
type templateContext struct {
	Year     int
	Day      int    // unpadded, as adventofcode.com uses it
	Padded   string // two-digit form used in folder names
	Language string
	URL      string
	Author   string
}

// puzzleURL returns the adventofcode.com page for a puzzle. The site wants
// unpadded day numbers.
func puzzleURL(year identifier.Year, day identifier.Day) string {
	return fmt.Sprintf("https://adventofcode.com/%d/day/%d", year.Int(), day.Int())
}

func parseTemplates() (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing built-in templates: %w", err)
	}
	return t, nil
}

func (g *Generator) render(name string, ctx templateContext) (string, error) {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, name, ctx); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
