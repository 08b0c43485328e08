// Package scaffold generates Advent of Code day directories.
//
// A Generator is bound to a single base directory at construction. Every
// file it touches derives from that base through the safepath package, so a
// request can never write outside the workspace regardless of what the
// identifiers hold.
package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/polyglot-advent/aocgen/internal/diff"
	"github.com/polyglot-advent/aocgen/internal/identifier"
	"github.com/polyglot-advent/aocgen/internal/safepath"
)

// Request names the day to scaffold. The fields are validated identifier
// values, so a Request cannot carry an out-of-range day or a hostile
// language name.
type Request struct {
	Year      identifier.Year
	Day       identifier.Day
	Languages []identifier.Language
}

// Options configures a scaffold operation.
type Options struct {
	Force  bool // Overwrite existing starter files and READMEs
	DryRun bool // Report the plan without touching the filesystem
	Colour bool // Colourise overwrite diffs
}

// Result lists the files an operation touched, relative to the base. In a
// dry run the lists describe what would have happened.
type Result struct {
	Created     []string `json:"created,omitempty"`
	Skipped     []string `json:"skipped,omitempty"`
	Overwritten []string `json:"overwritten,omitempty"`
}

// Generator scaffolds days beneath one base directory.
type Generator struct {
	base   safepath.Path
	author string
	tmpl   *template.Template
}

// New binds a generator to base. The base is resolved exactly once; every
// path the generator writes is derived from the resulting safepath.
func New(base, author string) (*Generator, error) {
	p, err := safepath.New(base)
	if err != nil {
		return nil, err
	}
	t, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Generator{base: p, author: author, tmpl: t}, nil
}

// Base returns the resolved base directory.
func (g *Generator) Base() safepath.Path {
	return g.base
}

// Generate builds the directory tree and starter files for req, writing one
// progress line per file to w. Existing files are skipped unless opts.Force
// is set; input.txt is never replaced once present, as a pasted puzzle
// input is user data.
func (g *Generator) Generate(w io.Writer, req Request, opts Options) (Result, error) {
	steps, err := g.plan(req)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, st := range steps {
		if err := applyStep(w, &res, st, opts); err != nil {
			return res, err
		}
	}
	return res, nil
}

// fileStep is one file the generator intends to write.
type fileStep struct {
	path    safepath.Path
	content string
	keep    bool // never overwritten once present
}

// plan renders every file for req up front, so template errors surface
// before anything is written.
func (g *Generator) plan(req Request) ([]fileStep, error) {
	yearDir, err := g.base.Append(req.Year.FolderName())
	if err != nil {
		return nil, err
	}
	dayDir, err := yearDir.Append(req.Day.FolderName())
	if err != nil {
		return nil, err
	}

	ctx := templateContext{
		Year:   req.Year.Int(),
		Day:    req.Day.Int(),
		Padded: req.Day.Padded(),
		URL:    puzzleURL(req.Year, req.Day),
		Author: g.author,
	}

	var steps []fileStep
	add := func(dir safepath.Path, name, tmpl string, keep bool) error {
		p, err := dir.Append(name)
		if err != nil {
			return err
		}
		content := ""
		if tmpl != "" {
			if content, err = g.render(tmpl, ctx); err != nil {
				return err
			}
		}
		steps = append(steps, fileStep{path: p, content: content, keep: keep})
		return nil
	}

	if err := add(yearDir, "README.md", "year_readme.tmpl", false); err != nil {
		return nil, err
	}
	if err := add(dayDir, "README.md", "day_readme.tmpl", false); err != nil {
		return nil, err
	}

	for _, lang := range req.Languages {
		langDir, err := dayDir.Append(lang.FolderName())
		if err != nil {
			return nil, err
		}
		ctx.Language = lang.String()
		st := starterFor(lang)
		if err := add(langDir, st.file, st.tmpl, false); err != nil {
			return nil, err
		}
		if err := add(langDir, "input.txt", "", true); err != nil {
			return nil, err
		}
	}

	return steps, nil
}

// applyStep writes, skips, or overwrites a single planned file and records
// the outcome in res.
func applyStep(w io.Writer, res *Result, st fileStep, opts Options) error {
	rel := st.path.Rel()

	existing, err := os.ReadFile(st.path.String())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", rel, err)
	}
	exists := err == nil

	switch {
	case !exists:
		if opts.DryRun {
			fmt.Fprintf(w, "Would create: %s\n", rel)
		} else {
			if err := os.MkdirAll(filepath.Dir(st.path.String()), 0755); err != nil {
				return fmt.Errorf("creating directory for %s: %w", rel, err)
			}
			if err := os.WriteFile(st.path.String(), []byte(st.content), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", rel, err)
			}
			fmt.Fprintf(w, "Created: %s\n", rel)
		}
		res.Created = append(res.Created, rel)

	case !opts.Force || st.keep:
		fmt.Fprintf(w, "Skipped: %s (exists)\n", rel)
		res.Skipped = append(res.Skipped, rel)

	case string(existing) == st.content:
		fmt.Fprintf(w, "Skipped: %s (unchanged)\n", rel)
		res.Skipped = append(res.Skipped, rel)

	default:
		if opts.DryRun {
			fmt.Fprintf(w, "Would overwrite: %s\n", rel)
		} else {
			if err := os.WriteFile(st.path.String(), []byte(st.content), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", rel, err)
			}
			fmt.Fprintf(w, "Overwrote: %s\n", rel)
		}
		d := diff.Compute(string(existing), st.content, rel+" (existing)", rel+" (generated)")
		fmt.Fprint(w, d.Format(opts.Colour))
		res.Overwritten = append(res.Overwritten, rel)
	}

	return nil
}
