// Package workspace inspects the shape of an Advent of Code tree.
//
// Directory names are never trusted: every entry is run through the
// identifier parsers and every visited path is rebuilt from the parsed
// value through safepath. Entries that do not parse are skipped by Scan
// and reported by Check.
package workspace

import (
	"fmt"
	"os"
	"strings"

	"github.com/polyglot-advent/aocgen/internal/identifier"
	"github.com/polyglot-advent/aocgen/internal/safepath"
)

// Day is one solved or scaffolded day within a year.
type Day struct {
	Number    int      `json:"day"`
	Folder    string   `json:"folder"`
	Languages []string `json:"languages,omitempty"`
}

// Year groups the days found under one year directory.
type Year struct {
	Year int   `json:"year"`
	Days []Day `json:"days,omitempty"`
}

// Tree is the classified shape of a workspace.
type Tree struct {
	Base  string `json:"base"`
	Years []Year `json:"years,omitempty"`
}

// Empty reports whether the workspace holds no recognisable years.
func (t Tree) Empty() bool {
	return len(t.Years) == 0
}

// String renders the tree for terminal display. Years and days come out in
// ascending order because os.ReadDir sorts entries and day folders are
// zero-padded.
func (t Tree) String() string {
	var b strings.Builder
	for yi, y := range t.Years {
		fmt.Fprintf(&b, "%d\n", y.Year)
		for di, d := range y.Days {
			branch := "├──"
			if di == len(y.Days)-1 {
				branch = "└──"
			}
			if len(d.Languages) > 0 {
				fmt.Fprintf(&b, "%s %s (%s)\n", branch, d.Folder, strings.Join(d.Languages, ", "))
			} else {
				fmt.Fprintf(&b, "%s %s\n", branch, d.Folder)
			}
		}
		if yi != len(t.Years)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Scan walks base and classifies what it finds. Entries that do not parse
// as a year, day, or language are ignored; Check reports those.
func Scan(base string) (Tree, error) {
	sp, err := safepath.New(base)
	if err != nil {
		return Tree{}, err
	}
	tree := Tree{Base: sp.String()}

	years, err := visibleDirs(sp)
	if err != nil {
		return Tree{}, fmt.Errorf("reading workspace: %w", err)
	}

	for _, yname := range years {
		y, err := identifier.ParseYear(yname)
		if err != nil {
			continue
		}
		yearPath, err := sp.Append(y.FolderName())
		if err != nil {
			return Tree{}, err
		}

		yr := Year{Year: y.Int()}
		days, err := visibleDirs(yearPath)
		if err != nil {
			return Tree{}, err
		}
		for _, dname := range days {
			d, err := identifier.ParseDayFolder(dname)
			if err != nil {
				continue
			}
			dayPath, err := yearPath.Append(d.FolderName())
			if err != nil {
				return Tree{}, err
			}

			de := Day{Number: d.Int(), Folder: d.FolderName()}
			langs, err := visibleDirs(dayPath)
			if err != nil {
				return Tree{}, err
			}
			for _, lname := range langs {
				if _, err := identifier.NewLanguage(lname); err == nil {
					de.Languages = append(de.Languages, lname)
				}
			}
			yr.Days = append(yr.Days, de)
		}
		tree.Years = append(tree.Years, yr)
	}

	return tree, nil
}

// visibleDirs lists the non-hidden subdirectories of p in sorted order.
func visibleDirs(p safepath.Path) ([]string, error) {
	entries, err := os.ReadDir(p.String())
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
