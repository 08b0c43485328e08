package workspace

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/polyglot-advent/aocgen/internal/identifier"
	"github.com/polyglot-advent/aocgen/internal/safepath"
)

// Issue is a problem Check found with the workspace shape.
type Issue struct {
	Path   string `json:"path"`   // relative to the base
	Detail string `json:"detail"` // what is wrong
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Detail)
}

// Check walks base and reports entries that do not belong in an Advent of
// Code tree: directories that look like years or days but fail the parsing
// rules, and language directories with disallowed names. Directories that
// look nothing like an identifier (a scripts folder at the base, say) are
// left alone.
func Check(base string) ([]Issue, error) {
	sp, err := safepath.New(base)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	years, err := visibleDirs(sp)
	if err != nil {
		return nil, fmt.Errorf("reading workspace: %w", err)
	}

	for _, yname := range years {
		y, err := identifier.ParseYear(yname)
		if err != nil {
			if allDigits(yname) {
				issues = append(issues, Issue{Path: yname, Detail: err.Error()})
			}
			continue
		}

		yearPath, err := sp.Append(y.FolderName())
		if err != nil {
			return nil, err
		}
		days, err := visibleDirs(yearPath)
		if err != nil {
			return nil, err
		}

		for _, dname := range days {
			d, err := identifier.ParseDayFolder(dname)
			if err != nil {
				if looksLikeDay(dname) {
					issues = append(issues, Issue{Path: filepath.Join(yname, dname), Detail: err.Error()})
				}
				continue
			}

			dayPath, err := yearPath.Append(d.FolderName())
			if err != nil {
				return nil, err
			}
			langs, err := visibleDirs(dayPath)
			if err != nil {
				return nil, err
			}
			for _, lname := range langs {
				if _, err := identifier.NewLanguage(lname); err != nil {
					issues = append(issues, Issue{Path: filepath.Join(yname, dname, lname), Detail: err.Error()})
				}
			}
		}
	}

	return issues, nil
}

// allDigits reports whether name is one or more ASCII digits.
func allDigits(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// looksLikeDay reports whether name was plausibly meant to be a day folder.
func looksLikeDay(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "day") || allDigits(name)
}
