// Package guide provides access to embedded help and guide pages used by
// the CLI's built-in documentation system.
package guide

import (
	"embed"
	"io/fs"
	"strings"
)

//go:embed *.md
var files embed.FS

// Get returns the content of a guide page by name. If name is empty the
// default "guide" page is returned.
//
// Page names come straight from argv, so anything that is not a plain
// top-level path is treated as unknown.
func Get(name string) (string, error) {
	if name == "" {
		name = "guide"
	}
	if strings.ContainsAny(name, `/\`) || !fs.ValidPath(name+".md") {
		return "", fs.ErrNotExist
	}
	data, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available guide page names without the .md suffix. The
// default page is omitted.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if name != "guide.md" {
			names = append(names, strings.TrimSuffix(name, ".md"))
		}
	}
	return names, nil
}
