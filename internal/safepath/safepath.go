// Package safepath builds filesystem paths that provably stay inside a
// base directory.
//
// Every path the scaffolder touches is constructed here: a trusted base
// plus a sequence of segments, usually the folder-name projections of
// identifier values or literal file names. The resolved candidate must
// equal the resolved base or sit strictly below it; anything else is a
// traversal attempt and construction fails. No Path method ever returns
// a string that has not passed the boundary check.
//
// Security: the check runs on the lexically resolved path (".." and "."
// collapsed, base made absolute). Symlinks are not followed; the
// guarantee covers the path string handed to the filesystem layer, not
// what the filesystem does with links afterwards.
package safepath

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrTraversal indicates a candidate path resolved outside its base
// directory.
var ErrTraversal = errors.New("path escapes base directory")

// ErrEmptyBase indicates a Path was requested without a base directory.
// The base is always an explicit parameter; the working directory is
// never assumed.
var ErrEmptyBase = errors.New("base directory required")

// TraversalError reports the resolved base and the candidate path that
// escaped it.
type TraversalError struct {
	Base string
	Path string
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("path %q escapes base directory %q", e.Path, e.Base)
}

func (e *TraversalError) Unwrap() error { return ErrTraversal }

// Path is an absolute filesystem path proven to be the base directory
// itself or a descendant of it. The zero value is not usable; obtain a
// Path through New or Append.
type Path struct {
	base   string // absolute, cleaned
	target string // absolute, cleaned, equal to base or below it
}

// New resolves base to an absolute form, joins the segments onto it and
// verifies the candidate stays inside the base. An absolute segment is
// treated as a traversal attempt rather than silently re-rooting the
// path.
func New(base string, segments ...string) (Path, error) {
	if strings.TrimSpace(base) == "" {
		return Path{}, ErrEmptyBase
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return Path{}, fmt.Errorf("resolving base %q: %w", base, err)
	}

	for _, seg := range segments {
		if filepath.IsAbs(seg) {
			return Path{}, &TraversalError{Base: absBase, Path: filepath.Clean(seg)}
		}
	}

	target := filepath.Join(append([]string{absBase}, segments...)...)
	if !within(absBase, target) {
		return Path{}, &TraversalError{Base: absBase, Path: target}
	}
	return Path{base: absBase, target: target}, nil
}

// Append derives a new Path under the same base with more segments
// joined on. The target's position relative to the base is recomputed
// and the whole candidate re-validated from scratch; no invariant is
// assumed to carry over.
func (p Path) Append(segments ...string) (Path, error) {
	if p.base == "" {
		return Path{}, ErrEmptyBase
	}
	rel, err := filepath.Rel(p.base, p.target)
	if err != nil {
		return Path{}, fmt.Errorf("relativising %q against %q: %w", p.target, p.base, err)
	}
	return New(p.base, append([]string{rel}, segments...)...)
}

// String returns the resolved absolute path.
func (p Path) String() string { return p.target }

// Base returns the resolved base directory the path is bound to.
func (p Path) Base() string { return p.base }

// Rel returns the target's position relative to the base, "." when the
// path is the base itself.
func (p Path) Rel() string {
	rel, err := filepath.Rel(p.base, p.target)
	if err != nil {
		// Cannot happen for a constructed Path: both ends are absolute
		// and the target sits below the base.
		return p.target
	}
	return rel
}

// Equal reports whether two paths resolve to the same target.
func (p Path) Equal(other Path) bool { return p.target == other.target }

// within reports whether target equals base or starts with base plus
// the path separator. The separator requirement keeps a sibling with a
// shared name prefix ("aoc2" beside base "aoc") outside the boundary.
func within(base, target string) bool {
	if target == base {
		return true
	}
	prefix := base
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(target, prefix)
}
