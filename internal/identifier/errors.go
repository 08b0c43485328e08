// errors.go defines the error taxonomy for identifier validation.
//
// Design: structured error types rather than bare sentinels because
// callers surface these failures to users and need the offending value
// and the violated constraint programmatically, not only as prose.
// Each type unwraps to a category sentinel so errors.Is() still answers
// the coarse question (out of range? bad character?) without reaching
// into fields.

package identifier

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names the identifier under validation. Every error carries one
// so a caller validating several arguments can tell which input failed.
type Kind string

const (
	KindYear     Kind = "year"
	KindDay      Kind = "day"
	KindLanguage Kind = "language"
)

// Category sentinels for errors.Is checks.
var (
	ErrRange     = errors.New("value out of range")
	ErrFormat    = errors.New("malformed value")
	ErrCharacter = errors.New("disallowed character")
)

// RangeError reports input that could not be read as an integer within
// a closed interval: not a number at all, or a number out of bounds.
type RangeError struct {
	Kind  Kind
	Input string
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %q: must be a number between %d and %d", e.Kind, e.Input, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// FormatError reports input that fails a shape rule specific to one
// identifier, such as a year that is not exactly four digits.
type FormatError struct {
	Kind   Kind
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// CharacterError reports input containing a disallowed character:
// a path-significant token, or a rune outside the language whitelist.
type CharacterError struct {
	Kind  Kind
	Input string
	Token string // the offending character or sequence
}

func (e *CharacterError) Error() string {
	if strings.ContainsAny(e.Token, `/\`) || e.Token == ".." {
		return fmt.Sprintf("%s %q: must not contain path separators or %q", e.Kind, e.Input, "..")
	}
	return fmt.Sprintf("%s %q: character %q outside the set A-Z a-z 0-9 + # _ -", e.Kind, e.Input, e.Token)
}

func (e *CharacterError) Unwrap() error { return ErrCharacter }
