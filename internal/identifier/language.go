// language.go implements the solution language identifier.
//
// Language names are the only free-text identifier, so they carry the
// strictest rules: a closed whitelist rather than a blocklist, a length
// cap, and a ban on leading characters with path or flag significance.

package identifier

import (
	"fmt"
	"strings"
)

// MaxLanguageLen caps the length of a language name.
const MaxLanguageLen = 50

// Language is a validated programming-language label. It keeps the
// original casing for display; the folder name is the lowercase form.
type Language struct {
	name string
}

// NewLanguage validates raw as a language name. After trimming, the
// name must be 1-50 characters from the set [A-Za-z0-9+#_-] and must
// not start with "." or "-".
func NewLanguage(raw string) (Language, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Language{}, &FormatError{Kind: KindLanguage, Input: name, Reason: "must not be empty"}
	}
	for _, r := range name {
		if !isLanguageRune(r) {
			return Language{}, &CharacterError{Kind: KindLanguage, Input: name, Token: string(r)}
		}
	}
	if name[0] == '.' || name[0] == '-' {
		return Language{}, &FormatError{Kind: KindLanguage, Input: name, Reason: fmt.Sprintf("must not start with %q", name[0])}
	}
	if len(name) > MaxLanguageLen {
		return Language{}, &FormatError{Kind: KindLanguage, Input: name, Reason: fmt.Sprintf("longer than %d characters", MaxLanguageLen)}
	}
	return Language{name: name}, nil
}

// isLanguageRune reports whether r belongs to the language whitelist.
func isLanguageRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '+', r == '#', r == '_', r == '-':
		return true
	}
	return false
}

// String returns the language name as given, original casing intact.
func (l Language) String() string { return l.name }

// FolderName returns the lowercase directory form of the name;
// "C++" scaffolds into "c++".
func (l Language) FolderName() string { return strings.ToLower(l.name) }

// Equal reports whether two languages normalise to the same name.
// Comparison is case-insensitive: "Go" and "go" are the same language.
func (l Language) Equal(other Language) bool {
	return strings.EqualFold(l.name, other.name)
}
