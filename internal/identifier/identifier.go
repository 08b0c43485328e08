// Package identifier provides the validated value objects that name a
// puzzle workspace: event year, puzzle day and solution language.
//
// All raw input destined for a folder name passes through this package
// before any path is built. Construction either returns a permanently
// valid value or an error; there is no way to hold a Year, Day or
// Language that failed validation. Filesystem code accepts these types
// rather than strings, so an unvalidated name cannot reach a path join.
//
// Security: year and day input is rejected if it contains a path
// separator or "..", and language names are checked against a closed
// character whitelist. Combined with the boundary check in the safepath
// package this blocks traversal sequences before any directory exists.
//
// Parsing rules:
//   - Surrounding whitespace is trimmed before any check
//   - Numeric input must be digits only ("15abc" is rejected, not truncated)
//   - Years must be exactly four digits
//   - Language names keep their original case; folder names are lowercased
package identifier

import (
	"strconv"
	"strings"
)

// isDigits reports whether s is one or more ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseNumber coerces raw input to an integer and checks it against the
// closed interval [lo, hi]. Signs, spaces and trailing text are
// rejected rather than truncated; the caller trims first.
func parseNumber(kind Kind, raw string, lo, hi int) (int, error) {
	if !isDigits(raw) {
		return 0, &RangeError{Kind: kind, Input: raw, Min: lo, Max: hi}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Digits only, but too large for int.
		return 0, &RangeError{Kind: kind, Input: raw, Min: lo, Max: hi}
	}
	return checkRange(kind, n, lo, hi)
}

// checkRange validates an already-numeric value against [lo, hi].
func checkRange(kind Kind, value, lo, hi int) (int, error) {
	if value < lo || value > hi {
		return 0, &RangeError{Kind: kind, Input: strconv.Itoa(value), Min: lo, Max: hi}
	}
	return value, nil
}

// checkPathChars rejects input containing a path separator or a ".."
// sequence. It runs before numeric parsing so a traversal attempt is
// reported as such rather than as a parse failure.
func checkPathChars(kind Kind, raw string) error {
	if i := strings.IndexAny(raw, `/\`); i >= 0 {
		return &CharacterError{Kind: kind, Input: raw, Token: string(raw[i])}
	}
	if strings.Contains(raw, "..") {
		return &CharacterError{Kind: kind, Input: raw, Token: ".."}
	}
	return nil
}
