// year.go implements the event year identifier.

package identifier

import (
	"strconv"
	"strings"
)

// Year bounds. Advent of Code first ran in 2015; 2099 keeps the folder
// name four digits wide.
const (
	MinYear = 2015
	MaxYear = 2099
)

// Year is a validated event year. The zero value is not a valid year;
// obtain one through NewYear or ParseYear.
type Year struct {
	value int
}

// NewYear validates v against the supported event range [2015, 2099].
func NewYear(v int) (Year, error) {
	if _, err := checkRange(KindYear, v, MinYear, MaxYear); err != nil {
		return Year{}, err
	}
	return Year{value: v}, nil
}

// ParseYear parses raw string input such as a CLI argument or a
// directory name. After trimming, the input must be exactly four
// digits; the length rule also closes the gap lenient base-10 parsing
// would leave for values like "02024".
func ParseYear(raw string) (Year, error) {
	raw = strings.TrimSpace(raw)
	if err := checkPathChars(KindYear, raw); err != nil {
		return Year{}, err
	}
	n, err := parseNumber(KindYear, raw, MinYear, MaxYear)
	if err != nil {
		return Year{}, err
	}
	if len(raw) != 4 {
		return Year{}, &FormatError{Kind: KindYear, Input: raw, Reason: "must be exactly four digits"}
	}
	return Year{value: n}, nil
}

// Int returns the year as an integer.
func (y Year) Int() int { return y.value }

// String returns the canonical four-digit form, e.g. "2024".
func (y Year) String() string { return strconv.Itoa(y.value) }

// FolderName returns the directory name for the year. It is identical
// to String(); the separate name lets path construction read as intent.
func (y Year) FolderName() string { return y.String() }

// Equal reports whether two years hold the same value.
func (y Year) Equal(other Year) bool { return y.value == other.value }
