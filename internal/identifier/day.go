// day.go implements the puzzle day identifier.

package identifier

import (
	"fmt"
	"strconv"
	"strings"
)

// Day bounds. The event runs twenty-five puzzles each December.
const (
	MinDay = 1
	MaxDay = 25
)

// dayPrefix is the fixed token in front of the padded day number, as in
// "day01".
const dayPrefix = "day"

// Day is a validated puzzle day. The zero value is not a valid day;
// obtain one through NewDay, ParseDay or ParseDayFolder.
type Day struct {
	value int
}

// NewDay validates v against the puzzle range [1, 25].
func NewDay(v int) (Day, error) {
	if _, err := checkRange(KindDay, v, MinDay, MaxDay); err != nil {
		return Day{}, err
	}
	return Day{value: v}, nil
}

// ParseDay parses raw string input such as a CLI argument. Leading
// zeroes are accepted ("01" and "1" name the same day); trailing
// non-digit content is not.
func ParseDay(raw string) (Day, error) {
	raw = strings.TrimSpace(raw)
	if err := checkPathChars(KindDay, raw); err != nil {
		return Day{}, err
	}
	n, err := parseNumber(KindDay, raw, MinDay, MaxDay)
	if err != nil {
		return Day{}, err
	}
	return Day{value: n}, nil
}

// ParseDayFolder parses a canonical day folder name such as "day01".
// Only the exact padded form round-trips; "day1" is rejected so a
// non-canonical directory is surfaced rather than silently adopted.
func ParseDayFolder(name string) (Day, error) {
	rest, ok := strings.CutPrefix(name, dayPrefix)
	if !ok || len(rest) != 2 || !isDigits(rest) {
		return Day{}, &FormatError{Kind: KindDay, Input: name, Reason: `must match "day" plus a two-digit number`}
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < MinDay || n > MaxDay {
		return Day{}, &RangeError{Kind: KindDay, Input: name, Min: MinDay, Max: MaxDay}
	}
	return Day{value: n}, nil
}

// Int returns the day as an integer.
func (d Day) Int() int { return d.value }

// String returns the unpadded day number, e.g. "1".
func (d Day) String() string { return strconv.Itoa(d.value) }

// Padded returns the zero-padded two-digit form, e.g. "01".
func (d Day) Padded() string { return fmt.Sprintf("%02d", d.value) }

// FolderName returns the directory name for the day, e.g. "day01".
func (d Day) FolderName() string { return dayPrefix + d.Padded() }

// Equal reports whether two days hold the same value.
func (d Day) Equal(other Day) bool { return d.value == other.value }
