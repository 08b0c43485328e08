package identifier

import (
	"errors"
	"testing"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		errIs error
	}{
		{name: "first event", input: "2015", want: 2015},
		{name: "recent event", input: "2024", want: 2024},
		{name: "upper bound", input: "2099", want: 2099},
		{name: "surrounding whitespace", input: "  2024  ", want: 2024},

		{name: "before first event", input: "2014", errIs: ErrRange},
		{name: "past upper bound", input: "2100", errIs: ErrRange},
		{name: "two digits", input: "24", errIs: ErrRange},
		{name: "five digits in range", input: "02024", errIs: ErrFormat},
		{name: "empty", input: "", errIs: ErrRange},
		{name: "whitespace only", input: "   ", errIs: ErrRange},
		{name: "non-numeric", input: "abcd", errIs: ErrRange},
		{name: "trailing garbage", input: "2024x", errIs: ErrRange},
		{name: "inner space", input: "20 24", errIs: ErrRange},
		{name: "explicit sign", input: "+2024", errIs: ErrRange},
		{name: "negative", input: "-2024", errIs: ErrRange},
		{name: "decimal", input: "2024.0", errIs: ErrRange},
		{name: "forward slash", input: "20/24", errIs: ErrCharacter},
		{name: "backslash", input: `20\24`, errIs: ErrCharacter},
		{name: "traversal sequence", input: "../2024", errIs: ErrCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := ParseYear(tt.input)

			if tt.errIs != nil {
				if err == nil {
					t.Fatalf("ParseYear(%q) = %v, want error %v", tt.input, y, tt.errIs)
				}
				if !errors.Is(err, tt.errIs) {
					t.Errorf("ParseYear(%q) error = %v, want errors.Is %v", tt.input, err, tt.errIs)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseYear(%q) error = %v, want %d", tt.input, err, tt.want)
			}
			if y.Int() != tt.want {
				t.Errorf("ParseYear(%q).Int() = %d, want %d", tt.input, y.Int(), tt.want)
			}
		})
	}
}

func TestNewYear(t *testing.T) {
	for _, v := range []int{2015, 2042, 2099} {
		if _, err := NewYear(v); err != nil {
			t.Errorf("NewYear(%d) error = %v, want nil", v, err)
		}
	}
	for _, v := range []int{0, -2024, 1999, 2014, 2100, 20240} {
		if _, err := NewYear(v); !errors.Is(err, ErrRange) {
			t.Errorf("NewYear(%d) error = %v, want ErrRange", v, err)
		}
	}
}

func TestYearFolderName(t *testing.T) {
	y, err := NewYear(2024)
	if err != nil {
		t.Fatal(err)
	}
	if y.FolderName() != "2024" {
		t.Errorf("FolderName() = %q, want %q", y.FolderName(), "2024")
	}
	if y.String() != y.FolderName() {
		t.Errorf("String() = %q, FolderName() = %q, want identical", y.String(), y.FolderName())
	}
}

func TestYearEqual(t *testing.T) {
	a, err := ParseYear("2024")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewYear(2024)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewYear(2025)
	if err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) {
		t.Error("years built from equivalent input should compare equal")
	}
	if a.Equal(c) {
		t.Error("2024 should not equal 2025")
	}
}

func TestYearRangeErrorFields(t *testing.T) {
	_, err := NewYear(1999)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("NewYear(1999) error = %T, want *RangeError", err)
	}
	if re.Kind != KindYear {
		t.Errorf("Kind = %q, want %q", re.Kind, KindYear)
	}
	if re.Min != MinYear || re.Max != MaxYear {
		t.Errorf("bounds = [%d, %d], want [%d, %d]", re.Min, re.Max, MinYear, MaxYear)
	}
}
