// Package labels converts row and seat indices into display labels.
//
// Every function here is total: invalid start values and unknown schemes fall
// back to a sensible default instead of failing, because labels are
// recomputed on every edit.
package labels

import (
	"strconv"
	"strings"
)

// RowType selects how row indices are rendered.
type RowType string

const (
	RowAlpha   RowType = "alpha"
	RowNumeric RowType = "numeric"
	RowRoman   RowType = "roman"
)

// Scheme selects how seats within a row are numbered.
type Scheme string

const (
	Numeric      Scheme = "numeric"
	Reverse      Scheme = "reverse"
	OddLeft      Scheme = "odd-left"
	EvenLeft     Scheme = "even-left"
	OddOnly      Scheme = "odd-only"
	EvenOnly     Scheme = "even-only"
	Custom       Scheme = "custom"
	CustomPerRow Scheme = "custom-per-row"
)

// Direction maps physical seat positions to logical numbering order.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
	CenterOut   Direction = "center-out"
)

// RowNumbering overrides the sector's scheme for a single row.
type RowNumbering struct {
	RowLabel    string    `json:"rowLabel"`
	Type        Scheme    `json:"type"`
	StartNumber int       `json:"startNumber"`
	Numbers     []int     `json:"numbers,omitempty"`
	Direction   Direction `json:"direction,omitempty"`
}

var (
	rowTypes   = []RowType{RowAlpha, RowNumeric, RowRoman}
	schemes    = []Scheme{Numeric, Reverse, OddLeft, EvenLeft, OddOnly, EvenOnly, Custom, CustomPerRow}
	directions = []Direction{LeftToRight, RightToLeft, CenterOut}
)

// Schemes lists the seat numbering schemes.
func Schemes() []Scheme {
	return append([]Scheme(nil), schemes...)
}

// ParseRowType accepts a row label type name.
func ParseRowType(s string) (RowType, bool) {
	for _, t := range rowTypes {
		if string(t) == s {
			return t, true
		}
	}
	return RowAlpha, false
}

// ParseScheme accepts a seat numbering scheme name.
func ParseScheme(s string) (Scheme, bool) {
	for _, sc := range schemes {
		if string(sc) == s {
			return sc, true
		}
	}
	return Numeric, false
}

// ParseDirection accepts a numbering direction name.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range directions {
		if string(d) == s {
			return d, true
		}
	}
	return LeftToRight, false
}

// RowLabel renders the label of the row at index, counting from start.
//
// alpha treats start as a bijective base-26 numeral (A..Z, AA..AZ, ...) and
// keeps its case; numeric and roman parse start as an integer. An unusable
// start falls back to "A" or 1.
func RowLabel(index int, t RowType, start string) string {
	if index < 0 {
		index = 0
	}
	switch t {
	case RowNumeric:
		return strconv.Itoa(parseStart(start) + index)
	case RowRoman:
		return Roman(parseStart(start) + index)
	default:
		n, lower := parseAlpha(start)
		s := Alpha(n + index)
		if lower {
			s = strings.ToLower(s)
		}
		return s
	}
}

// Alpha formats n >= 1 in bijective base 26: 1 is "A", 26 is "Z", 27 is "AA".
// Values below 1 format as "A".
func Alpha(n int) string {
	if n < 1 {
		n = 1
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Roman formats n as a Roman numeral. Values outside 1..3999 have no standard
// form and are rendered as decimal.
func Roman(n int) string {
	if n < 1 || n > 3999 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String()
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// parseAlpha reads a letter sequence as a bijective base-26 value.
func parseAlpha(s string) (n int, lower bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, false
	}
	lower = s == strings.ToLower(s)
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return 1, false
		}
		n = n*26 + int(r-'A'+1)
		if n > 1<<24 {
			return 1, false
		}
	}
	return n, lower
}

func parseStart(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return n
}
