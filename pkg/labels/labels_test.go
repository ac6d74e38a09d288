package labels

import "testing"

func TestRowLabel(t *testing.T) {
	tests := []struct {
		index int
		typ   RowType
		start string
		want  string
	}{
		{0, RowAlpha, "A", "A"},
		{25, RowAlpha, "A", "Z"},
		{26, RowAlpha, "A", "AA"},
		{51, RowAlpha, "A", "AZ"},
		{52, RowAlpha, "A", "BA"},
		{701, RowAlpha, "A", "ZZ"},
		{702, RowAlpha, "A", "AAA"},
		{2, RowAlpha, "C", "E"},
		{1, RowAlpha, "Z", "AA"},
		{0, RowAlpha, "aa", "aa"},
		{1, RowAlpha, "b", "c"},
		{0, RowAlpha, "1x", "A"},
		{3, RowAlpha, "", "D"},
		{0, RowNumeric, "1", "1"},
		{4, RowNumeric, "10", "14"},
		{2, RowNumeric, "bogus", "3"},
		{0, RowRoman, "1", "I"},
		{3, RowRoman, "1", "IV"},
		{8, RowRoman, "1", "IX"},
		{0, RowRoman, "1994", "MCMXCIV"},
		{0, RowRoman, "4000", "4000"},
		{0, RowType("other"), "A", "A"},
	}
	for _, tt := range tests {
		if got := RowLabel(tt.index, tt.typ, tt.start); got != tt.want {
			t.Errorf("RowLabel(%d, %s, %q) = %q, want %q", tt.index, tt.typ, tt.start, got, tt.want)
		}
	}
}

func TestSeatLabelSchemes(t *testing.T) {
	row := func(in SeatLabelInput, total int) []string {
		out := make([]string, total)
		for i := range out {
			in.Index, in.Total = i, total
			out[i] = SeatLabel(in)
		}
		return out
	}

	tests := []struct {
		name  string
		in    SeatLabelInput
		total int
		want  []string
	}{
		{"numeric", SeatLabelInput{Scheme: Numeric, Start: 1}, 4, []string{"1", "2", "3", "4"}},
		{"numeric start", SeatLabelInput{Scheme: Numeric, Start: 101}, 3, []string{"101", "102", "103"}},
		{"reverse", SeatLabelInput{Scheme: Reverse, Start: 1}, 4, []string{"4", "3", "2", "1"}},
		{"odd-left", SeatLabelInput{Scheme: OddLeft, Start: 50}, 6, []string{"1", "3", "5", "2", "4", "6"}},
		{"odd-left odd total", SeatLabelInput{Scheme: OddLeft}, 5, []string{"1", "3", "5", "2", "4"}},
		{"even-left", SeatLabelInput{Scheme: EvenLeft}, 4, []string{"2", "4", "1", "3"}},
		{"odd-only", SeatLabelInput{Scheme: OddOnly, Start: 1}, 3, []string{"1", "3", "5"}},
		{"odd-only even start", SeatLabelInput{Scheme: OddOnly, Start: 4}, 3, []string{"5", "7", "9"}},
		{"even-only", SeatLabelInput{Scheme: EvenOnly, Start: 1}, 3, []string{"2", "4", "6"}},
		{"custom wraps", SeatLabelInput{Scheme: Custom, Custom: []int{7, 9}}, 5, []string{"7", "9", "7", "9", "7"}},
		{"custom empty", SeatLabelInput{Scheme: Custom, Start: 1}, 2, []string{"1", "2"}},
		{"unknown", SeatLabelInput{Scheme: Scheme("zigzag"), Start: 1}, 2, []string{"1", "2"}},
		{"rtl", SeatLabelInput{Scheme: Numeric, Start: 1, Direction: RightToLeft}, 3, []string{"3", "2", "1"}},
		{"center-out odd", SeatLabelInput{Scheme: Numeric, Start: 1, Direction: CenterOut}, 5, []string{"4", "2", "1", "3", "5"}},
		{"center-out even", SeatLabelInput{Scheme: Numeric, Start: 1, Direction: CenterOut}, 4, []string{"3", "1", "2", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := row(tt.in, tt.total)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSeatLabelExplicitSide(t *testing.T) {
	left := true
	got := SeatLabel(SeatLabelInput{Index: 3, Total: 4, Scheme: OddLeft, IsLeftSide: &left})
	if got != "3" {
		t.Errorf("forced left side = %q, want 3", got)
	}
}

func TestSeatLabelCustomPerRow(t *testing.T) {
	overrides := map[string]RowNumbering{
		"B": {RowLabel: "B", Type: Reverse, StartNumber: 1},
		"C": {RowLabel: "C", Type: Custom, Numbers: []int{10, 20}},
		"D": {RowLabel: "D", Type: CustomPerRow},
		"E": {RowLabel: "E", Type: Numeric, StartNumber: 1, Direction: RightToLeft},
	}
	tests := []struct {
		row   string
		index int
		want  string
	}{
		{"A", 0, "5"}, // no override: numeric from the global start
		{"B", 0, "3"},
		{"C", 1, "20"},
		{"D", 2, "7"}, // nested custom-per-row falls back
		{"E", 0, "3"},
	}
	for _, tt := range tests {
		in := SeatLabelInput{
			Index:        tt.index,
			Total:        3,
			Scheme:       CustomPerRow,
			Start:        5,
			RowLabel:     tt.row,
			RowOverrides: overrides,
		}
		if got := SeatLabel(in); got != tt.want {
			t.Errorf("row %s seat %d = %q, want %q", tt.row, tt.index, got, tt.want)
		}
	}
}

func TestSeatLabelDeterministic(t *testing.T) {
	in := SeatLabelInput{Index: 2, Total: 7, Scheme: OddLeft, Direction: CenterOut, Start: 3}
	if a, b := SeatLabel(in), SeatLabel(in); a != b {
		t.Errorf("SeatLabel not deterministic: %q vs %q", a, b)
	}
}

func TestSeatLabelDegenerateInput(t *testing.T) {
	// Out-of-range indices must not panic.
	for _, in := range []SeatLabelInput{
		{Index: -1, Total: 0, Scheme: Custom, Custom: []int{1}},
		{Index: 5, Total: 2, Scheme: Reverse, Start: 1},
		{Index: 0, Total: 0, Scheme: OddLeft, Direction: CenterOut},
	} {
		if SeatLabel(in) == "" {
			t.Errorf("empty label for %+v", in)
		}
	}
}

func TestParseNames(t *testing.T) {
	if s, ok := ParseScheme("odd-left"); !ok || s != OddLeft {
		t.Errorf("ParseScheme(odd-left) = %q, %v", s, ok)
	}
	if _, ok := ParseScheme("nope"); ok {
		t.Error("ParseScheme accepted an unknown scheme")
	}
	if d, ok := ParseDirection("center-out"); !ok || d != CenterOut {
		t.Errorf("ParseDirection = %q, %v", d, ok)
	}
	if r, ok := ParseRowType("roman"); !ok || r != RowRoman {
		t.Errorf("ParseRowType = %q, %v", r, ok)
	}
	if len(Schemes()) != 8 {
		t.Errorf("Schemes() = %v", Schemes())
	}
}
