package labels

import "strconv"

// SeatLabelInput carries everything SeatLabel needs for one seat.
type SeatLabelInput struct {
	Index  int // physical position in the row, left to right
	Total  int // seats in the row
	Scheme Scheme
	Start  int

	// IsLeftSide overrides the midpoint split used by odd-left and
	// even-left when the caller knows which aisle side the seat is on.
	IsLeftSide *bool

	Custom       []int
	RowLabel     string
	RowOverrides map[string]RowNumbering
	Direction    Direction
}

// SeatLabel returns the number printed on a seat.
func SeatLabel(in SeatLabelInput) string {
	total := in.Total
	if in.Index < 0 {
		in.Index = 0
	}
	if total <= in.Index {
		total = in.Index + 1
	}
	logical := LogicalIndex(in.Index, total, in.Direction)

	switch in.Scheme {
	case Reverse:
		return strconv.Itoa(in.Start + total - 1 - logical)

	case OddLeft, EvenLeft:
		half := (total + 1) / 2
		left := logical < half
		if in.IsLeftSide != nil {
			left = *in.IsLeftSide
		}
		k := logical
		if logical >= half {
			k = logical - half
		}
		odd := left == (in.Scheme == OddLeft)
		if odd {
			return strconv.Itoa(2*k + 1)
		}
		return strconv.Itoa(2*k + 2)

	case OddOnly:
		return strconv.Itoa(firstWithParity(in.Start, 1) + 2*logical)

	case EvenOnly:
		return strconv.Itoa(firstWithParity(in.Start, 0) + 2*logical)

	case Custom:
		if len(in.Custom) == 0 {
			break
		}
		return strconv.Itoa(in.Custom[logical%len(in.Custom)])

	case CustomPerRow:
		ov, ok := in.RowOverrides[in.RowLabel]
		if !ok || ov.Type == CustomPerRow {
			break
		}
		dir := ov.Direction
		if dir == "" {
			dir = in.Direction
		}
		start := ov.StartNumber
		if start == 0 {
			start = 1
		}
		return SeatLabel(SeatLabelInput{
			Index:      in.Index,
			Total:      total,
			Scheme:     ov.Type,
			Start:      start,
			IsLeftSide: in.IsLeftSide,
			Custom:     ov.Numbers,
			Direction:  dir,
		})
	}
	return strconv.Itoa(in.Start + logical)
}

// LogicalIndex maps a physical position to the order in which numbers are
// handed out. center-out numbers the seat nearest the middle first and breaks
// ties toward the left.
func LogicalIndex(index, total int, dir Direction) int {
	switch dir {
	case RightToLeft:
		return total - 1 - index
	case CenterOut:
		// Compare doubled distances to stay in integers.
		mid := total - 1
		dist := func(j int) int { return abs(2*j - mid) }
		d := dist(index)
		rank := 0
		for j := 0; j < total; j++ {
			if dj := dist(j); dj < d || (dj == d && j < index) {
				rank++
			}
		}
		return rank
	default:
		return index
	}
}

func firstWithParity(start, parity int) int {
	if abs(start%2) != parity {
		return start + 1
	}
	return start
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
