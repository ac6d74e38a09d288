package render

import (
	"image/color"
	"strconv"
	"strings"

	seating "github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
)

// ColorTheme selects the canvas palette.
type ColorTheme int

const (
	ThemeLight ColorTheme = iota
	ThemeDark
)

// ThemeNames maps theme enum to display name
var ThemeNames = map[ColorTheme]string{
	ThemeLight: "Light",
	ThemeDark:  "Dark",
}

// CurrentTheme is the active color theme (default: Light)
var CurrentTheme = ThemeLight

// SetTheme changes the active color theme
func SetTheme(theme ColorTheme) {
	CurrentTheme = theme
}

// Special colors
var (
	ColorSelection = color.NRGBA{R: 255, G: 160, B: 0, A: 255}  // Selected outline and seats (amber)
	ColorHandle    = color.NRGBA{R: 255, G: 255, B: 255, A: 255} // Vertex handle fill
	ColorHandleHot = color.NRGBA{R: 255, G: 60, B: 60, A: 255}   // Vertex under the pointer
	ColorBoxSelect = color.NRGBA{R: 30, G: 136, B: 229, A: 60}   // Box selection fill
	ColorOutline   = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

var seatColors = map[seating.SeatType]color.NRGBA{
	seating.Standard:   {R: 67, G: 160, B: 71, A: 255},
	seating.VIP:        {R: 212, G: 160, B: 23, A: 255},
	seating.Accessible: {R: 30, G: 136, B: 229, A: 255},
	seating.Companion:  {R: 142, G: 36, B: 170, A: 255},
	seating.Restricted: {R: 117, G: 117, B: 117, A: 255},
}

var statusColors = map[seating.SeatStatus]color.NRGBA{
	seating.Available: {R: 27, G: 94, B: 32, A: 255},
	seating.Reserved:  {R: 251, G: 140, B: 0, A: 255},
	seating.Sold:      {R: 229, G: 57, B: 53, A: 255},
	seating.Blocked:   {R: 0, G: 0, B: 0, A: 255},
}

// BackgroundColor is the canvas colour of the current theme.
func BackgroundColor() color.NRGBA {
	if CurrentTheme == ThemeDark {
		return color.NRGBA{R: 46, G: 52, B: 64, A: 255}
	}
	return color.NRGBA{R: 250, G: 250, B: 250, A: 255}
}

// LabelColor is the seat label colour of the current theme.
func LabelColor() color.NRGBA {
	if CurrentTheme == ThemeDark {
		return color.NRGBA{R: 236, G: 239, B: 244, A: 255}
	}
	return color.NRGBA{A: 255}
}

// SeatColor returns the fill for a seat type. Unknown types render as
// standard seats.
func SeatColor(t seating.SeatType) color.NRGBA {
	if c, ok := seatColors[t]; ok {
		return c
	}
	return seatColors[seating.Standard]
}

// StatusColor returns the outline for a seat status.
func StatusColor(s seating.SeatStatus) color.NRGBA {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[seating.Available]
}

// ParseColor reads "#rgb" or "#rrggbb". Anything else yields fallback.
func ParseColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// WithAlpha returns c with alpha a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a * 255)
	return c
}
