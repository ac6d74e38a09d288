package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a complete layout script.
// Example:
//
//	venue "Main Hall"
//	sector "Stalls" rectangle at 0 0 size 400 300 { rows 4 cols 4 }
type File struct {
	Pos     lexer.Position
	Name    string        `"venue" @String`
	Sectors []*SectorDecl `@@*`
}

// SectorDecl declares one sector and its settings.
type SectorDecl struct {
	Pos      lexer.Position
	Name     string     `"sector" @String`
	Shape    string     `@Ident`
	X        float64    `"at" @Number`
	Y        float64    `@Number`
	Width    float64    `"size" @Number`
	Height   float64    `@Number`
	Settings []*Setting `( LBrace @@* RBrace )?`
}

// Setting is a single statement inside a sector body. Exactly one field is
// set.
type Setting struct {
	Pos lexer.Position

	Rows         *int           `  "rows" @Number`
	Cols         *int           `| "cols" @Number`
	Seat         *float64       `| "seat" @Number`
	Spacing      *float64       `| "spacing" @Number`
	RowSpacing   *float64       `| "rowspacing" @Number`
	RowLabels    *RowLabels     `| @@`
	Numbering    *Numbering     `| @@`
	Direction    *string        `| "direction" @Ident`
	Curvature    *int           `| "curvature" @Number`
	Rotation     *float64       `| "rotation" @Number`
	GridRotation *float64       `| "gridrotation" @Number`
	Color        *string        `| "color" @String`
	Opacity      *float64       `| "opacity" @Number`
	Prefix       *string        `| "prefix" @String`
	RowCounts    []int          `| "rowcounts" @Number+`
	Align        *string        `| "align" @Ident`
	Custom       []int          `| "custom" @Number+`
	Override     *Override      `| @@`
	Furniture    *FurnitureDecl `| @@`
	SeatType     *string        `| "type" @Ident`
	Vertex       *Point         `| @@`
}

// RowLabels selects the row label type and optional start.
// Example: rowlabels roman "4"
type RowLabels struct {
	Type  string  `"rowlabels" @Ident`
	Start *string `@String?`
}

// Numbering selects the seat numbering scheme and optional start.
// Example: numbering odd-left 1
type Numbering struct {
	Scheme string `"numbering" @Ident`
	Start  *int   `@Number?`
}

// Override replaces the numbering of a single row.
// Example: override "B" custom 0 numbers 10 12 14 rtl
type Override struct {
	Row       string  `"override" @String`
	Scheme    string  `@Ident`
	Start     *int    `@Number?`
	Numbers   []int   `( "numbers" @Number+ )?`
	Direction *string `@( "ltr" | "rtl" | "center-out" )?`
}

// FurnitureDecl switches the sector to tables.
// Example: furniture table 120 60 6
type FurnitureDecl struct {
	Kind string     `"furniture" @Ident`
	Size *TableSize `@@?`
}

// TableSize is the table footprint and chair count.
type TableSize struct {
	Width  float64 `@Number`
	Height float64 `@Number`
	Chairs *int    `@Number?`
}

// Point adds one vertex of a hand-drawn outline.
// Example: vertex 10 20
type Point struct {
	X float64 `"vertex" @Number`
	Y float64 `@Number`
}
