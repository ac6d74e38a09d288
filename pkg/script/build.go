package script

import (
	"fmt"
	"slices"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/labels"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

// Error is a semantic error at a position in the script.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func errorf(pos lexer.Position, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Load parses and builds the script at path.
func Load(path string) (*venue.Venue, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// Build creates the venue a parsed script describes and lays out the seats
// of every sector.
func Build(f *File) (*venue.Venue, error) {
	v := venue.New(f.Name)
	names := map[string]bool{}
	for _, decl := range f.Sectors {
		if names[decl.Name] {
			return nil, errorf(decl.Pos, "duplicate sector %q", decl.Name)
		}
		names[decl.Name] = true

		s, err := buildSector(decl)
		if err != nil {
			return nil, err
		}
		v.Add(s)
	}
	return v, nil
}

func buildSector(decl *SectorDecl) (*venue.Sector, error) {
	sh, ok := shape.Parse(decl.Shape)
	if !ok {
		return nil, errorf(decl.Pos, "unknown shape %q", decl.Shape)
	}
	b := geometry.Rect(decl.X, decl.Y, decl.Width, decl.Height)
	if b.Width < layout.MinSectorSize || b.Height < layout.MinSectorSize ||
		b.Width > layout.MaxSectorSize || b.Height > layout.MaxSectorSize {
		return nil, errorf(decl.Pos, "sector %q size %gx%g out of range", decl.Name, b.Width, b.Height)
	}

	s := venue.NewSector(decl.Name, sh, b)
	curvature := 0
	var outline geometry.Polygon

	for _, st := range decl.Settings {
		if err := apply(s, st, &curvature, &outline); err != nil {
			return nil, err
		}
	}

	s.SetCurvature(curvature)
	if outline != nil {
		if err := s.Reshape(outline); err != nil {
			return nil, errorf(decl.Pos, "sector %q: %v", decl.Name, err)
		}
	}
	s.Regenerate()
	return s, nil
}

func apply(s *venue.Sector, st *Setting, curvature *int, outline *geometry.Polygon) error {
	p := &s.Params
	switch {
	case st.Rows != nil:
		p.Rows = *st.Rows
	case st.Cols != nil:
		p.Cols = *st.Cols
	case st.Seat != nil:
		if *st.Seat <= 0 {
			return errorf(st.Pos, "seat size must be positive")
		}
		p.SeatSize = *st.Seat
	case st.Spacing != nil:
		p.SeatSpacing = *st.Spacing
		p.RowSpacing = *st.Spacing
	case st.RowSpacing != nil:
		p.RowSpacing = *st.RowSpacing

	case st.RowLabels != nil:
		t, ok := labels.ParseRowType(st.RowLabels.Type)
		if !ok {
			return errorf(st.Pos, "unknown row label type %q", st.RowLabels.Type)
		}
		p.RowType = t
		p.RowStart = ""
		if st.RowLabels.Start != nil {
			p.RowStart = *st.RowLabels.Start
		}

	case st.Numbering != nil:
		sc, ok := labels.ParseScheme(st.Numbering.Scheme)
		if !ok {
			return errorf(st.Pos, "unknown numbering scheme %q", st.Numbering.Scheme)
		}
		p.Scheme = sc
		if st.Numbering.Start != nil {
			p.SeatStart = *st.Numbering.Start
		}

	case st.Direction != nil:
		d, ok := labels.ParseDirection(*st.Direction)
		if !ok {
			return errorf(st.Pos, "unknown direction %q", *st.Direction)
		}
		p.Direction = d

	case st.Curvature != nil:
		if *st.Curvature < shape.MinCurvature || *st.Curvature > shape.MaxCurvature {
			return errorf(st.Pos, "curvature %d not within 0..100", *st.Curvature)
		}
		*curvature = *st.Curvature
	case st.Rotation != nil:
		s.SetRotation(*st.Rotation)
	case st.GridRotation != nil:
		p.Rotation = *st.GridRotation
	case st.Color != nil:
		s.Color = *st.Color
	case st.Opacity != nil:
		s.Opacity = *st.Opacity
	case st.Prefix != nil:
		p.Prefix = *st.Prefix

	case st.RowCounts != nil:
		p.RowSeatCounts = st.RowCounts
	case st.Align != nil:
		a, ok := layout.ParseAlign(*st.Align)
		if !ok {
			return errorf(st.Pos, "unknown alignment %q", *st.Align)
		}
		p.RowAlign = a
	case st.Custom != nil:
		p.CustomNumbers = st.Custom

	case st.Override != nil:
		ov := st.Override
		sc, ok := labels.ParseScheme(ov.Scheme)
		if !ok {
			return errorf(st.Pos, "unknown numbering scheme %q", ov.Scheme)
		}
		rn := labels.RowNumbering{RowLabel: ov.Row, Type: sc, Numbers: ov.Numbers}
		if ov.Start != nil {
			rn.StartNumber = *ov.Start
		}
		if ov.Direction != nil {
			rn.Direction = labels.Direction(*ov.Direction)
		}
		if p.RowNumbering == nil {
			p.RowNumbering = map[string]labels.RowNumbering{}
		}
		p.RowNumbering[ov.Row] = rn

	case st.Furniture != nil:
		f, ok := layout.ParseFurniture(st.Furniture.Kind)
		if !ok {
			return errorf(st.Pos, "unknown furniture %q", st.Furniture.Kind)
		}
		p.Furniture = f
		p.Table = layout.DefaultTable(f)
		if sz := st.Furniture.Size; sz != nil && p.Table != nil {
			p.Table.Width, p.Table.Height = sz.Width, sz.Height
			if sz.Chairs != nil {
				p.Table.Chairs = *sz.Chairs
			}
		}

	case st.SeatType != nil:
		t := layout.SeatType(*st.SeatType)
		if !slices.Contains(layout.SeatTypes, t) {
			return errorf(st.Pos, "unknown seat type %q", *st.SeatType)
		}
		p.DefaultType = t

	case st.Vertex != nil:
		*outline = append(*outline, geometry.V(st.Vertex.X, st.Vertex.Y))
	}
	return nil
}
