package render

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/hittest"
	seating "github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

// minLabelPx is the smallest seat label drawn, in pixels.
const minLabelPx = 6.0

// Overlay is the editor state drawn on top of the venue.
type Overlay struct {
	Sector    string          // selected sector ID
	Seats     map[string]bool // selected seat IDs
	HotVertex int             // vertex under the pointer, -1 for none
	Box       *geometry.Bounds
	Layers    *LayerConfig
}

// Painter draws venues. It caches the text shaper between frames.
type Painter struct {
	shaper *text.Shaper
}

// NewPainter creates a painter with the Go font collection.
func NewPainter() *Painter {
	return &Painter{shaper: text.NewShaper(text.WithCollection(gofont.Collection()))}
}

// DrawVenue paints v through cam with ov on top.
func (p *Painter) DrawVenue(gtx layout.Context, cam *Camera, v *venue.Venue, ov Overlay) {
	paint.Fill(gtx.Ops, BackgroundColor())

	for _, s := range v.Sectors {
		selected := s.ID == ov.Sector
		if ov.Layers.IsVisible(LayerOutlines) {
			drawOutline(gtx, cam, s, selected)
		}
		if ov.Layers.IsVisible(LayerSeats) {
			p.drawSeats(gtx, cam, s, ov)
		}
		if selected && ov.Layers.IsVisible(LayerHandles) {
			drawHandles(gtx, cam, s, ov.HotVertex)
		}
	}

	if ov.Box != nil {
		drawBox(gtx, cam, *ov.Box)
	}
}

func screenPoints(cam *Camera, t hittest.Target, pts []geometry.Vertex) []f32.Point {
	out := make([]f32.Point, len(pts))
	for i, pt := range pts {
		x, y := cam.WorldToScreen(t.ToWorld(pt))
		out[i] = f32.Pt(float32(x), float32(y))
	}
	return out
}

func polygonPath(ops *op.Ops, pts []f32.Point) clip.PathSpec {
	var path clip.Path
	path.Begin(ops)
	for i, pt := range pts {
		if i == 0 {
			path.MoveTo(pt)
		} else {
			path.LineTo(pt)
		}
	}
	path.Close()
	return path.End()
}

func drawOutline(gtx layout.Context, cam *Camera, s *venue.Sector, selected bool) {
	if !s.Polygon.Valid() {
		return
	}
	pts := screenPoints(cam, s.Target(), s.Polygon)

	fill := WithAlpha(ParseColor(s.Color, seatColors[seating.Standard]), s.Opacity*0.3)
	paint.FillShape(gtx.Ops, fill, clip.Outline{Path: polygonPath(gtx.Ops, pts)}.Op())

	stroke, width := ColorOutline, float32(1.5)
	if selected {
		stroke, width = ColorSelection, 2.5
	}
	paint.FillShape(gtx.Ops, stroke, clip.Stroke{Path: polygonPath(gtx.Ops, pts), Width: width}.Op())
}

func (p *Painter) drawSeats(gtx layout.Context, cam *Camera, s *venue.Sector, ov Overlay) {
	t := s.Target()
	size := s.SeatSize()
	visible := cam.VisibleBounds()

	for _, seat := range s.Seats {
		c := t.ToWorld(seat.Center(size))
		if !visible.Contains(c) {
			continue
		}
		w, h := seat.Footprint(size)
		x, y := cam.WorldToScreen(c)
		rad := geometry.Radians(s.Rotation + seat.Rotation)

		stroke := StatusColor(seat.Status)
		if ov.Seats[seat.ID] {
			stroke = ColorSelection
		}
		round := seat.Table != nil && seat.Table.Round
		drawSeat(gtx, x, y, w*cam.Zoom, h*cam.Zoom, rad, round, SeatColor(seat.Type), stroke)

		if px := h * cam.Zoom * 0.45; px >= minLabelPx && ov.Layers.IsVisible(LayerLabels) {
			p.drawLabel(gtx, x, y, rad, px, seat.Label())
		}
	}
}

// drawSeat renders a seat centred on (x, y) and rotated by radians.
func drawSeat(gtx layout.Context, x, y, width, height, radians float64, round bool, fill, stroke color.NRGBA) {
	transform := f32.Affine2D{}.
		Rotate(f32.Pt(0, 0), float32(radians)).
		Offset(f32.Pt(float32(x), float32(y)))
	stack := op.Affine(transform).Push(gtx.Ops)
	defer stack.Pop()

	r := image.Rectangle{
		Min: image.Pt(int(-width/2), int(-height/2)),
		Max: image.Pt(int(math.Ceil(width/2)), int(math.Ceil(height/2))),
	}
	if r.Dx() < 2 || r.Dy() < 2 {
		r = image.Rect(-1, -1, 1, 1)
	}

	if round {
		paint.FillShape(gtx.Ops, fill, clip.Ellipse(r).Op(gtx.Ops))
		paint.FillShape(gtx.Ops, stroke, clip.Stroke{Path: clip.Ellipse(r).Path(gtx.Ops), Width: 1}.Op())
		return
	}
	corner := int(math.Min(width, height) * 0.2)
	paint.FillShape(gtx.Ops, fill, clip.UniformRRect(r, corner).Op(gtx.Ops))
	paint.FillShape(gtx.Ops, stroke, clip.Stroke{Path: clip.UniformRRect(r, corner).Path(gtx.Ops), Width: 1}.Op())
}

func (p *Painter) drawLabel(gtx layout.Context, x, y, radians, px float64, txt string) {
	lgtx := gtx
	lgtx.Constraints = layout.Constraints{Max: image.Pt(int(px*8), int(px*2))}

	mat := op.Record(gtx.Ops)
	paint.ColorOp{Color: LabelColor()}.Add(gtx.Ops)
	material := mat.Stop()

	macro := op.Record(gtx.Ops)
	label := widget.Label{Alignment: text.Start, MaxLines: 1}
	dims := label.Layout(lgtx, p.shaper, font.Font{}, unit.Sp(px), txt, material)
	call := macro.Stop()

	transform := f32.Affine2D{}.
		Offset(f32.Pt(-float32(dims.Size.X)/2, -float32(dims.Size.Y)/2)).
		Rotate(f32.Pt(0, 0), float32(radians)).
		Offset(f32.Pt(float32(x), float32(y)))
	stack := op.Affine(transform).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}

func drawHandles(gtx layout.Context, cam *Camera, s *venue.Sector, hot int) {
	t := s.Target()
	for i, pt := range s.Polygon {
		x, y := cam.WorldToScreen(t.ToWorld(pt))
		c := ColorHandle
		if i == hot {
			c = ColorHandleHot
		}
		drawDot(gtx, x, y, hittest.VertexRadius*0.75, ColorSelection)
		drawDot(gtx, x, y, hittest.VertexRadius*0.5, c)
	}
}

func drawDot(gtx layout.Context, x, y, radius float64, fill color.NRGBA) {
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	r := int(math.Max(1, radius))
	paint.FillShape(gtx.Ops, fill, clip.Ellipse(image.Rect(-r, -r, r, r)).Op(gtx.Ops))
}

func drawBox(gtx layout.Context, cam *Camera, b geometry.Bounds) {
	x0, y0 := cam.WorldToScreen(geometry.V(b.X, b.Y))
	x1, y1 := cam.WorldToScreen(b.Max())
	r := image.Rect(int(x0), int(y0), int(x1), int(y1))
	paint.FillShape(gtx.Ops, ColorBoxSelect, clip.Rect(r).Op())

	edge := ColorBoxSelect
	edge.A = 255
	paint.FillShape(gtx.Ops, edge, clip.Stroke{Path: clip.Rect(r).Path(), Width: 1}.Op())
}
