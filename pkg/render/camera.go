// Package render draws a venue with Gio and maps between screen pixels and
// venue coordinates.
package render

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
)

// Zoom limits in pixels per venue unit.
const (
	MinZoom = 0.05
	MaxZoom = 50.0
)

// Camera represents a viewport onto the venue. Venue and screen coordinates
// both grow downwards, so there is no axis flip.
type Camera struct {
	// Center position in venue coordinates
	CenterX float64
	CenterY float64

	// Zoom level (pixels per venue unit)
	Zoom float64

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera at unit zoom looking at the origin.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         1,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts venue coordinates to screen pixels.
func (c *Camera) WorldToScreen(p geometry.Vertex) (float64, float64) {
	x := (p.X-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2
	y := (p.Y-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2
	return x, y
}

// ScreenToWorld converts screen pixels to venue coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float64) geometry.Vertex {
	return geometry.V(
		(screenX-float64(c.ScreenWidth)/2)/c.Zoom+c.CenterX,
		(screenY-float64(c.ScreenHeight)/2)/c.Zoom+c.CenterY,
	)
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt zooms by factor keeping the venue point under (screenX, screenY)
// stationary. factor > 1 zooms in.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToWorld(screenX, screenY)
	c.Zoom = math.Min(MaxZoom, math.Max(MinZoom, c.Zoom*factor))
	after := c.ScreenToWorld(screenX, screenY)

	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit centres b and zooms so it fills 90% of the smaller screen dimension.
func (c *Camera) Fit(b geometry.Bounds) {
	if b.Width <= 0 || b.Height <= 0 || c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return
	}
	center := b.Center()
	c.CenterX, c.CenterY = center.X, center.Y

	zoomX := float64(c.ScreenWidth) * 0.9 / b.Width
	zoomY := float64(c.ScreenHeight) * 0.9 / b.Height
	c.Zoom = math.Min(MaxZoom, math.Max(MinZoom, math.Min(zoomX, zoomY)))
}

// UpdateScreenSize updates camera when window is resized
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// VisibleBounds returns the visible area in venue coordinates.
func (c *Camera) VisibleBounds() geometry.Bounds {
	tl := c.ScreenToWorld(0, 0)
	br := c.ScreenToWorld(float64(c.ScreenWidth), float64(c.ScreenHeight))
	return geometry.BoundsOf([]geometry.Vertex{tl, br})
}
