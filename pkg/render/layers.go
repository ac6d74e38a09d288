package render

// Layer is one independently toggled part of the canvas.
type Layer string

const (
	LayerOutlines Layer = "outlines"
	LayerSeats    Layer = "seats"
	LayerLabels   Layer = "labels"
	LayerHandles  Layer = "handles"
)

// Layers lists every canvas layer in drawing order.
var Layers = []Layer{LayerOutlines, LayerSeats, LayerLabels, LayerHandles}

// LayerConfig controls which layers are drawn. Layers are visible unless
// hidden.
type LayerConfig struct {
	hidden map[Layer]bool
}

// NewLayerConfig creates a configuration with every layer visible.
func NewLayerConfig() *LayerConfig {
	return &LayerConfig{hidden: make(map[Layer]bool)}
}

// SetVisible sets the visibility of a layer.
func (lc *LayerConfig) SetVisible(l Layer, visible bool) {
	lc.hidden[l] = !visible
}

// Toggle flips a layer and returns its new visibility.
func (lc *LayerConfig) Toggle(l Layer) bool {
	lc.hidden[l] = !lc.hidden[l]
	return !lc.hidden[l]
}

// IsVisible reports whether a layer is drawn. A nil config shows everything.
func (lc *LayerConfig) IsVisible(l Layer) bool {
	if lc == nil {
		return true
	}
	return !lc.hidden[l]
}
