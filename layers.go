package main

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple, the only color representation the
// engine works with.
type Color struct {
	R, G, B uint8
}

func (c Color) Invert() Color {
	return Color{channelMax - c.R, channelMax - c.G, channelMax - c.B}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / channelMax,
		G: float64(c.G) / channelMax,
		B: float64(c.B) / channelMax,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{r, g, b}
}

// ApplyFunc transforms a color for the cell at (x, y) at the given
// session timestamp (seconds). Must be pure.
type ApplyFunc func(c Color, timestamp float64, x, y int) Color

// Layer describes one registered paint type. Immutable once
// registered; many cells may hold the same Layer at once.
type Layer struct {
	Index      int
	Name       string
	Background Color
	Apply      ApplyFunc
}

// Registry is the fixed set of layer types known to a session. It is
// built once before any grid exists and never mutated afterwards.
type Registry struct {
	layers []Layer
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a layer type, assigning the next free index.
func (r *Registry) Register(name string, bg Color, apply ApplyFunc) Layer {
	layer := Layer{
		Index:      len(r.layers),
		Name:       name,
		Background: bg,
		Apply:      apply,
	}
	r.layers = append(r.layers, layer)
	return layer
}

func (r *Registry) Count() int {
	return len(r.layers)
}

func (r *Registry) Layers() []Layer {
	return r.layers
}

func (r *Registry) ByIndex(i int) (Layer, bool) {
	if i < 0 || i >= len(r.layers) {
		return Layer{}, false
	}
	return r.layers[i], true
}

// DefaultRegistry builds the stock palette used by the interactive
// front end.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("black", Color{0, 0, 0}, solid(Color{0, 0, 0}))
	r.Register("red", Color{200, 30, 30}, solid(Color{200, 30, 30}))
	r.Register("green", Color{30, 160, 60}, solid(Color{30, 160, 60}))
	r.Register("blue", Color{40, 70, 200}, solid(Color{40, 70, 200}))
	r.Register("invert", Color{30, 30, 30}, applyInvert)
	r.Register("lighten", Color{230, 230, 200}, applyLighten)
	r.Register("darken", Color{60, 60, 70}, applyDarken)
	r.Register("rainbow", Color{255, 150, 0}, applyRainbow)
	return r
}

// solid ignores its input and paints a fixed color.
func solid(c Color) ApplyFunc {
	return func(Color, float64, int, int) Color {
		return c
	}
}

func applyInvert(c Color, _ float64, _, _ int) Color {
	return c.Invert()
}

func applyLighten(c Color, _ float64, _, _ int) Color {
	h, s, l := c.toColorful().Hsl()
	l += 0.15
	if l > 1 {
		l = 1
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

func applyDarken(c Color, _ float64, _, _ int) Color {
	h, s, l := c.toColorful().Hsl()
	l -= 0.15
	if l < 0 {
		l = 0
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// applyRainbow cycles the hue over time and position so the grid
// shimmers while the display loop keeps redrawing.
func applyRainbow(_ Color, timestamp float64, x, y int) Color {
	hue := math.Mod(timestamp*40+float64(x)*13+float64(y)*7, 360)
	if hue < 0 {
		hue += 360
	}
	return fromColorful(colorful.Hsl(hue, 0.85, 0.55))
}
