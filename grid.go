package main

// Grid is the painting surface: a matrix of cells, each owning one
// LayerStore of the style chosen at construction. Styles are never
// mixed within a grid.
type Grid struct {
	width     int
	height    int
	drawStyle DrawStyle
	brushSize int
	cells     [][]LayerStore // indexed cells[x][y]
}

func NewGrid(style DrawStyle, width, height int, reg *Registry) *Grid {
	g := &Grid{
		width:     width,
		height:    height,
		drawStyle: style,
		brushSize: defaultBrushSize,
		cells:     make([][]LayerStore, width),
	}
	for x := 0; x < width; x++ {
		g.cells[x] = make([]LayerStore, height)
		for y := 0; y < height; y++ {
			g.cells[x][y] = newLayerStore(style, reg.Count())
		}
	}
	return g
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) DrawStyle() DrawStyle {
	return g.drawStyle
}

func (g *Grid) BrushSize() int {
	return g.brushSize
}

// IncreaseBrushSize grows the brush by one, capped at maxBrushSize.
func (g *Grid) IncreaseBrushSize() {
	if g.brushSize < maxBrushSize {
		g.brushSize++
	}
}

// DecreaseBrushSize shrinks the brush by one, floored at minBrushSize.
func (g *Grid) DecreaseBrushSize() {
	if g.brushSize > minBrushSize {
		g.brushSize--
	}
}

// StoreAt returns the store for the cell, or nil when out of bounds.
func (g *Grid) StoreAt(x, y int) LayerStore {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return g.cells[x][y]
}

// ColorAt composes the effective color of one cell from a start color.
func (g *Grid) ColorAt(start Color, timestamp float64, x, y int) Color {
	store := g.StoreAt(x, y)
	if store == nil {
		return start
	}
	return store.GetColor(start, timestamp, x, y)
}

// Special triggers the store-specific special effect on every cell.
// Stores never read each other, so traversal order is not observable.
func (g *Grid) Special() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.cells[x][y].Special()
		}
	}
}
