package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvasBase is the start color fed to every cell composition: an
// unpainted canvas is white.
var canvasBase = Color{channelMax, channelMax, channelMax}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// luminance approximates perceived brightness in [0,255].
func (c Color) luminance() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// contrastHex picks a readable foreground for text drawn over c.
func (c Color) contrastHex() string {
	if c.luminance() > 140 {
		return "#000000"
	}
	return "#ffffff"
}

// renderGrid renders the grid as one string per row, two terminal
// columns per cell. The cursor cell and the rest of the brush
// footprint get an overlay glyph; pass cursorX = -1 to render bare.
func renderGrid(g *Grid, timestamp float64, cursorX, cursorY int) []string {
	lines := make([]string, 0, g.Height())
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		b.Reset()
		for x := 0; x < g.Width(); x++ {
			c := g.ColorAt(canvasBase, timestamp, x, y)
			style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
			cell := "  "
			if cursorX >= 0 {
				dist := abs(x-cursorX) + abs(y-cursorY)
				if x == cursorX && y == cursorY {
					style = style.Foreground(lipgloss.Color(c.contrastHex())).Bold(true)
					cell = "[]"
				} else if dist <= g.BrushSize() {
					style = style.Foreground(lipgloss.Color(c.contrastHex()))
					cell = "··"
				}
			}
			b.WriteString(style.Render(cell))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// inkRamp maps decreasing luminance to heavier glyphs for the plain
// text render.
const inkRamp = " .:-=+*#%@"

// renderPlain renders the grid without color, one character per cell,
// for the text export and the clipboard copy.
func renderPlain(g *Grid, timestamp float64) []string {
	lines := make([]string, 0, g.Height())
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		b.Reset()
		for x := 0; x < g.Width(); x++ {
			c := g.ColorAt(canvasBase, timestamp, x, y)
			idx := (channelMax - c.luminance()) * len(inkRamp) / (channelMax + 1)
			b.WriteByte(inkRamp[idx])
		}
		lines = append(lines, b.String())
	}
	return lines
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
