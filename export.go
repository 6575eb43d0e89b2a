package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	exportCellSize = 16.0
	exportCaption  = 28
)

// exportPNG renders the composed grid as a PNG, one square per cell,
// with a small caption naming the draw style.
func exportPNG(g *Grid, filename string, timestamp float64) error {
	imageWidth := int(float64(g.Width()) * exportCellSize)
	imageHeight := int(float64(g.Height())*exportCellSize) + exportCaption

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			c := g.ColorAt(canvasBase, timestamp, x, y)
			dc.SetRGB255(int(c.R), int(c.G), int(c.B))
			dc.DrawRectangle(float64(x)*exportCellSize, float64(y)*exportCellSize, exportCellSize, exportCellSize)
			dc.Fill()
		}
	}

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12.0,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(color.Black)

	caption := fmt.Sprintf("pigment  %dx%d  %s", g.Width(), g.Height(), g.DrawStyle())
	dc.DrawString(caption, 4, float64(imageHeight)-10)

	return dc.SavePNG(filename)
}

// exportTXT writes the plain character render to a file.
func exportTXT(g *Grid, filename string, timestamp float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range renderPlain(g, timestamp) {
		fmt.Fprintln(file, line)
	}
	return nil
}

// copyToClipboard puts the plain character render on the system
// clipboard.
func copyToClipboard(g *Grid, timestamp float64) error {
	lines := renderPlain(g, timestamp)
	text := ""
	for _, line := range lines {
		text += line + "\n"
	}
	return clipboard.WriteAll(text)
}
