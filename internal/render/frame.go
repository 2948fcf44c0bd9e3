// Package render rasterizes playback state into images and GIF animations.
package render

import (
	"image"
	"image/color"
	"strconv"

	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/playback"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const lineWidth = 2

// Frame draws a px-by-px image of the grid with the given cell states.
// Row 0 is at the top, so 1 sits in the top-left corner.
func Frame(cfg grid.Config, cells []playback.CellState, px int, pal Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, px, px), pal.Colors())
	n := cfg.Size()
	cell := float64(px) / float64(n)

	for i, s := range cells {
		if !s.Visible() {
			continue
		}
		idx := idxComposite
		if s == playback.RevealedPrime {
			idx = idxPrime
		}
		row, col := i/n, i%n
		fillRect(img, int(float64(col)*cell), int(float64(row)*cell), int(float64(col+1)*cell), int(float64(row+1)*cell), idx)
	}

	for i := 1; i < n; i++ {
		p := int(float64(i) * cell)
		fillRect(img, p-lineWidth/2, 0, p+lineWidth-lineWidth/2, px, idxGrid)
		fillRect(img, 0, p-lineWidth/2, px, p+lineWidth-lineWidth/2, idxGrid)
	}

	drawLabels(img, cfg, cell, pal.Colors()[idxText])
	return img
}

func fillRect(img *image.Paletted, x0, y0, x1, y1 int, idx uint8) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetColorIndex(x, y, idx)
		}
	}
}

func drawLabels(img *image.Paletted, cfg grid.Config, cell float64, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	ascent := face.Metrics().Ascent.Ceil()

	for v := 1; v <= cfg.Cells(); v++ {
		row, col := cfg.CellPosition(v)
		label := strconv.Itoa(v)
		w := d.MeasureString(label).Ceil()
		cx := int(float64(col)*cell + cell/2)
		cy := int(float64(row)*cell + cell/2)
		d.Dot = fixed.P(cx-w/2, cy+ascent/2)
		d.DrawString(label)
	}
}
