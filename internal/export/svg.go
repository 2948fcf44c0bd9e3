package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/playback"
	"github.com/san-kum/sieve/internal/render"
)

// GridToSVG draws the grid with its revealed cells as an SVG document of
// px by px user units.
func GridToSVG(cfg grid.Config, cells []playback.CellState, px int, pal render.Palette) string {
	n := cfg.Size()
	cell := float64(px) / float64(n)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, px, px, px, px, pal.Background.Hex()))

	sb.WriteString("<g>\n")
	for i, s := range cells {
		if !s.Visible() {
			continue
		}
		fill := pal.Composite
		if s == playback.RevealedPrime {
			fill = pal.Prime
		}
		row, col := cfg.CellPosition(i + 1)
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(col)*cell, float64(row)*cell, cell, cell, fill.Hex()))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="2" stroke-opacity="0.6">
`, pal.Grid.Hex()))
	for i := 1; i < n; i++ {
		p := float64(i) * cell
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f"/>
`, p, p, px, p, px, p))
	}
	sb.WriteString("</g>\n")

	fontSize := 34 - n
	sb.WriteString(fmt.Sprintf(`<g fill="%s" font-family="monospace" font-size="%d" text-anchor="middle" dominant-baseline="central">
`, pal.Text.Hex(), fontSize))
	for v := 1; v <= cfg.Cells(); v++ {
		row, col := cfg.CellPosition(v)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%d</text>
`, float64(col)*cell+cell/2, float64(row)*cell+cell/2, v))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
