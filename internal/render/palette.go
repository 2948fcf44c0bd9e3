package render

import (
	"image/color"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// FadeTicks is how long a freshly revealed cell takes to settle into its
// class color.
const FadeTicks = 6

type Palette struct {
	Background colorful.Color
	Grid       colorful.Color
	Hidden     colorful.Color
	Prime      colorful.Color
	Composite  colorful.Color
	Text       colorful.Color
	Highlight  colorful.Color
}

// MustHex parses a #rrggbb color and falls back to white.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Classic mirrors the original window: gray background, green grid,
// red primes and light blue composites.
func Classic() Palette {
	return Palette{
		Background: MustHex("#333333"),
		Grid:       MustHex("#00e600"),
		Hidden:     MustHex("#333333"),
		Prime:      MustHex("#ff3333"),
		Composite:  MustHex("#99ffff"),
		Text:       MustHex("#ffffff"),
		Highlight:  MustHex("#ffff66"),
	}
}

// Fade blends from the highlight color to the settled color as age goes
// from 0 to FadeTicks.
func (p Palette) Fade(settled colorful.Color, age int) colorful.Color {
	if age >= FadeTicks {
		return settled
	}
	if age < 0 {
		age = 0
	}
	t := ease.OutQuad(float64(age) / float64(FadeTicks))
	return p.Highlight.BlendHcl(settled, t).Clamped()
}

// Colors returns the GIF palette. Indices are stable: background, grid,
// hidden, prime, composite, text.
func (p Palette) Colors() color.Palette {
	return color.Palette{
		rgba(p.Background),
		rgba(p.Grid),
		rgba(p.Hidden),
		rgba(p.Prime),
		rgba(p.Composite),
		rgba(p.Text),
	}
}

const (
	idxBackground uint8 = iota
	idxGrid
	idxHidden
	idxPrime
	idxComposite
	idxText
)

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
