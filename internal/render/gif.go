package render

import (
	"context"
	"image"
	"image/gif"
	"io"
	"runtime"

	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/playback"
	"golang.org/x/sync/errgroup"
)

type snapshot struct {
	cells []playback.CellState
	ticks int
}

// Cycle renders one full playback cycle of cfg. Consecutive pause ticks are
// folded into a single frame with a longer delay.
func Cycle(ctx context.Context, cfg grid.Config, px, frameRate int, pal Palette) (*gif.GIF, error) {
	e := playback.New(cfg.Size())
	snaps := make([]snapshot, 0, cfg.Cells()+1)
	snaps = append(snaps, snapshot{cells: e.RevealedCells(), ticks: 1})

	for range e.Len() - 1 {
		r := e.Advance()
		if r.Pause {
			snaps[len(snaps)-1].ticks++
			continue
		}
		snaps = append(snaps, snapshot{cells: e.RevealedCells(), ticks: 1})
	}

	frames := make([]*image.Paletted, len(snaps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, s := range snaps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			frames[i] = Frame(cfg, s.cells, px, pal)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	delay := FrameDelay(frameRate)
	anim := &gif.GIF{LoopCount: 0}
	for i, f := range frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, delay*snaps[i].ticks)
	}
	return anim, nil
}

// FrameDelay converts a frame rate to GIF delay units (1/100 s).
func FrameDelay(frameRate int) int {
	if frameRate <= 0 {
		return 10
	}
	return max(1, 100/frameRate)
}

// Encode writes frames as a looping GIF, one delay per frame.
func Encode(w io.Writer, frames []*image.Paletted, frameRate int) error {
	anim := &gif.GIF{LoopCount: 0}
	delay := FrameDelay(frameRate)
	for _, f := range frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

func EncodeGIF(w io.Writer, anim *gif.GIF) error {
	return gif.EncodeAll(w, anim)
}
