// Package export encodes simulation timelines as animated GIFs.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"lifeline/internal/render"
	"lifeline/pkg/sims/life"
)

// Palette maps dead cells to white and alive cells to black.
var Palette = color.Palette{render.DeadColor, render.AliveColor}

// ErrNoFrames is returned when asked to encode an empty timeline.
var ErrNoFrames = errors.New("timeline has no frames")

// Options controls how a timeline is encoded.
type Options struct {
	// Scale enlarges every cell to a Scale*Scale pixel block.
	Scale     int
	// Delay is the per-frame delay in hundredths of a second.
	Delay     int
	// LoopCount follows image/gif: 0 loops forever, -1 plays once.
	LoopCount int
}

// DefaultOptions returns the settings used by the command line tools.
func DefaultOptions() Options {
	return Options{Scale: 5, Delay: 10, LoopCount: 0}
}

// Encode writes frames as a width*height animated GIF to w.
func Encode(w io.Writer, width, height int, frames life.Timeline, opts Options) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	pw, ph := width*opts.Scale, height*opts.Scale
	if pw > 0xFFFF || ph > 0xFFFF {
		return fmt.Errorf("image %dx%d exceeds GIF limits", pw, ph)
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: opts.LoopCount,
		Config:    image.Config{ColorModel: Palette, Width: pw, Height: ph},
	}
	for i, frame := range frames {
		if len(frame) != height {
			return fmt.Errorf("frame %d has %d rows, want %d", i, len(frame), height)
		}
		for y, row := range frame {
			if len(row) != width {
				return fmt.Errorf("frame %d row %d has %d cells, want %d", i, y, len(row), width)
			}
		}
		img := image.NewPaletted(image.Rect(0, 0, pw, ph), Palette)
		render.Enlarge(img.Pix, frame, opts.Scale)
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, opts.Delay)
	}
	return gif.EncodeAll(w, anim)
}

// Save encodes frames into the file at path, replacing it if present.
func Save(path string, width, height int, frames life.Timeline, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, width, height, frames, opts); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
