//go:build ebiten

package render

import (
	"image/color"

	"lifeline/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// minGridScale is the smallest cell size at which cell borders are drawn.
const minGridScale = 6

// BoardPainter draws a life.Grid cell-per-pixel and scales it up on screen.
type BoardPainter struct {
	rows, cols int
	scale      int
	board      *ebiten.Image
	lines      *ebiten.Image
	rgba       []byte
}

// NewBoardPainter allocates a painter for a rows*cols board drawn at scale.
func NewBoardPainter(rows, cols, scale int) *BoardPainter {
	bp := &BoardPainter{
		rows:  rows,
		cols:  cols,
		scale: scale,
		board: ebiten.NewImage(cols, rows),
		rgba:  make([]byte, 4*rows*cols),
	}
	if scale >= minGridScale {
		bp.lines = gridLines(rows, cols, scale)
	}
	return bp
}

// gridLines pre-renders faint cell borders for large scales.
func gridLines(rows, cols, scale int) *ebiten.Image {
	img := ebiten.NewImage(cols*scale, rows*scale)
	line := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for r := 0; r <= rows; r++ {
		for x := 0; x < cols*scale; x++ {
			img.Set(x, min(r*scale, rows*scale-1), line)
		}
	}
	for c := 0; c <= cols; c++ {
		for y := 0; y < rows*scale; y++ {
			img.Set(min(c*scale, cols*scale-1), y, line)
		}
	}
	return img
}

// Draw paints the current generation of g onto dst. Boards whose size
// differs from the painter's are ignored.
func (bp *BoardPainter) Draw(dst *ebiten.Image, g *life.Grid) {
	if g.Height() != bp.rows || g.Width() != bp.cols {
		return
	}
	FillBinaryRGBA(bp.rgba, g.Cells(), AliveColor, DeadColor)
	bp.board.WritePixels(bp.rgba)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bp.scale), float64(bp.scale))
	dst.DrawImage(bp.board, op)
	if bp.lines != nil {
		dst.DrawImage(bp.lines, &ebiten.DrawImageOptions{})
	}
}

// CellAt returns the cell under the screen position (x, y).
func (bp *BoardPainter) CellAt(x, y int) (row, column int, ok bool) {
	return CellAt(x, y, bp.scale, bp.cols, bp.rows)
}
