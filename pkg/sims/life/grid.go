package life

import (
	"fmt"
	"math"
	"strings"

	"lifeline/pkg/core"
)

// Grid implements Conway's Game of Life on a toroidal board.
//
// Cells are stored row-major; index(row, column) = row*width + column. The
// board is double buffered: Advance fills nxt from cur and then swaps them,
// so no cell ever sees an already-updated neighbor.
type Grid struct {
	w, h    int
	cur     []CellState
	nxt     []CellState
	view    []uint8
	gen     int
	workers int
}

// New builds a Grid from a row-major layout of 0/1 values.
func New(width, height int, cells []int) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells, want %d (%dx%d)", ErrInvalidLength, len(cells), width*height, width, height)
	}
	g := alloc(width, height)
	for i, v := range cells {
		c, ok := cellStateOf(v)
		if !ok {
			return nil, fmt.Errorf("%w: %d at row %d column %d", ErrInvalidCellValue, v, i/width, i%width)
		}
		g.cur[i] = c
	}
	return g, nil
}

// NewRandom builds a width*height Grid seeded from the given value. Roughly
// two thirds of the cells start alive.
func NewRandom(width, height int, seed int64) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	g := alloc(width, height)
	g.Reset(seed)
	return g, nil
}

// checkDimensions rejects non-positive sizes and sizes whose cell count does
// not fit in an int.
func checkDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return fmt.Errorf("%w: %dx%d overflows the cell count", ErrInvalidDimensions, width, height)
	}
	return nil
}

func alloc(w, h int) *Grid {
	return &Grid{
		w:   w,
		h:   h,
		cur: make([]CellState, w*h),
		nxt: make([]CellState, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Generation returns how many times the grid has been advanced.
func (g *Grid) Generation() int { return g.gen }

// SetWorkers sets how many goroutines Advance may split rows across. Values
// below 2 keep Advance serial.
func (g *Grid) SetWorkers(n int) { g.workers = n }

func (g *Grid) index(row, column int) int { return row*g.w + column }

// Cell returns the state at (row, column). Coordinates outside the board wrap.
func (g *Grid) Cell(row, column int) CellState {
	row = (row%g.h + g.h) % g.h
	column = (column%g.w + g.w) % g.w
	return g.cur[g.index(row, column)]
}

// LiveNeighbors counts the alive cells around (row, column). Rows are paired
// with the offsets {height-1, 0, 1} and columns with {width-1, 0, 1}, taken
// modulo the dimension, and every pair where both offsets are 0 is skipped.
// On a board 1 cell wide or tall an offset set holds 0 twice, so more pairs
// are skipped and the remaining ones land on the same cell, possibly
// (row, column) itself.
func (g *Grid) LiveNeighbors(row, column int) int {
	w, h := g.w, g.h
	rows := [3]int{h - 1, 0, 1}
	cols := [3]int{w - 1, 0, 1}
	n := 0
	for _, dr := range rows {
		r := (row + dr) % h
		for _, dc := range cols {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (column + dc) % w
			n += int(g.cur[r*w+c])
		}
	}
	return n
}

// Toggle flips the cell at (row, column). Coordinates outside the board wrap.
func (g *Grid) Toggle(row, column int) {
	row = (row%g.h + g.h) % g.h
	column = (column%g.w + g.w) % g.w
	idx := g.index(row, column)
	g.cur[idx] = Alive - g.cur[idx]
}

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// Advance moves the grid forward one generation.
func (g *Grid) Advance() {
	if g.workers > 1 && g.h > 1 {
		g.advanceParallel(g.workers)
	} else {
		g.advanceRows(0, g.h)
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// advanceRows writes the next state of rows [lo, hi) into nxt.
func (g *Grid) advanceRows(lo, hi int) {
	for row := lo; row < hi; row++ {
		for column := 0; column < g.w; column++ {
			idx := g.index(row, column)
			g.nxt[idx] = next(g.cur[idx], g.LiveNeighbors(row, column))
		}
	}
}

// Reset randomizes the board using the provided seed and rewinds the
// generation counter.
func (g *Grid) Reset(seed int64) {
	rng := core.NewRNG(seed)
	for i := range g.cur {
		g.cur[i] = CellState(rng.Pick(randomChoices))
	}
	g.gen = 0
}

var randomChoices = []uint8{0, 1, 1}

// Cells exposes the current grid values as 0/1 bytes. The returned slice is
// reused by later calls.
func (g *Grid) Cells() []uint8 {
	if g.view == nil {
		g.view = make([]uint8, len(g.cur))
	}
	for i, c := range g.cur {
		g.view[i] = uint8(c)
	}
	return g.view
}

// Snapshot captures the current state as height rows of width 0/1 values.
func (g *Grid) Snapshot() Snapshot {
	s := make(Snapshot, g.h)
	flat := make([]uint8, len(g.cur))
	for i, c := range g.cur {
		flat[i] = uint8(c)
	}
	for row := range s {
		s[row] = flat[row*g.w : (row+1)*g.w : (row+1)*g.w]
	}
	return s
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := alloc(g.w, g.h)
	copy(c.cur, g.cur)
	c.gen = g.gen
	c.workers = g.workers
	return c
}

// String draws the grid one row per line, alive cells as ■ and dead as □.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.h; row++ {
		for column := 0; column < g.w; column++ {
			if column > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g.cur[g.index(row, column)].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
