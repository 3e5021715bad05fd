// Package field reads and writes the plain-text board format accepted by the
// command line tools:
//
//	5 3
//	00000
//	01110
//	00000
//
// The first line holds the width and height, each following line one row of
// 0/1 digits.
package field

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lifeline/pkg/sims/life"
)

var (
	ErrInvalidLiteral   = errors.New("header must be two integers: WIDTH HEIGHT")
	ErrInvalidField     = errors.New("neither the row count nor the cell count matches the header")
	ErrInvalidHeight    = errors.New("row count does not match the header height")
	ErrInvalidWidth     = errors.New("cell count does not match the header width")
	ErrInvalidCellState = errors.New("cells must be 0 or 1")
)

// Field is a parsed board layout ready to be turned into a life.Grid.
type Field struct {
	Width  int
	Height int
	Cells  []int
}

// Grid builds a life.Grid from the field.
func (f Field) Grid() (*life.Grid, error) {
	return life.New(f.Width, f.Height, f.Cells)
}

// ParseHeader reads "WIDTH HEIGHT" from a single line.
func ParseHeader(line string) (int, int, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLiteral, line)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLiteral, line)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLiteral, line)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidLiteral, w, h)
	}
	return w, h, nil
}

// Parse reads a board from r. Blank lines after the header are ignored.
func Parse(r io.Reader) (Field, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return Field{}, err
	}
	if len(lines) == 0 {
		return Field{}, fmt.Errorf("%w: empty input", ErrInvalidLiteral)
	}

	w, h, err := ParseHeader(lines[0])
	if err != nil {
		return Field{}, err
	}
	rows := lines[1:]
	digits := strings.Join(rows, "")

	switch {
	case len(rows) != h && len(digits) != w*h:
		return Field{}, fmt.Errorf("%w: %d rows of %d cells for %dx%d", ErrInvalidField, len(rows), len(digits), w, h)
	case len(rows) != h:
		return Field{}, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidHeight, len(rows), h)
	case len(digits) != w*h:
		return Field{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidWidth, len(digits), w*h)
	}

	cells := make([]int, len(digits))
	for i, ch := range []byte(digits) {
		switch ch {
		case '0':
			cells[i] = 0
		case '1':
			cells[i] = 1
		default:
			return Field{}, fmt.Errorf("%w: %q at row %d column %d", ErrInvalidCellState, ch, i/w, i%w)
		}
	}
	return Field{Width: w, Height: h, Cells: cells}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (Field, error) {
	return Parse(strings.NewReader(s))
}

// Random generates the same width*height board life.NewRandom builds for
// seed, as a Field that can be written out and edited.
func Random(width, height int, seed int64) (Field, error) {
	g, err := life.NewRandom(width, height, seed)
	if err != nil {
		return Field{}, err
	}
	return FromSnapshot(g.Snapshot()), nil
}

// Write renders f in the text format understood by Parse.
func Write(w io.Writer, f Field) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", f.Width, f.Height)
	for row := 0; row < f.Height; row++ {
		for _, v := range f.Cells[row*f.Width : (row+1)*f.Width] {
			bw.WriteByte(byte('0' + v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// FromSnapshot converts a captured generation back into a Field.
func FromSnapshot(s life.Snapshot) Field {
	f := Field{Height: len(s)}
	if len(s) > 0 {
		f.Width = len(s[0])
	}
	f.Cells = make([]int, 0, f.Width*f.Height)
	for _, row := range s {
		for _, v := range row {
			f.Cells = append(f.Cells, int(v))
		}
	}
	return f
}
