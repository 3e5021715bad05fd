package field

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"lifeline/pkg/sims/life"
)

func TestParse(t *testing.T) {
	f, err := ParseString("3 2\n010\n111\n")
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 3 || f.Height != 2 {
		t.Fatalf("dimensions = %dx%d", f.Width, f.Height)
	}
	if want := []int{0, 1, 0, 1, 1, 1}; !slices.Equal(f.Cells, want) {
		t.Fatalf("cells = %v, want %v", f.Cells, want)
	}
	if _, err := f.Grid(); err != nil {
		t.Fatalf("Grid(): %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidLiteral},
		{"three 2\n000\n000", ErrInvalidLiteral},
		{"3\n000", ErrInvalidLiteral},
		{"0 2\n\n", ErrInvalidLiteral},
		{"3 3\n00\n00", ErrInvalidField},
		{"3 3\n000\n000000", ErrInvalidHeight},
		{"3 2\n000\n0000", ErrInvalidWidth},
		{"2 2\n01\n21", ErrInvalidCellState},
		{"2 1\nx1", ErrInvalidCellState},
	}
	for _, tc := range cases {
		_, err := ParseString(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("ParseString(%q) err = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, err := Random(9, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Random(9, 4, 1)
	if !slices.Equal(a.Cells, b.Cells) {
		t.Fatal("same seed produced different fields")
	}
	if a.Width != 9 || a.Height != 4 || len(a.Cells) != 36 {
		t.Fatalf("field is %dx%d with %d cells, want 9x4 with 36", a.Width, a.Height, len(a.Cells))
	}
	if _, err := Random(0, 4, 1); !errors.Is(err, life.ErrInvalidDimensions) {
		t.Fatalf("zero width err = %v", err)
	}

	g, _ := life.NewRandom(9, 4, 1)
	if !FromSnapshot(g.Snapshot()).equal(a) {
		t.Fatal("Random and life.NewRandom disagree for the same seed")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	in := Field{Width: 4, Height: 2, Cells: []int{1, 0, 0, 1, 0, 1, 1, 0}}
	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "4 2\n1001\n0110\n"; got != want {
		t.Fatalf("Write = %q, want %q", got, want)
	}
	out, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(in.Cells, out.Cells) {
		t.Fatalf("round trip changed cells: %v", out.Cells)
	}
}

func TestFromSnapshot(t *testing.T) {
	f := FromSnapshot(life.Snapshot{{1, 0}, {0, 1}, {1, 1}})
	if f.Width != 2 || f.Height != 3 {
		t.Fatalf("dimensions = %dx%d", f.Width, f.Height)
	}
	if want := []int{1, 0, 0, 1, 1, 1}; !slices.Equal(f.Cells, want) {
		t.Fatalf("cells = %v", f.Cells)
	}
}

func (f Field) equal(o Field) bool {
	return f.Width == o.Width && f.Height == o.Height && slices.Equal(f.Cells, o.Cells)
}
