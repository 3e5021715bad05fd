package export

import (
	"bytes"
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"lifeline/pkg/sims/life"
)

func blinkerTimeline(t *testing.T, frames int) (*life.Grid, life.Timeline) {
	t.Helper()
	g, err := life.New(5, 5, []int{
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	return g, life.Run(g, frames)
}

func TestEncode(t *testing.T) {
	_, frames := blinkerTimeline(t, 3)
	var buf bytes.Buffer
	opts := Options{Scale: 2, Delay: 7}
	if err := Encode(&buf, 5, 5, frames, opts); err != nil {
		t.Fatal(err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 3 {
		t.Fatalf("decoded %d frames, want 3", len(anim.Image))
	}
	if anim.Config.Width != 10 || anim.Config.Height != 10 {
		t.Fatalf("size = %dx%d, want 10x10", anim.Config.Width, anim.Config.Height)
	}
	if anim.LoopCount != 0 || anim.Delay[0] != 7 {
		t.Fatalf("loop=%d delay=%d", anim.LoopCount, anim.Delay[0])
	}

	// Frame 0 is the horizontal blinker: row 2, columns 1..3.
	img := anim.Image[0]
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			alive := y/2 == 2 && x/2 >= 1 && x/2 <= 3
			want := uint8(0)
			if alive {
				want = 1
			}
			if got := img.ColorIndexAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, 5, 5, nil, DefaultOptions()); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("empty timeline err = %v", err)
	}
	_, frames := blinkerTimeline(t, 1)
	if err := Encode(&buf, 4, 5, frames, DefaultOptions()); err == nil {
		t.Fatal("expected dimension mismatch error")
	}

	ragged := life.Timeline{{{0, 1}, {1, 0, 1}}}
	if err := Encode(&buf, 2, 2, ragged, DefaultOptions()); err == nil {
		t.Fatal("expected error for a row longer than the width")
	}
	short := life.Timeline{{{0, 1}, {1}}}
	if err := Encode(&buf, 2, 2, short, DefaultOptions()); err == nil {
		t.Fatal("expected error for a row shorter than the width")
	}
}

func TestSave(t *testing.T) {
	_, frames := blinkerTimeline(t, 4)
	path := filepath.Join(t.TempDir(), "blinker.gif")
	if err := Save(path, 5, 5, frames, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 4 {
		t.Fatalf("decoded %d frames, want 4", len(anim.Image))
	}

	if err := Save(filepath.Join(t.TempDir(), "missing", "x.gif"), 5, 5, frames, DefaultOptions()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
