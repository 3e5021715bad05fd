package life

import (
	"slices"
	"testing"
)

func TestRunZeroFrames(t *testing.T) {
	g := mustNew(t, 3, 3, []int{0, 0, 0, 1, 1, 1, 0, 0, 0})
	before := flat(g)

	out := Run(g, 0)
	if len(out) != 0 {
		t.Fatalf("Run(g, 0) returned %d snapshots", len(out))
	}
	if !slices.Equal(before, flat(g)) || g.Generation() != 0 {
		t.Fatal("Run(g, 0) mutated the grid")
	}
	if out := Run(g, -3); len(out) != 0 || g.Generation() != 0 {
		t.Fatal("negative frame count should behave like zero")
	}
}

func TestRunMatchesDirectAdvance(t *testing.T) {
	g, _ := NewRandom(12, 9, 3)
	direct := g.Clone()

	const frames = 10
	out := Run(g, frames)
	if len(out) != frames {
		t.Fatalf("got %d snapshots, want %d", len(out), frames)
	}
	for i := 0; i < frames; i++ {
		direct.Advance()
		if !out[i].Equal(direct.Snapshot()) {
			t.Fatalf("snapshot %d differs from direct advance", i)
		}
	}
	if !out[frames-1].Equal(g.Snapshot()) {
		t.Fatal("last snapshot should equal the grid's final state")
	}
	if g.Generation() != frames {
		t.Fatalf("grid left at generation %d, want %d", g.Generation(), frames)
	}
}

func TestRunSnapshotsAreIndependent(t *testing.T) {
	g := mustNew(t, 5, 5, []int{
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
	})
	out := Run(g, 2)
	horizontal := Snapshot{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 1, 1, 1, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}}
	vertical := Snapshot{{0, 0, 0, 0, 0}, {0, 0, 1, 0, 0}, {0, 0, 1, 0, 0}, {0, 0, 1, 0, 0}, {0, 0, 0, 0, 0}}
	if !out[0].Equal(horizontal) {
		t.Fatalf("frame 0 = %v", out[0])
	}
	if !out[1].Equal(vertical) {
		t.Fatalf("frame 1 = %v", out[1])
	}
}
