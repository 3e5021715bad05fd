package core

import "testing"

func TestPickWeighted(t *testing.T) {
	choices := []uint8{0, 1, 1}
	a, b := NewRNG(5), NewRNG(5)
	alive := 0
	for i := 0; i < 300; i++ {
		va, vb := a.Pick(choices), b.Pick(choices)
		if va != vb {
			t.Fatalf("draw %d differs for the same seed: %d vs %d", i, va, vb)
		}
		if va > 1 {
			t.Fatalf("unexpected value %d", va)
		}
		alive += int(va)
	}
	// Two thirds of 300 is 200; allow a wide margin.
	if alive < 150 || alive > 250 {
		t.Fatalf("alive = %d, expected roughly 200", alive)
	}
}

func TestPickEmpty(t *testing.T) {
	if got := NewRNG(1).Pick(nil); got != 0 {
		t.Fatalf("Pick(nil) = %d", got)
	}
}

func TestIntParam(t *testing.T) {
	p := IntParam("generation", "Generation", 12)
	if p.Key != "generation" || p.Label != "Generation" || p.Value != "12" {
		t.Fatalf("unexpected parameter %+v", p)
	}
}
