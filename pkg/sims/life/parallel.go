package life

import "sync"

// advanceParallel splits the rows into contiguous bands and computes each band
// on its own goroutine. Bands write disjoint regions of nxt and only read cur,
// so the result is identical to the serial sweep.
func (g *Grid) advanceParallel(workers int) {
	if workers > g.h {
		workers = g.h
	}
	band := g.h / workers
	extra := g.h % workers

	var wg sync.WaitGroup
	lo := 0
	for i := 0; i < workers; i++ {
		hi := lo + band
		if i < extra {
			hi++
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			g.advanceRows(lo, hi)
		}(lo, hi)
		lo = hi
	}
	wg.Wait()
}
