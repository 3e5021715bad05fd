package life

// Snapshot is a read-only capture of a grid: height rows of width 0/1 values.
type Snapshot [][]uint8

// Equal reports whether two snapshots hold the same cells.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s) != len(o) {
		return false
	}
	for row := range s {
		if len(s[row]) != len(o[row]) {
			return false
		}
		for column := range s[row] {
			if s[row][column] != o[row][column] {
				return false
			}
		}
	}
	return true
}

// Timeline is the ordered sequence of snapshots produced by Run.
type Timeline []Snapshot

// Run advances g frames times, capturing a snapshot after every advance. The
// grid is left at the last generation reached; callers that need the starting
// state should Clone it first. A non-positive frame count returns an empty
// timeline without touching g.
func Run(g *Grid, frames int) Timeline {
	if frames < 0 {
		frames = 0
	}
	out := make(Timeline, 0, frames)
	for i := 0; i < frames; i++ {
		g.Advance()
		out = append(out, g.Snapshot())
	}
	return out
}
