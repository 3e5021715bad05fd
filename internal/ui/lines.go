package ui

import (
	"fmt"

	"lifeline/pkg/sims/life"
)

// Status is the viewer state shown next to the board's own parameters.
type Status struct {
	Source string
	Paused bool
	TPS    int
}

// Lines formats the HUD text: a title naming the board's source, one
// "Label: value" line per grid parameter and the playback speed.
func Lines(g *life.Grid, st Status) []string {
	title := st.Source
	if st.Paused {
		title += " (paused)"
	}
	lines := []string{title}
	for _, group := range g.Parameters().Groups {
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return append(lines, fmt.Sprintf("Speed: %d gen/s", st.TPS))
}
