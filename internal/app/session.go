package app

import (
	"lifeline/internal/ui"
	"lifeline/pkg/sims/life"
)

const (
	minTPS = 1
	maxTPS = 120
)

// Session is the viewer's playback state around a board. It keeps the board
// it was opened with so Restore can return to it after steps, edits or
// reseeds.
type Session struct {
	grid   *life.Grid
	start  *life.Grid
	source string
	paused bool
	tps    int
}

// NewSession opens g for playback at tps generations per second.
func NewSession(g *life.Grid, source string, tps int) *Session {
	s := &Session{grid: g, start: g.Clone(), source: source}
	s.SetTPS(tps)
	return s
}

// Grid returns the board being played.
func (s *Session) Grid() *life.Grid { return s.grid }

// Paused reports whether Tick is currently a no-op.
func (s *Session) Paused() bool { return s.paused }

// TogglePause starts or stops playback.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Tick advances one generation unless playback is paused.
func (s *Session) Tick() {
	if !s.paused {
		s.grid.Advance()
	}
}

// StepOnce pauses playback and advances exactly one generation.
func (s *Session) StepOnce() {
	s.paused = true
	s.grid.Advance()
}

// Restore puts back the board the session was opened with.
func (s *Session) Restore() {
	s.grid = s.start.Clone()
}

// Reseed replaces the board with a random one of the same size. Restore
// still returns to the opening board.
func (s *Session) Reseed(seed int64) {
	s.grid.Reset(seed)
}

// ToggleCell flips one cell, letting the user draw on a paused board.
func (s *Session) ToggleCell(row, column int) {
	s.grid.Toggle(row, column)
}

// TPS returns the playback speed in generations per second.
func (s *Session) TPS() int { return s.tps }

// SetTPS changes the playback speed, clamped to a usable range.
func (s *Session) SetTPS(tps int) {
	s.tps = min(max(tps, minTPS), maxTPS)
}

// Status summarises the session for the HUD.
func (s *Session) Status() ui.Status {
	return ui.Status{Source: s.source, Paused: s.paused, TPS: s.tps}
}
