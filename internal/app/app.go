//go:build ebiten

package app

import (
	"time"

	"lifeline/internal/render"
	"lifeline/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game drives a Session from keyboard and mouse input.
//
//	space      pause / resume
//	N, right   step one generation
//	R          restore the opening board
//	S          random board seeded from the clock
//	up, down   faster / slower
//	click      toggle a cell
//	H          toggle the HUD
//	Q, esc     quit
type Game struct {
	session *Session
	painter *render.BoardPainter
	hud     *ui.HUD
	scale   int
}

// New constructs a Game showing s at the given pixels per cell.
func New(s *Session, scale int) *Game {
	g := s.Grid()
	return &Game{
		session: s,
		painter: render.NewBoardPainter(g.Height(), g.Width(), scale),
		hud:     ui.NewHUD(),
		scale:   scale,
	}
}

// Update applies input and then advances playback by one tick.
func (g *Game) Update() error {
	s := g.session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.StepOnce()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.Restore()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.Reseed(time.Now().UnixNano())
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.SetTPS(s.TPS() + 1)
		ebiten.SetTPS(s.TPS())
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.SetTPS(s.TPS() - 1)
		ebiten.SetTPS(s.TPS())
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, column, ok := g.painter.CellAt(ebiten.CursorPosition()); ok {
			s.ToggleCell(row, column)
		}
	}
	g.hud.Update()

	s.Tick()
	return nil
}

// Draw renders the board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.session.Grid()
	g.painter.Draw(screen, grid)
	g.hud.Draw(screen, ui.Lines(grid, g.session.Status()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.session.Grid()
	return grid.Width() * g.scale, grid.Height() * g.scale
}
