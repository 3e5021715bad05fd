//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeline/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := cfg.LoadGrid()
	if err != nil {
		log.Fatal(err)
	}
	session := app.NewSession(grid, cfg.Source(), cfg.TPS)
	game := app.New(session, cfg.Scale)

	ebiten.SetWindowTitle("lifeline: " + cfg.Source())
	ebiten.SetTPS(session.TPS())
	ebiten.SetWindowSize(grid.Width()*cfg.Scale, grid.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
