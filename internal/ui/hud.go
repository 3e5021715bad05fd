//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 14
)

// HUD draws text lines in a translucent box over the board.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update toggles visibility with the H key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders lines in a panel at the top-left of dst.
func (h *HUD) Draw(dst *ebiten.Image, lines []string) {
	if !h.visible {
		return
	}
	face := basicfont.Face7x13

	width := 0
	for _, l := range lines {
		if b := text.BoundString(face, l); b.Dx() > width {
			width = b.Dx()
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(len(lines)*lineHeight+2*panelPadding))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 20, G: 20, B: 28, A: 200})
	dst.DrawImage(h.pixel, op)

	for i, l := range lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(dst, l, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
