package components

import (
	"fmt"
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	GameOverMessage = "GAME OVER! Press R to restart"
	PausedMessage   = "PAUSED - Press Space to continue"
)

// HUD draws the score lines and the game over and pause banners. With nil
// fonts it draws nothing, since text is an optional capability.
type HUD struct {
	fonts *types.Fonts
}

func NewHUD(fonts *types.Fonts) *HUD {
	return &HUD{fonts: fonts}
}

func (h *HUD) Draw(screen *ebiten.Image, snap *domain.Snapshot) {
	if h.fonts == nil {
		return
	}

	lineHeight := h.fonts.Normal.Metrics().Height.Ceil()
	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), h.fonts.Normal, 10, 10+lineHeight, types.ColorText)
	text.Draw(screen, fmt.Sprintf("High Score: %d", snap.HighScore), h.fonts.Normal, 10, 10+2*lineHeight, types.ColorTextHighlight)

	switch {
	case snap.GameOver:
		h.drawBanner(screen, GameOverMessage, types.ColorGameOver)
	case snap.Paused:
		h.drawBanner(screen, PausedMessage, types.ColorTextHighlight)
	}
}

func (h *HUD) drawBanner(screen *ebiten.Image, msg string, clr color.Color) {
	bounds := screen.Bounds()
	face := h.fonts.Large

	width := font.MeasureString(face, msg).Ceil()
	if width > bounds.Dx()-20 {
		face = h.fonts.Normal
		width = font.MeasureString(face, msg).Ceil()
	}
	height := face.Metrics().Height.Ceil()

	vector.DrawFilledRect(screen,
		0, float32(bounds.Dy()/2-height),
		float32(bounds.Dx()), float32(2*height),
		types.ColorOverlay, false)

	x := (bounds.Dx() - width) / 2
	y := bounds.Dy()/2 + face.Metrics().Ascent.Ceil()/2
	text.Draw(screen, msg, face, x, y, clr)
}
