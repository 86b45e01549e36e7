package terminal

import (
	"fmt"

	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

const (
	GameOverMessage = "GAME OVER! Press R to restart"
	PausedMessage   = "PAUSED - Press Space to continue"
	HelpMessage     = "Arrows/WASD move, Space pause, q quit"
	TooSmallMessage = "Terminal too small"

	// cellWidth is the number of terminal columns per grid cell, which keeps
	// cells roughly square in most fonts.
	cellWidth = 2
	statusRow = 0
	fieldTop  = 1
)

var (
	styleHead      = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDeadSnake = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleFood      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWall      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWrapEdge  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleScore     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHighScore = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGameOver  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePaused    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHelp      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const (
	runeSnake = '█'
	runeFood  = '█'
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RequiredSize is the terminal size needed to draw a width x height field
// with its border, status line and message line.
func RequiredSize(width, height int) (int, int) {
	return width*cellWidth + 2, height + 4
}

// Origin is the screen position of grid cell c.
func Origin(c domain.Coord) (int, int) {
	return 1 + c.X*cellWidth, fieldTop + 1 + c.Y
}

func (r *Renderer) Draw(snap *domain.Snapshot) {
	r.screen.Clear()

	w, h := r.screen.Size()
	needW, needH := RequiredSize(snap.Width, snap.Height)
	if w < needW || h < needH {
		r.drawText(0, 0, TooSmallMessage, styleGameOver)
		r.drawText(0, 1, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, w, h), styleHelp)
		r.screen.Show()
		return
	}

	r.drawStatus(snap)
	r.drawBorder(snap.Width, snap.Height, snap.Boundary)
	r.drawCell(snap.Food, runeFood, styleFood)

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		if snap.GameOver {
			style = styleDeadSnake
		}
		r.drawCell(snap.Snake[i], runeSnake, style)
	}

	msgRow := fieldTop + snap.Height + 2
	switch {
	case snap.GameOver:
		r.drawText(0, msgRow, GameOverMessage, styleGameOver)
	case snap.Paused:
		r.drawText(0, msgRow, PausedMessage, stylePaused)
	default:
		r.drawText(0, msgRow, HelpMessage, styleHelp)
	}

	r.screen.Show()
}

func (r *Renderer) drawStatus(snap *domain.Snapshot) {
	score := fmt.Sprintf("Score: %d", snap.Score)
	r.drawText(0, statusRow, score, styleScore)
	r.drawText(len(score)+3, statusRow, fmt.Sprintf("High Score: %d", snap.HighScore), styleHighScore)
}

func (r *Renderer) drawBorder(width, height int, boundary domain.Boundary) {
	style := styleWrapEdge
	if boundary == domain.BoundaryWall {
		style = styleWall
	}

	left, top := 0, fieldTop
	right, bottom := width*cellWidth+1, fieldTop+height+1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (r *Renderer) drawCell(c domain.Coord, ch rune, style tcell.Style) {
	x, y := Origin(c)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
