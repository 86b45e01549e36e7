package graphics

import (
	"snake/internal/domain"
	"snake/internal/session"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const WindowTitle = "Snake Game"

// Engine is the ebiten.Game driving one Session: input and timing in Update,
// rendering of the latest snapshot in Draw.
type Engine struct {
	session  *session.Session
	keyboard *input.KeyboardHandler
	field    *components.FieldRenderer
	hud      *components.HUD

	width  int
	height int
	snap   domain.Snapshot
}

func NewEngine(s *session.Session, cellSize int, fonts *types.Fonts) *Engine {
	e := &Engine{
		session:  s,
		keyboard: input.NewKeyboardHandler(),
		field:    components.NewFieldRenderer(cellSize),
		hud:      components.NewHUD(fonts),
		snap:     s.Snapshot(),
	}
	e.width, e.height = e.field.Size(e.snap.Width, e.snap.Height)
	return e
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (e *Engine) Update() error {
	for _, cmd := range e.keyboard.Update() {
		if cmd == session.CommandQuit {
			return ebiten.Termination
		}
		e.session.Handle(cmd)
	}

	e.session.Update()
	e.snap = e.session.Snapshot()

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)
	e.field.Draw(screen, &e.snap)
	e.hud.Draw(screen, &e.snap)
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}
