package input

import (
	"snake/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = map[ebiten.Key]session.Command{
	ebiten.KeyW:          session.CommandUp,
	ebiten.KeyArrowUp:    session.CommandUp,
	ebiten.KeyS:          session.CommandDown,
	ebiten.KeyArrowDown:  session.CommandDown,
	ebiten.KeyA:          session.CommandLeft,
	ebiten.KeyArrowLeft:  session.CommandLeft,
	ebiten.KeyD:          session.CommandRight,
	ebiten.KeyArrowRight: session.CommandRight,
	ebiten.KeySpace:      session.CommandPause,
	ebiten.KeyR:          session.CommandRestart,
	ebiten.KeyEscape:     session.CommandQuit,
}

type KeyboardHandler struct {
	keys     []ebiten.Key
	commands []session.Command
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the commands for every key pressed since the previous frame.
// The returned slice is reused on the next call.
func (kh *KeyboardHandler) Update() []session.Command {
	kh.keys = inpututil.AppendJustPressedKeys(kh.keys[:0])
	kh.commands = kh.commands[:0]
	for _, key := range kh.keys {
		if cmd, ok := keyCommands[key]; ok {
			kh.commands = append(kh.commands, cmd)
		}
	}
	return kh.commands
}
