package terminal

import (
	"testing"

	"snake/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want session.Command
	}{
		{"arrow up", tcell.KeyUp, 0, 0, session.CommandUp},
		{"arrow down", tcell.KeyDown, 0, 0, session.CommandDown},
		{"arrow left", tcell.KeyLeft, 0, 0, session.CommandLeft},
		{"arrow right", tcell.KeyRight, 0, 0, session.CommandRight},
		{"w", tcell.KeyRune, 'w', 0, session.CommandUp},
		{"upper S", tcell.KeyRune, 'S', tcell.ModShift, session.CommandDown},
		{"a", tcell.KeyRune, 'a', 0, session.CommandLeft},
		{"d", tcell.KeyRune, 'd', 0, session.CommandRight},
		{"space", tcell.KeyRune, ' ', 0, session.CommandPause},
		{"r", tcell.KeyRune, 'r', 0, session.CommandRestart},
		{"q", tcell.KeyRune, 'q', 0, session.CommandQuit},
		{"escape", tcell.KeyEscape, 0, 0, session.CommandQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, tcell.ModCtrl, session.CommandQuit},
		{"alt-w", tcell.KeyRune, 'w', tcell.ModAlt, session.CommandNone},
		{"unbound rune", tcell.KeyRune, 'x', 0, session.CommandNone},
		{"enter", tcell.KeyEnter, 0, 0, session.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandForKey(tt.key, tt.r, tt.mod))
		})
	}
}
