package terminal

import (
	"unicode"

	"snake/internal/session"

	"github.com/gdamore/tcell/v2"
)

// commandForKey maps a terminal key press to a session command. Letters are
// matched case-insensitively so caps lock does not break steering.
func commandForKey(key tcell.Key, r rune, mod tcell.ModMask) session.Command {
	switch key {
	case tcell.KeyUp:
		return session.CommandUp
	case tcell.KeyDown:
		return session.CommandDown
	case tcell.KeyLeft:
		return session.CommandLeft
	case tcell.KeyRight:
		return session.CommandRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.CommandQuit
	case tcell.KeyRune:
	default:
		return session.CommandNone
	}

	if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return session.CommandNone
	}

	switch unicode.ToLower(r) {
	case 'w':
		return session.CommandUp
	case 's':
		return session.CommandDown
	case 'a':
		return session.CommandLeft
	case 'd':
		return session.CommandRight
	case ' ':
		return session.CommandPause
	case 'r':
		return session.CommandRestart
	case 'q':
		return session.CommandQuit
	}
	return session.CommandNone
}
