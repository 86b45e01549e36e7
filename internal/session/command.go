package session

import "snake/internal/domain"

// Command is an abstract input signal. Frontends translate their own key
// codes into commands; the session never sees raw keys.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandPause
	CommandRestart
	// CommandQuit is handled by the frontend and ignored by the session.
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandPause:
		return "pause"
	case CommandRestart:
		return "restart"
	case CommandQuit:
		return "quit"
	}
	return "none"
}

// Direction maps the four steering commands to grid directions. Other
// commands map to the zero Direction.
func (c Command) Direction() domain.Direction {
	switch c {
	case CommandUp:
		return domain.DirectionUp
	case CommandDown:
		return domain.DirectionDown
	case CommandLeft:
		return domain.DirectionLeft
	case CommandRight:
		return domain.DirectionRight
	}
	return 0
}
