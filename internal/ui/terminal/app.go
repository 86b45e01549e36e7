package terminal

import (
	"context"
	"time"

	"snake/internal/log"
	"snake/internal/session"

	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the redraw and input polling period. Snake movement is
// timed separately by the session's move delay.
const FrameInterval = 16 * time.Millisecond

// App runs a Session on a tcell screen. The screen must already be
// initialized; the caller owns Fini.
type App struct {
	screen   tcell.Screen
	session  *session.Session
	renderer *Renderer
	logger   *log.Logger
}

func NewApp(screen tcell.Screen, s *session.Session, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		screen:   screen,
		session:  s,
		renderer: NewRenderer(screen),
		logger:   logger.With("frontend", "terminal"),
	}
}

// Run loops until a quit key is pressed or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	a.draw()

	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("Terminal loop stopped: %v", ctx.Err())
			return nil

		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				a.logger.Info("Quit requested")
				return nil
			}

		case <-ticker.C:
			a.session.Update()
			a.draw()
		}
	}
}

func (a *App) draw() {
	snap := a.session.Snapshot()
	a.renderer.Draw(&snap)
}

// handleEvent returns false when the app should exit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := commandForKey(ev.Key(), ev.Rune(), ev.Modifiers())
		if cmd == session.CommandQuit {
			return false
		}
		if cmd != session.CommandNone {
			a.session.Handle(cmd)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.draw()
	}
	return true
}
