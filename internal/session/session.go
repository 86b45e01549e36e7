// Package session drives a GameState in real time: it turns input commands
// into state changes and fires ticks at a fixed cadence independent of the
// frame rate.
package session

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake/internal/domain"
	"snake/internal/log"
)

type Options struct {
	Config *domain.GameConfig
	Clock  Clock
	Rand   domain.Rand
	// HighScore is the persisted value loaded at startup.
	HighScore int
	Recorder  domain.HighScoreRecorder
	Logger    *log.Logger
}

type Session struct {
	id     string
	state  *domain.GameState
	clock  Clock
	delay  time.Duration
	logger *log.Logger

	lastMove time.Time
	ticks    uint64
}

func New(opts Options) *Session {
	config := opts.Config
	if config == nil {
		config = domain.DefaultGameConfig()
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("session", id)

	s := &Session{
		id:     id,
		state:  domain.NewGameState(config, rng, opts.HighScore, opts.Recorder),
		clock:  clock,
		delay:  config.MoveDelay(),
		logger: logger,
	}
	s.lastMove = clock.Now()

	logger.Info("Session started: %dx%d grid, boundary=%s, move delay=%s, high score=%d",
		config.Width, config.Height, config.Boundary, s.delay, s.state.HighScore)

	return s
}

func (s *Session) ID() string {
	return s.id
}

// State exposes the underlying game state. Renderers should use Snapshot.
func (s *Session) State() *domain.GameState {
	return s.state
}

func (s *Session) Snapshot() domain.Snapshot {
	return s.state.Snapshot()
}

func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Handle applies one input command and reports whether it changed anything.
// Once the game is over only CommandRestart is honoured; a restart request
// during play is ignored.
func (s *Session) Handle(cmd Command) bool {
	if s.state.GameOver {
		if cmd != CommandRestart {
			return false
		}
		s.state.Reset()
		s.lastMove = s.clock.Now()
		s.logger.Info("Round restarted, high score=%d", s.state.HighScore)
		return true
	}

	switch cmd {
	case CommandUp, CommandDown, CommandLeft, CommandRight:
		accepted := s.state.SetPendingDirection(cmd.Direction())
		if !accepted {
			s.logger.Trace("Ignored %s while heading %s", cmd, s.state.Direction)
		}
		return accepted
	case CommandPause:
		if !s.state.TogglePause() {
			return false
		}
		if !s.state.Paused {
			// Resuming must not release a move that accumulated while paused.
			s.lastMove = s.clock.Now()
		}
		s.logger.Debug("Paused=%t", s.state.Paused)
		return true
	}

	return false
}

// Update advances the session to the clock's current time.
func (s *Session) Update() (domain.TickResult, bool) {
	return s.Advance(s.clock.Now())
}

// Advance fires at most one tick if at least the move delay has passed since
// the previous tick. The gate is re-armed at the moment a tick fires, so calls
// in between (one per rendered frame) are cheap no-ops.
func (s *Session) Advance(now time.Time) (domain.TickResult, bool) {
	if s.state.GameOver || s.state.Paused {
		return domain.TickResult{}, false
	}
	if now.Sub(s.lastMove) < s.delay {
		return domain.TickResult{}, false
	}
	s.lastMove = now

	result := s.state.Tick()
	s.ticks++

	if result.NewHighScore {
		s.logger.Info("New high score: %d", s.state.HighScore)
	}
	if result.GameOver {
		s.logger.Info("Game over after %d ticks: cause=%s score=%d high score=%d",
			s.ticks, result.Cause, s.state.Score, s.state.HighScore)
	}

	return result, true
}
