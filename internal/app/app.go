// Package app wires configuration, persistence and a game session together
// for the frontends in cmd/.
package app

import (
	"snake/internal/config"
	"snake/internal/domain"
	"snake/internal/log"
	"snake/internal/session"
	"snake/internal/storage"
)

type App struct {
	Config  *config.Config
	Store   *storage.HighScoreFile
	Session *session.Session

	logger *log.Logger
}

type Params struct {
	// ConfigPath is the optional settings file, config.DefaultFile when empty.
	ConfigPath string
	Logger     *log.Logger
	// Clock and Rand override the session's time and randomness sources.
	Clock session.Clock
	Rand  domain.Rand
}

// NewApp loads settings and the persisted high score and starts a session.
// An unusable settings file is logged and defaults are used instead.
func NewApp(p Params) *App {
	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}

	path := p.ConfigPath
	if path == "" {
		path = config.DefaultFile
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("Using default settings: %v", err)
	}

	if level, err := log.ParseLogLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	store := storage.NewHighScoreFile(cfg.HighScoreFile)
	highScore := store.Load()

	s := session.New(session.Options{
		Config:    &cfg.Game,
		Clock:     p.Clock,
		Rand:      p.Rand,
		HighScore: highScore,
		Recorder:  store,
		Logger:    logger,
	})

	return &App{
		Config:  cfg,
		Store:   store,
		Session: s,
		logger:  logger,
	}
}

// Stop logs the final state of the session. High scores are written as they
// are reached, so there is nothing left to flush.
func (a *App) Stop() {
	snap := a.Session.Snapshot()
	a.logger.Info("Stopping after %d ticks: score=%d high score=%d",
		a.Session.Ticks(), snap.Score, snap.HighScore)
}
