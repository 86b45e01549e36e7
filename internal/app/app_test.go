package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"snake/internal/domain"
	"snake/internal/log"
	"snake/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewApp_WiresConfigAndHighScore(t *testing.T) {
	dir := t.TempDir()
	scores := filepath.Join(dir, "scores.txt")
	require.NoError(t, os.WriteFile(scores, []byte("7\n"), 0644))

	path := writeConfig(t, dir, strings.Join([]string{
		"game:",
		"  width: 12",
		"  height: 9",
		"  boundary: wall",
		"high_score_file: " + scores,
		"log_level: debug",
	}, "\n"))

	a := NewApp(Params{
		ConfigPath: path,
		Logger:     log.New(&bytes.Buffer{}, "", 0, log.LogLevelInfo),
		Rand:       zeroRand{},
	})

	snap := a.Session.Snapshot()
	assert.Equal(t, 12, snap.Width)
	assert.Equal(t, 9, snap.Height)
	assert.Equal(t, domain.BoundaryWall, snap.Boundary)
	assert.Equal(t, 7, snap.HighScore)
	assert.Equal(t, scores, a.Store.Path)
}

func TestNewApp_BadConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "game: [oops")

	var buf bytes.Buffer
	a := NewApp(Params{
		ConfigPath: path,
		Logger:     log.New(&buf, "", 0, log.LogLevelInfo),
	})

	snap := a.Session.Snapshot()
	assert.Equal(t, 30, snap.Width)
	assert.Equal(t, 20, snap.Height)
	assert.Equal(t, domain.BoundaryWrap, snap.Boundary)
	assert.Contains(t, buf.String(), "Using default settings")
}

func TestNewApp_RecordsHighScoreToStore(t *testing.T) {
	dir := t.TempDir()
	scores := filepath.Join(dir, "scores.txt")
	path := writeConfig(t, dir, "high_score_file: "+scores+"\ngame:\n  width: 10\n  height: 10\n")

	clock := &stepClock{now: time.Unix(1700000000, 0)}
	a := NewApp(Params{
		ConfigPath: path,
		Logger:     log.New(&bytes.Buffer{}, "", 0, log.LogLevelInfo),
		Clock:      clock,
		Rand:       zeroRand{},
	})

	// Put food right in front of the head and let one move fire.
	state := a.Session.State()
	require.True(t, state.SetFood(state.Snake.Head().Add(domain.DirectionRight.Delta())))
	clock.now = clock.now.Add(a.Config.Game.MoveDelay())
	_, fired := a.Session.Update()
	require.True(t, fired)

	data, err := os.ReadFile(scores)
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(string(data)))

	a.Stop()
	assert.Equal(t, 1, a.Store.Load())
	assert.False(t, a.Session.Handle(session.CommandRestart))
}
