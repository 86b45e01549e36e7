package domain

// HighScoreRecorder is notified every time the high score goes up. It owns
// whatever I/O persisting the value needs; GameState never touches files.
type HighScoreRecorder interface {
	RecordHighScore(score int)
}

type GameState struct {
	Field  *Field
	Config *GameConfig

	Snake            *Snake
	Direction        Direction
	PendingDirection Direction
	Food             Coord

	Score     int
	HighScore int
	GameOver  bool
	Paused    bool

	placer   *FoodPlacer
	recorder HighScoreRecorder
}

// NewGameState builds a ready-to-play state. highScore is the value loaded
// from persistent storage; recorder may be nil.
func NewGameState(config *GameConfig, rng Rand, highScore int, recorder HighScoreRecorder) *GameState {
	if highScore < 0 {
		highScore = 0
	}
	gs := &GameState{
		Field:     NewField(config.Width, config.Height, config.Boundary),
		Config:    config.Copy(),
		HighScore: highScore,
		placer:    NewFoodPlacer(rng),
		recorder:  recorder,
	}
	gs.Reset()
	return gs
}

// Reset starts a new round. The high score survives.
func (gs *GameState) Reset() {
	gs.Snake = NewSnake(gs.Field.Center(), gs.Config.InitialLength, DirectionLeft)
	gs.Direction = DirectionRight
	gs.PendingDirection = DirectionRight
	gs.Score = 0
	gs.GameOver = false
	gs.Paused = false
	gs.Food = gs.placer.Place(gs.Snake, gs.Field)
}

// SetPendingDirection buffers d for the next tick. Reversals of the current
// direction and changes while paused or over are ignored.
func (gs *GameState) SetPendingDirection(d Direction) bool {
	if gs.GameOver || gs.Paused || !d.Valid() {
		return false
	}
	if d.IsOpposite(gs.Direction) {
		return false
	}
	gs.PendingDirection = d
	return true
}

func (gs *GameState) TogglePause() bool {
	if gs.GameOver {
		return false
	}
	gs.Paused = !gs.Paused
	return true
}

// SetFood moves the food to c if c is a free cell on the grid.
func (gs *GameState) SetFood(c Coord) bool {
	if !gs.Field.Contains(c) || gs.Snake.Contains(c) {
		return false
	}
	gs.Food = c
	return true
}

func (gs *GameState) updateHighScore() bool {
	if gs.Score <= gs.HighScore {
		return false
	}
	gs.HighScore = gs.Score
	if gs.recorder != nil {
		gs.recorder.RecordHighScore(gs.HighScore)
	}
	return true
}
