package domain

type CollisionCause int

const (
	CollisionNone CollisionCause = iota
	CollisionWall
	CollisionSelf
)

func (c CollisionCause) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	}
	return "none"
}

type TickResult struct {
	Moved        bool
	Ate          bool
	GameOver     bool
	Cause        CollisionCause
	NewHighScore bool
}

// Tick advances the snake by one cell. It does nothing while the game is over
// or paused.
func (gs *GameState) Tick() TickResult {
	var result TickResult
	if gs.GameOver || gs.Paused {
		return result
	}

	gs.Direction = gs.PendingDirection

	newHead, inside := gs.Field.Step(gs.Snake.Head(), gs.Direction)
	if !inside {
		return gs.endRound(result, CollisionWall)
	}

	// The tail has not moved yet, so stepping into it is a collision too.
	if gs.Snake.Contains(newHead) {
		return gs.endRound(result, CollisionSelf)
	}

	ate := newHead.Equals(gs.Food)
	gs.Snake.Move(newHead, ate)
	result.Moved = true

	if ate {
		gs.Score++
		result.Ate = true
		result.NewHighScore = gs.updateHighScore()
		if gs.Snake.Len() < gs.Field.Cells() {
			gs.Food = gs.placer.Place(gs.Snake, gs.Field)
		}
	}

	return result
}

func (gs *GameState) endRound(result TickResult, cause CollisionCause) TickResult {
	gs.GameOver = true
	result.GameOver = true
	result.Cause = cause
	result.NewHighScore = gs.updateHighScore()
	return result
}
