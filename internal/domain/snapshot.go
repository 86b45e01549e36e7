package domain

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the GameState it was taken from.
type Snapshot struct {
	Width    int
	Height   int
	Boundary Boundary

	Snake     []Coord
	Direction Direction
	Food      Coord

	Score     int
	HighScore int
	GameOver  bool
	Paused    bool
}

func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Width:     gs.Field.Width,
		Height:    gs.Field.Height,
		Boundary:  gs.Field.Boundary,
		Snake:     gs.Snake.Body(),
		Direction: gs.Direction,
		Food:      gs.Food,
		Score:     gs.Score,
		HighScore: gs.HighScore,
		GameOver:  gs.GameOver,
		Paused:    gs.Paused,
	}
}

func (s Snapshot) Head() Coord {
	if len(s.Snake) == 0 {
		return Coord{}
	}
	return s.Snake[0]
}
