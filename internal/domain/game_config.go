package domain

import (
	"fmt"
	"time"
)

type GameConfig struct {
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	MoveDelayMs   int      `yaml:"move_delay_ms"`
	Boundary      Boundary `yaml:"boundary"`
	InitialLength int      `yaml:"initial_length"`
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:         30,
		Height:        20,
		MoveDelayMs:   100,
		Boundary:      BoundaryWrap,
		InitialLength: 3,
	}
}

func (c *GameConfig) Validate() error {
	if c.Width < 5 || c.Width > 200 {
		return fmt.Errorf("width %d out of range [5, 200]", c.Width)
	}
	if c.Height < 5 || c.Height > 200 {
		return fmt.Errorf("height %d out of range [5, 200]", c.Height)
	}
	if c.MoveDelayMs < 10 || c.MoveDelayMs > 3000 {
		return fmt.Errorf("move delay %dms out of range [10, 3000]", c.MoveDelayMs)
	}
	if c.Boundary != BoundaryWrap && c.Boundary != BoundaryWall {
		return fmt.Errorf("unknown boundary policy %d", c.Boundary)
	}
	if c.InitialLength < 1 || c.InitialLength > c.Width/2 {
		return fmt.Errorf("initial length %d out of range [1, %d]", c.InitialLength, c.Width/2)
	}
	return nil
}

func (c *GameConfig) MoveDelay() time.Duration {
	return time.Duration(c.MoveDelayMs) * time.Millisecond
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		Width:         c.Width,
		Height:        c.Height,
		MoveDelayMs:   c.MoveDelayMs,
		Boundary:      c.Boundary,
		InitialLength: c.InitialLength,
	}
}
