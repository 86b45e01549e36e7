package domain

import (
	"fmt"
	"strings"
)

// Boundary decides what happens when the snake's head leaves the grid.
type Boundary int

const (
	// BoundaryWrap joins opposite edges: leaving on the left re-enters on the right.
	BoundaryWrap Boundary = iota
	// BoundaryWall ends the game when the head would leave the grid.
	BoundaryWall
)

func (b Boundary) String() string {
	switch b {
	case BoundaryWrap:
		return "wrap"
	case BoundaryWall:
		return "wall"
	}
	return "unknown"
}

// ParseBoundary parses "wrap" or "wall" (case-insensitive).
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return BoundaryWrap, nil
	case "wall":
		return BoundaryWall, nil
	}
	return BoundaryWrap, fmt.Errorf("unknown boundary policy: %q", s)
}

func (b Boundary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Boundary) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
