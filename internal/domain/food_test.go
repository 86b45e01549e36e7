package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestPlaceFood_RejectsOccupiedCells(t *testing.T) {
	field := NewField(30, 20, BoundaryWrap)
	snake := NewSnake(Coord{15, 10}, 3, DirectionLeft)

	// First two samples land on the snake, the third is free.
	rng := &scriptedRand{values: []int{15, 10, 14, 10, 3, 4}}

	got := PlaceFood(snake, field, rng)
	assert.Equal(t, Coord{3, 4}, got)
	assert.Equal(t, 6, rng.calls)
}

func TestPlaceFood_NeverOnSnake(t *testing.T) {
	field := NewField(6, 5, BoundaryWrap)
	rng := rand.New(rand.NewSource(7))

	// Fill all but two cells.
	points := make([]Coord, 0, field.Cells())
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			points = append(points, Coord{x, y})
		}
	}
	snake := &Snake{Points: points[:len(points)-2]}
	free := map[Coord]bool{points[len(points)-2]: true, points[len(points)-1]: true}

	for i := 0; i < 200; i++ {
		got := PlaceFood(snake, field, rng)
		assert.True(t, free[got], "food placed on occupied cell %v", got)
	}
}

func TestFoodPlacer_StaysInGrid(t *testing.T) {
	field := NewField(30, 20, BoundaryWall)
	placer := NewFoodPlacer(rand.New(rand.NewSource(99)))
	snake := NewSnake(field.Center(), 3, DirectionLeft)

	for i := 0; i < 500; i++ {
		got := placer.Place(snake, field)
		assert.True(t, field.Contains(got))
		assert.False(t, snake.Contains(got))
	}
}
