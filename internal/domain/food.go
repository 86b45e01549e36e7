package domain

// Rand is the randomness the food placer needs. *rand.Rand from
// golang.org/x/exp/rand and math/rand both satisfy it.
type Rand interface {
	Intn(n int) int
}

// PlaceFood samples uniformly random cells until it finds one the snake does
// not occupy.
//
// Precondition: snake.Len() < field.Cells(). On a full grid there is no free
// cell and the loop would never end; the game cannot reach that state because
// the snake grows only by eating food that was successfully placed.
func PlaceFood(snake *Snake, field *Field, rng Rand) Coord {
	occupied := make(map[Coord]bool, snake.Len())
	for _, cell := range snake.Points {
		occupied[cell] = true
	}

	for {
		pos := Coord{
			X: rng.Intn(field.Width),
			Y: rng.Intn(field.Height),
		}
		if !occupied[pos] {
			return pos
		}
	}
}

// FoodPlacer binds a random source to PlaceFood.
type FoodPlacer struct {
	rng Rand
}

func NewFoodPlacer(rng Rand) *FoodPlacer {
	return &FoodPlacer{rng: rng}
}

func (p *FoodPlacer) Place(snake *Snake, field *Field) Coord {
	return PlaceFood(snake, field, p.rng)
}
