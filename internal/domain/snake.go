package domain

// Snake is the ordered list of occupied cells, head first.
type Snake struct {
	Points []Coord
}

// NewSnake lays out length cells in a straight line starting at head and
// extending in tailDirection. The caller is responsible for keeping the
// cells inside the field.
func NewSnake(head Coord, length int, tailDirection Direction) *Snake {
	if length < 1 {
		length = 1
	}
	points := make([]Coord, 0, length)
	current := head
	for i := 0; i < length; i++ {
		points = append(points, current)
		current = current.Add(tailDirection.Delta())
	}
	return &Snake{Points: points}
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[0]
}

func (s *Snake) Tail() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[len(s.Points)-1]
}

func (s *Snake) Len() int {
	return len(s.Points)
}

func (s *Snake) Contains(c Coord) bool {
	for _, p := range s.Points {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []Coord {
	body := make([]Coord, len(s.Points))
	copy(body, s.Points)
	return body
}

// Move pushes newHead and drops the tail unless the snake grows this step.
func (s *Snake) Move(newHead Coord, grow bool) {
	newPoints := make([]Coord, 0, len(s.Points)+1)
	newPoints = append(newPoints, newHead)
	newPoints = append(newPoints, s.Points...)

	if !grow && len(newPoints) > 1 {
		newPoints = newPoints[:len(newPoints)-1]
	}

	s.Points = newPoints
}
