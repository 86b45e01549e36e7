package domain

type Field struct {
	Width    int
	Height   int
	Boundary Boundary
}

func NewField(width, height int, boundary Boundary) *Field {
	return &Field{
		Width:    width,
		Height:   height,
		Boundary: boundary,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Normalize(c Coord) Coord {
	x := c.X % f.Width
	if x < 0 {
		x += f.Width
	}
	y := c.Y % f.Height
	if y < 0 {
		y += f.Height
	}
	return Coord{X: x, Y: y}
}

// Step returns the cell one move away from c in direction d. The second result is
// false when the move crosses a wall; the returned cell is then off the grid.
func (f *Field) Step(c Coord, d Direction) (Coord, bool) {
	next := c.Add(d.Delta())
	if f.Boundary == BoundaryWrap {
		return f.Normalize(next), true
	}
	return next, f.Contains(next)
}

func (f *Field) Cells() int {
	return f.Width * f.Height
}

func (f *Field) Center() Coord {
	return Coord{X: f.Width / 2, Y: f.Height / 2}
}
