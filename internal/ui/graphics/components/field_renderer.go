package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{CellSize: cellSize}
}

// Size is the pixel size of a width x height field.
func (fr *FieldRenderer) Size(width, height int) (int, int) {
	return width * fr.CellSize, height * fr.CellSize
}

func (fr *FieldRenderer) Draw(screen *ebiten.Image, snap *domain.Snapshot) {
	fr.DrawField(screen, snap.Width, snap.Height, snap.Boundary)
	fr.DrawFood(screen, snap.Food)
	fr.DrawSnake(screen, snap.Snake, snap.GameOver)
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, width, height int, boundary domain.Boundary) {
	w, h := fr.Size(width, height)
	fw, fh := float32(w), float32(h)
	ox, oy := float32(fr.OffsetX), float32(fr.OffsetY)

	vector.DrawFilledRect(screen, ox, oy, fw, fh, types.ColorFieldBg, false)

	for x := 0; x <= width; x++ {
		x1 := ox + float32(x*fr.CellSize)
		vector.StrokeLine(screen, x1, oy, x1, oy+fh, 1, types.ColorGrid, false)
	}
	for y := 0; y <= height; y++ {
		y1 := oy + float32(y*fr.CellSize)
		vector.StrokeLine(screen, ox, y1, ox+fw, y1, 1, types.ColorGrid, false)
	}

	if boundary == domain.BoundaryWall {
		vector.StrokeRect(screen, ox+1, oy+1, fw-2, fh-2, 2, types.ColorWall, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Coord) {
	padding := float32(fr.CellSize) / 4
	x := float32(fr.OffsetX+food.X*fr.CellSize) + padding
	y := float32(fr.OffsetY+food.Y*fr.CellSize) + padding
	size := float32(fr.CellSize) - padding*2

	vector.DrawFilledRect(screen, x, y, size, size, types.ColorFood, false)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, body []domain.Coord, dead bool) {
	size := float32(fr.CellSize - 2)

	// Tail first so the head is always drawn on top.
	for i := len(body) - 1; i >= 0; i-- {
		cell := body[i]
		x := float32(fr.OffsetX + cell.X*fr.CellSize + 1)
		y := float32(fr.OffsetY + cell.Y*fr.CellSize + 1)

		cellColor := types.ColorSnakeBody
		if i == 0 {
			cellColor = types.ColorSnakeHead
		}
		if dead {
			cellColor = types.Darken(cellColor, 0.5)
		}

		vector.DrawFilledRect(screen, x, y, size, size, cellColor, false)
	}
}
