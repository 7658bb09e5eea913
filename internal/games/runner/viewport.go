package runner

import (
	"math"

	"github.com/vovakirdan/moti-runner/internal/core"
)

// Viewport projects world pixels onto a cell grid.
type Viewport struct {
	sx, sy float64 // Cells per pixel
}

// NewViewport maps a worldW x worldH pixel world onto cols x rows cells.
func NewViewport(worldW, worldH, cols, rows int) Viewport {
	if worldW <= 0 || worldH <= 0 {
		return Viewport{}
	}
	return Viewport{
		sx: float64(cols) / float64(worldW),
		sy: float64(rows) / float64(worldH),
	}
}

// Project converts a world rectangle to a cell rectangle. A non-empty rect
// always covers at least one cell.
func (v Viewport) Project(r core.Rect) (x, y, w, h int) {
	if r.Empty() {
		return 0, 0, 0, 0
	}
	x = int(math.Floor(r.X * v.sx))
	y = int(math.Floor(r.Y * v.sy))
	w = max(int(math.Ceil(r.Right()*v.sx))-x, 1)
	h = max(int(math.Ceil(r.Bottom()*v.sy))-y, 1)
	return x, y, w, h
}

// Row converts a world Y coordinate to a row index.
func (v Viewport) Row(y float64) int {
	return int(math.Floor(y * v.sy))
}
