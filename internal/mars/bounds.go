package mars

import (
	"errors"
	"fmt"
)

var ErrNegativeBounds = errors.New("grid bounds must be non-negative")

// Bounds is the inclusive upper-right corner of the grid. The lower-left
// corner is always (0,0).
type Bounds struct {
	MaxX, MaxY int
}

func NewBounds(maxX, maxY int) (Bounds, error) {
	if maxX < 0 || maxY < 0 {
		return Bounds{}, fmt.Errorf("%w: %d %d", ErrNegativeBounds, maxX, maxY)
	}
	return Bounds{MaxX: maxX, MaxY: maxY}, nil
}

func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X <= b.MaxX && p.Y >= 0 && p.Y <= b.MaxY
}
