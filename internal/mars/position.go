package mars

import "fmt"

type Position struct {
	X, Y int
}

// Step returns the position one unit ahead when facing o.
func (p Position) Step(o Orientation) Position {
	d := o.Delta()
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// Pose is a position together with the heading.
type Pose struct {
	Position
	Orientation Orientation
}

func (p Pose) String() string {
	return fmt.Sprintf("%d %d %s", p.X, p.Y, p.Orientation)
}
