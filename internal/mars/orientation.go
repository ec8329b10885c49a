package mars

import (
	"errors"
	"fmt"
)

// Orientation is the heading of a robot on the grid.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

var ErrInvalidOrientation = errors.New("invalid orientation")

// InvalidOrientationError is raised when a value outside the four headings
// reaches the turning or stepping arithmetic.
type InvalidOrientationError struct {
	Value Orientation
}

func (e *InvalidOrientationError) Error() string {
	return fmt.Sprintf("%v: %d", ErrInvalidOrientation, int(e.Value))
}

func (e *InvalidOrientationError) Unwrap() error { return ErrInvalidOrientation }

// heading => unit offset
var deltas = [...]Position{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

var letters = [...]string{North: "N", East: "E", South: "S", West: "W"}

func (o Orientation) Valid() bool {
	return o >= North && o <= West
}

func (o Orientation) mustBeValid() {
	if !o.Valid() {
		panic(&InvalidOrientationError{Value: o})
	}
}

// Left returns the heading after a 90 degree turn to the left.
func (o Orientation) Left() Orientation {
	o.mustBeValid()
	return (o + 3) % 4
}

// Right returns the heading after a 90 degree turn to the right.
func (o Orientation) Right() Orientation {
	o.mustBeValid()
	return (o + 1) % 4
}

// Delta is the unit offset of one forward step.
func (o Orientation) Delta() Position {
	o.mustBeValid()
	return deltas[o]
}

func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return letters[o]
}

// ParseOrientation maps N, E, S, W to a heading.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}
