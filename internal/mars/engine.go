package mars

import "fmt"

// Engine replays instruction sequences on a grid, consulting and updating
// the scent registry it was built with.
type Engine struct {
	bounds Bounds
	scents *ScentRegistry
}

func NewEngine(bounds Bounds, scents *ScentRegistry) *Engine {
	return &Engine{bounds: bounds, scents: scents}
}

// Run drives a fresh robot from start through program. It stops evaluating
// at the first forward step that loses the robot.
func (e *Engine) Run(start Pose, program []Instruction) (Result, error) {
	if !start.Orientation.Valid() {
		return Result{}, fmt.Errorf("start pose %d %d: %w",
			start.X, start.Y, &InvalidOrientationError{Value: start.Orientation})
	}

	r := NewRobot(start)
	n := 0
	for _, in := range program {
		if r.Lost() {
			break
		}
		e.exec(r, in)
		n++
	}

	return Result{
		Pose:    r.Pose(),
		Lost:    r.Lost(),
		Steps:   r.Log(),
		Pending: program[n:],
	}, nil
}

func (e *Engine) exec(r *Robot, in Instruction) {
	if !in.Known() {
		r.record(in, SkippedUnknown)
		return
	}
	switch in {
	case TurnLeft:
		r.turnLeft()
	case TurnRight:
		r.turnRight()
	case Forward:
		if !e.forward(r) {
			r.record(in, SkippedScented)
			return
		}
	}
	r.record(in, Applied)
}

// forward reports false when the step was dropped because of a scent.
func (e *Engine) forward(r *Robot) bool {
	cur := r.Pose().Position
	next := cur.Step(r.Pose().Orientation)
	if e.bounds.Contains(next) {
		r.moveTo(next)
		return true
	}
	if e.scents.Contains(cur) {
		return false
	}
	// the scent goes on the last safe square, never on the off-grid one
	e.scents.Record(cur)
	r.markLost()
	return true
}
