package interpreter

import (
	"fmt"
	"strings"

	"martianrobots/internal/mars"
)

func (r *RobotRecord) Pose() (mars.Pose, error) {
	o, err := mars.ParseOrientation(r.Heading)
	if err != nil {
		return mars.Pose{}, fmt.Errorf("%s: %w", r.Pos, err)
	}
	return mars.Pose{Position: mars.Position{X: r.X, Y: r.Y}, Orientation: o}, nil
}

func (r *RobotRecord) Instructions() []mars.Instruction {
	return mars.ParseInstructions(strings.TrimRight(r.Program, " \t\r"))
}

func (r *RobotRecord) Exec(ctx *Context, engine *mars.Engine) (mars.Result, error) {
	start, err := r.Pose()
	if err != nil {
		return mars.Result{}, err
	}
	ctx.Log.Debug("robot start", "at", r.Pos.String(), "pose", start.String())
	res, err := engine.Run(start, r.Instructions())
	if err != nil {
		return mars.Result{}, fmt.Errorf("%s: %w", r.Pos, err)
	}
	return res, nil
}
