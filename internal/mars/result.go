package mars

import "strings"

// Result is the outcome of one robot's run.
type Result struct {
	Pose  Pose
	Lost  bool
	Steps []Step
	// Pending holds the instructions left unevaluated after the robot was lost.
	Pending []Instruction
}

func (r Result) String() string {
	if r.Lost {
		return r.Pose.String() + " LOST"
	}
	return r.Pose.String()
}

// Audit returns the evaluated steps followed by the pending instructions
// tagged SkippedLost.
func (r Result) Audit() []Step {
	out := make([]Step, 0, len(r.Steps)+len(r.Pending))
	out = append(out, r.Steps...)
	for _, in := range r.Pending {
		out = append(out, Step{Instruction: in, Outcome: SkippedLost})
	}
	return out
}

// FormatResults renders one line per robot, newline-joined.
func FormatResults(results []Result) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
