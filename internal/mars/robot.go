package mars

// Robot is the mutable state of one robot while its program is replayed.
// A robot is created per record and never reused.
type Robot struct {
	pose Pose
	lost bool
	log  []Step
}

func NewRobot(start Pose) *Robot {
	return &Robot{pose: start}
}

func (r *Robot) Pose() Pose { return r.pose }

func (r *Robot) Lost() bool { return r.lost }

// Log lists the instructions evaluated so far with their outcomes.
func (r *Robot) Log() []Step { return r.log }

func (r *Robot) turnLeft() {
	r.pose.Orientation = r.pose.Orientation.Left()
}

func (r *Robot) turnRight() {
	r.pose.Orientation = r.pose.Orientation.Right()
}

func (r *Robot) moveTo(p Position) {
	r.pose.Position = p
}

func (r *Robot) markLost() {
	r.lost = true
}

func (r *Robot) record(i Instruction, o Outcome) {
	r.log = append(r.log, Step{Instruction: i, Outcome: o})
}
