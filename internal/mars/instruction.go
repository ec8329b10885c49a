package mars

// Instruction is a single command symbol. Symbols other than the three
// known ones are carried through and ignored by the engine.
type Instruction rune

const (
	TurnLeft  Instruction = 'L'
	TurnRight Instruction = 'R'
	Forward   Instruction = 'F'
)

func (i Instruction) Known() bool {
	switch i {
	case TurnLeft, TurnRight, Forward:
		return true
	}
	return false
}

func (i Instruction) String() string {
	return string(rune(i))
}

func ParseInstructions(s string) []Instruction {
	out := make([]Instruction, 0, len(s))
	for _, r := range s {
		out = append(out, Instruction(r))
	}
	return out
}

// Outcome tags what happened to an evaluated instruction.
type Outcome int

const (
	Applied Outcome = iota
	SkippedUnknown
	// forward step that would have left the grid from a scented square
	SkippedScented
	// instruction never evaluated because the robot was already lost
	SkippedLost
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case SkippedUnknown:
		return "skipped-unknown"
	case SkippedScented:
		return "skipped-scented"
	case SkippedLost:
		return "skipped-lost"
	}
	return "unknown-outcome"
}

// Step is one entry of a robot's instruction log.
type Step struct {
	Instruction Instruction
	Outcome     Outcome
}
