package mars

import "sort"

// ScentRegistry holds the squares robots have fallen from during one run.
// It is not safe for concurrent use; robots of a run must be driven in input
// order because a scent only protects robots processed after it was left.
type ScentRegistry struct {
	marks map[Position]struct{}
}

func NewScentRegistry() *ScentRegistry {
	return &ScentRegistry{marks: make(map[Position]struct{})}
}

func (s *ScentRegistry) Contains(p Position) bool {
	_, ok := s.marks[p]
	return ok
}

// Record marks p. Recording an existing mark is a no-op.
func (s *ScentRegistry) Record(p Position) {
	s.marks[p] = struct{}{}
}

// Reset empties the registry. Call once at the start of every run.
func (s *ScentRegistry) Reset() {
	clear(s.marks)
}

func (s *ScentRegistry) Len() int {
	return len(s.marks)
}

// Positions returns the scented squares ordered by row, then column.
func (s *ScentRegistry) Positions() []Position {
	out := make([]Position, 0, len(s.marks))
	for p := range s.marks {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
