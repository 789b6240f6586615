package routine

// ConcernSet is a set of concerns that remembers the order they were added in,
// so generation is repeatable for the same selection sequence.
type ConcernSet struct {
	order []Concern
}

func (s *ConcernSet) Has(c Concern) bool {
	for _, x := range s.order {
		if x == c {
			return true
		}
	}
	return false
}

// Add appends c unless it is already present.
func (s *ConcernSet) Add(c Concern) {
	if s.Has(c) {
		return
	}
	s.order = append(s.order, c)
}

func (s *ConcernSet) Remove(c Concern) {
	for i, x := range s.order {
		if x == c {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			return
		}
	}
}

// Toggle removes c if present and adds it at the end otherwise. It reports
// whether c is selected afterwards.
func (s *ConcernSet) Toggle(c Concern) bool {
	if s.Has(c) {
		s.Remove(c)
		return false
	}
	s.Add(c)
	return true
}

func (s *ConcernSet) Len() int { return len(s.order) }

// Slice returns a copy of the members in insertion order.
func (s *ConcernSet) Slice() []Concern {
	return append([]Concern(nil), s.order...)
}

func (s *ConcernSet) Clear() { s.order = nil }
