package selection

// OrderedSet is a set of ids that remembers insertion order for display.
// Membership is what matters; order never affects equality.
type OrderedSet struct {
	order []string
	index map[string]struct{}
}

// NewOrderedSet builds a set from ids, dropping duplicates.
func NewOrderedSet(ids ...string) *OrderedSet {
	s := &OrderedSet{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id if absent and reports whether it was added.
func (s *OrderedSet) Add(id string) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Remove deletes id and reports whether it was present.
func (s *OrderedSet) Remove(id string) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips membership of id and reports whether it is now present.
func (s *OrderedSet) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	s.Add(id)
	return true
}

// Contains reports membership.
func (s *OrderedSet) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of members.
func (s *OrderedSet) Len() int {
	return len(s.order)
}

// IDs returns a copy of the members in insertion order.
func (s *OrderedSet) IDs() []string {
	return append([]string{}, s.order...)
}

// Clone returns an independent copy.
func (s *OrderedSet) Clone() *OrderedSet {
	return NewOrderedSet(s.order...)
}

// Equal compares membership only.
func (s *OrderedSet) Equal(other *OrderedSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.index {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
