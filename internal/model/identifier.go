package model

// IdentifierSet is a de-duplicated collection of identifier names that keeps
// insertion order for stable reporting.
type IdentifierSet struct {
	names []string
	index map[string]struct{}
}

// NewIdentifierSet builds a set from names, dropping duplicates.
func NewIdentifierSet(names ...string) *IdentifierSet {
	set := &IdentifierSet{index: make(map[string]struct{}, len(names))}
	for _, name := range names {
		set.Add(name)
	}

	return set
}

// Add inserts name and reports whether it was not already present.
func (s *IdentifierSet) Add(name string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}

	if _, ok := s.index[name]; ok {
		return false
	}

	s.index[name] = struct{}{}
	s.names = append(s.names, name)

	return true
}

// Remove deletes name from the set.
func (s *IdentifierSet) Remove(name string) {
	if s == nil {
		return
	}

	if _, ok := s.index[name]; !ok {
		return
	}

	delete(s.index, name)

	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Contains reports whether name is in the set.
func (s *IdentifierSet) Contains(name string) bool {
	if s == nil {
		return false
	}

	_, ok := s.index[name]

	return ok
}

// Len returns the number of names in the set.
func (s *IdentifierSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.names)
}

// Names returns a copy of the names in insertion order.
func (s *IdentifierSet) Names() []string {
	if s == nil {
		return nil
	}

	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}
