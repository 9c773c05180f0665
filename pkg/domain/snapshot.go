package domain

import "sort"

// Snapshot is a point-in-time view of environment variables with a
// deterministic iteration order. A name keeps the position of its first
// insertion; overwriting a value never moves its name.
type Snapshot struct {
	vars map[string]string
	keys []string
}

// NewSnapshot returns an empty Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{vars: make(map[string]string)}
}

// SnapshotFromMap builds a Snapshot from a plain map. Go map iteration order
// is not deterministic, so names are inserted in sorted order.
func SnapshotFromMap(vars map[string]string) *Snapshot {
	s := NewSnapshot()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.Set(name, vars[name])
	}
	return s
}

// Set records a value for name. The first write fixes the name's position in
// Keys; later writes replace the value in place.
func (s *Snapshot) Set(name, value string) {
	if s.vars == nil {
		s.vars = make(map[string]string)
	}
	if _, seen := s.vars[name]; !seen {
		s.keys = append(s.keys, name)
	}
	s.vars[name] = value
}

// Get returns the raw value for name and whether the name is present.
func (s *Snapshot) Get(name string) (string, bool) {
	value, ok := s.vars[name]
	return value, ok
}

// Has reports whether name is present, regardless of its value.
func (s *Snapshot) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Keys returns the variable names in insertion order. The slice is a copy
// and safe to retain.
func (s *Snapshot) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of variables in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.keys)
}

// Merge folds other into s. Values from other win on name collision, but a
// name already present keeps its original position; new names append in
// other's order.
func (s *Snapshot) Merge(other *Snapshot) {
	if other == nil {
		return
	}
	for _, name := range other.keys {
		s.Set(name, other.vars[name])
	}
}

// Map returns a plain copy of the variables. Ordering is lost; use Keys when
// order matters.
func (s *Snapshot) Map() map[string]string {
	out := make(map[string]string, len(s.vars))
	for name, value := range s.vars {
		out[name] = value
	}
	return out
}
