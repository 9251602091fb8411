package liveness

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// VarSet is a set of variable names.
type VarSet map[string]struct{}

// NewVarSet returns a set containing names.
func NewVarSet(names ...string) VarSet {
	s := make(VarSet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add adds name to s and returns true if it was not present.
func (s VarSet) Add(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

// Has returns true if name is in s.
func (s VarSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Equal returns true if s and t hold the same names.
func (s VarSet) Equal(t VarSet) bool {
	return maps.Equal(s, t)
}

// Clone returns a copy of s, never nil.
func (s VarSet) Clone() VarSet {
	if s == nil {
		return make(VarSet)
	}
	return maps.Clone(s)
}

// Contains returns true if every name of t is in s.
func (s VarSet) Contains(t VarSet) bool {
	for name := range t {
		if !s.Has(name) {
			return false
		}
	}
	return true
}

// Sorted returns the names in s in lexicographic order.
func (s VarSet) Sorted() []string {
	names := maps.Keys(s)
	slices.Sort(names)
	return names
}

func (s VarSet) String() string {
	return "{" + strings.Join(s.Sorted(), " ") + "}"
}
