package liveness

import (
	"github.com/pkg/errors"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
)

// Mode selects which LiveOut values a round reads from its successors.
type Mode int

const (
	// GaussSeidel reads the current LiveOut of successors, including values
	// already updated earlier in the same round.
	GaussSeidel Mode = iota
	// Jacobi reads a snapshot of LiveOut taken at the start of the round.
	Jacobi
)

func (m Mode) String() string {
	switch m {
	case GaussSeidel:
		return "gauss-seidel"
	case Jacobi:
		return "jacobi"
	}
	return "unknown"
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{GaussSeidel, Jacobi} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOption, "mode %q", s)
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Order selects the block enumeration order of a solver round.
type Order int

const (
	// FunctionOrder visits blocks in the order of the Function.
	FunctionOrder Order = iota
	// PostOrder visits blocks in depth-first postorder from the first block,
	// followed by unreachable blocks in Function order.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case FunctionOrder:
		return "function"
	case PostOrder:
		return "postorder"
	}
	return "unknown"
}

// ParseOrder returns the Order named s.
func ParseOrder(s string) (Order, error) {
	for _, o := range []Order{FunctionOrder, PostOrder} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOption, "order %q", s)
}

// Set implements flag.Value.
func (o *Order) Set(s string) error {
	order, err := ParseOrder(s)
	if err != nil {
		return err
	}
	*o = order
	return nil
}

// solver computes LiveOut for every block by iterating rounds over all blocks
// until no LiveOut changes.
//
//	LiveOut(b) = ∪ s ∈ succ(b): (LiveOut(s) − VarKill(s)) ∪ UEVar(s)
type solver struct {
	order   []*ir.Block
	succs   func(*ir.Block) []string
	ueVar   map[string]VarSet
	varKill map[string]VarSet
	liveOut map[string]VarSet
	mode    Mode
}

// round recomputes LiveOut of every block once and returns true if any of
// them changed.
func (s *solver) round() bool {
	src := s.liveOut
	if s.mode == Jacobi {
		src = make(map[string]VarSet, len(s.liveOut))
		for name, set := range s.liveOut {
			src[name] = set // Sets are replaced, never mutated in place.
		}
	}
	changed := false
	for _, b := range s.order {
		out := make(VarSet)
		for _, succ := range s.succs(b) {
			kill := s.varKill[succ]
			for v := range src[succ] {
				if !kill.Has(v) {
					out.Add(v)
				}
			}
			for v := range s.ueVar[succ] {
				out.Add(v)
			}
		}
		if !out.Equal(s.liveOut[b.Name]) {
			s.liveOut[b.Name] = out
			changed = true
		}
	}
	return changed
}

// snapshot returns a copy of the current LiveOut sets.
func (s *solver) snapshot() map[string]VarSet {
	m := make(map[string]VarSet, len(s.liveOut))
	for name, set := range s.liveOut {
		m[name] = set.Clone()
	}
	return m
}
