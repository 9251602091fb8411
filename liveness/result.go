package liveness

import (
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
)

// Result holds the per-block sets of one analysis invocation.
// Maps are keyed by block name.
type Result struct {
	Function string
	Blocks   []string // Block names in Function order.

	UEVar   map[string]VarSet
	VarKill map[string]VarSet
	LiveOut map[string]VarSet

	Rounds int // Solver rounds, including the final unchanged round.
}

func newResult(fn *ir.Function) *Result {
	r := &Result{
		Function: fn.Name,
		Blocks:   make([]string, len(fn.Blocks)),
		UEVar:    make(map[string]VarSet, len(fn.Blocks)),
		VarKill:  make(map[string]VarSet, len(fn.Blocks)),
		LiveOut:  make(map[string]VarSet, len(fn.Blocks)),
	}
	for i, b := range fn.Blocks {
		r.Blocks[i] = b.Name
	}
	return r
}

// LiveIn returns the variables live on entry to block:
// UEVar(b) ∪ (LiveOut(b) − VarKill(b)).
func (r *Result) LiveIn(block string) VarSet {
	in := r.UEVar[block].Clone()
	kill := r.VarKill[block]
	for v := range r.LiveOut[block] {
		if !kill.Has(v) {
			in.Add(v)
		}
	}
	return in
}
