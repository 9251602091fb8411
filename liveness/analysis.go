// Package liveness computes live variables of an ir.Function.
//
// For each block the analysis derives the upward-exposed uses (UEVar) and the
// variables killed (VarKill) from the block's own instructions, then solves
//
//	LiveOut(b) = ∪ s ∈ succ(b): (LiveOut(s) − VarKill(s)) ∪ UEVar(s)
//
// by iterating rounds over all blocks until no LiveOut changes. The analysis
// never modifies the Function it is given.
package liveness

import (
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/block"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/internal/logging"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
)

// RoundFunc observes the LiveOut sets at the end of each solver round.
// The map is a copy and may be kept.
type RoundFunc func(round int, liveOut map[string]VarSet)

// Analysis is a configured liveness analysis of one Function.
type Analysis struct {
	fn        *ir.Function
	mode      Mode
	order     Order
	maxRounds int
	onRound   RoundFunc

	*logging.Logger
}

// New returns an Analysis of fn with default settings: Gauss–Seidel rounds in
// Function order, no round limit.
func New(fn *ir.Function) *Analysis {
	a := &Analysis{fn: fn}
	a.SetLogger(logging.Nop())
	return a
}

// Analyse runs the default analysis on fn.
func Analyse(fn *ir.Function) (*Result, error) {
	return New(fn).Run()
}

// WithMode sets the solver mode.
func (a *Analysis) WithMode(m Mode) *Analysis {
	a.mode = m
	return a
}

// WithOrder sets the block enumeration order of solver rounds.
func (a *Analysis) WithOrder(o Order) *Analysis {
	a.order = o
	return a
}

// WithMaxRounds limits the number of solver rounds, n <= 0 means no limit.
func (a *Analysis) WithMaxRounds(n int) *Analysis {
	a.maxRounds = n
	return a
}

// OnRound registers f to be called after every solver round.
func (a *Analysis) OnRound(f RoundFunc) *Analysis {
	a.onRound = f
	return a
}

// SetLogger sets logger for Analysis.
func (a *Analysis) SetLogger(l *logging.Logger) {
	a.Logger = l.For("liveness", color.FgYellow)
}

// Run computes UEVar, VarKill and LiveOut for every block.
func (a *Analysis) Run() (*Result, error) {
	if err := checkCFG(a.fn); err != nil {
		return nil, errors.Wrapf(err, "function %s", a.fn.Name)
	}
	res := newResult(a.fn)
	for _, b := range a.fn.Blocks {
		ueVar, varKill, err := LocalSets(b)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s", a.fn.Name)
		}
		res.UEVar[b.Name] = ueVar
		res.VarKill[b.Name] = varKill
		res.LiveOut[b.Name] = make(VarSet)
	}

	s := &solver{
		order:   a.fn.Blocks,
		succs:   a.fn.Succs,
		ueVar:   res.UEVar,
		varKill: res.VarKill,
		liveOut: res.LiveOut,
		mode:    a.mode,
	}
	if a.order == PostOrder {
		s.order = block.PostOrder(a.fn)
	}
	for {
		res.Rounds++
		changed := s.round()
		a.Debugf("%s %s round %d (%s, %s): changed=%t",
			a.Module(), a.fn.Name, res.Rounds, a.mode, a.order, changed)
		if a.onRound != nil {
			a.onRound(res.Rounds, s.snapshot())
		}
		if !changed {
			break
		}
		if a.maxRounds > 0 && res.Rounds >= a.maxRounds {
			return nil, errors.Wrapf(ErrNoConvergence, "function %s: after %d rounds", a.fn.Name, res.Rounds)
		}
	}
	return res, nil
}

// checkCFG ensures block names are unique and every successor exists.
func checkCFG(fn *ir.Function) error {
	seen := make(map[string]bool, len(fn.Blocks))
	for _, b := range fn.Blocks {
		if seen[b.Name] {
			return InconsistentCFGError{From: b.Name, Reason: "duplicate block name"}
		}
		seen[b.Name] = true
	}
	for _, b := range fn.Blocks {
		for _, succ := range fn.Succs(b) {
			if !seen[succ] {
				return InconsistentCFGError{From: b.Name, To: succ, Reason: "successor not in function"}
			}
		}
	}
	return nil
}
