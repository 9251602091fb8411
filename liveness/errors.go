package liveness

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedInstruction is the cause of MalformedInstructionError.
	ErrMalformedInstruction = errors.New("malformed instruction")
	// ErrInconsistentCFG is the cause of InconsistentCFGError.
	ErrInconsistentCFG = errors.New("inconsistent CFG")
	// ErrNoConvergence is returned when the round limit is reached.
	ErrNoConvergence = errors.New("liveness did not converge")
	// ErrUnknownOption is returned when parsing an unknown Mode or Order.
	ErrUnknownOption = errors.New("unknown option")
)

// MalformedInstructionError is returned when an instruction operand is
// neither a constant nor resolvable the way the analysis expects.
type MalformedInstructionError struct {
	Block  string // Block containing the instruction.
	Index  int    // Index of the instruction in the block.
	Reason string
}

func (e MalformedInstructionError) Error() string {
	return fmt.Sprintf("%s: %s#%d: %s", ErrMalformedInstruction, e.Block, e.Index, e.Reason)
}

func (e MalformedInstructionError) Unwrap() error { return ErrMalformedInstruction }

// InconsistentCFGError is returned when the successor relation refers to a
// block not in the function, or block names are not unique.
type InconsistentCFGError struct {
	From, To string
	Reason   string
}

func (e InconsistentCFGError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("%s: %s: %s", ErrInconsistentCFG, e.From, e.Reason)
	}
	return fmt.Sprintf("%s: %s → %s: %s", ErrInconsistentCFG, e.From, e.To, e.Reason)
}

func (e InconsistentCFGError) Unwrap() error { return ErrInconsistentCFG }

// malformed is an operand failure not yet attributed to a block.
type malformed string

func (m malformed) Error() string { return string(m) }
