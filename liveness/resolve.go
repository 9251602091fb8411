package liveness

import (
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
)

// WriteOperands is the result of resolving the operands of a Write.
type WriteOperands struct {
	Uses       []string // Variables read by the write, value operand first.
	Kill       string   // Variable overwritten (empty if the address is computed).
	Suppressed bool     // True if the uses were withheld by the constant-index rule.
}

// ResolveWrite determines which variables w reads and which one it kills.
//
// Each operand is resolved one level: a constant names nothing, a reference
// names whatever its own first operand names. If either of the first two
// inputs of the value operand has a constant as its own first input, both
// uses are dropped (constant-index address computations). The kill is the
// address operand's own name and is never dropped.
func ResolveWrite(w *ir.Write) (WriteOperands, error) {
	var res WriteOperands
	if w == nil {
		return res, malformed("nil write")
	}
	if w.Value == nil {
		return res, malformed("write has no value operand")
	}
	if w.Addr == nil {
		return res, malformed("write has no address operand")
	}
	if w.Addr.IsConst() {
		return res, malformed("write to constant address " + w.Addr.Literal)
	}
	res.Kill = w.Addr.Name

	// A constant value still lets the address resolve to a use.
	valueVar, err := resolveOperand(w.Value)
	if err != nil {
		return res, err
	}
	addrVar, err := resolveOperand(w.Addr)
	if err != nil {
		return res, err
	}

	suppress, err := constantIndexed(w.Value)
	if err != nil {
		return res, err
	}
	if suppress {
		res.Suppressed = true
		return res, nil
	}
	for _, v := range []string{valueVar, addrVar} {
		if v != "" {
			res.Uses = append(res.Uses, v)
		}
	}
	return res, nil
}

// resolveOperand returns the variable op reads through, or "" for none.
func resolveOperand(op *ir.Operand) (string, error) {
	switch op.Kind {
	case ir.Const:
		return "", nil
	case ir.Ref:
		if len(op.Operands) == 0 {
			return "", nil // Leaf reference, nothing behind it.
		}
		first := op.Operands[0]
		if first == nil {
			return "", malformed("operand " + op.String() + " has nil input")
		}
		if first.IsNamed() {
			return first.Name, nil
		}
		return "", nil
	}
	return "", malformed("operand " + op.String() + " has unknown kind")
}

// constantIndexed reports whether value has the shape
//
//	value(x(const, ...), ...)  or  value(_, y(const, ...), ...)
//
// i.e. one of its first two inputs is itself computed from a constant.
func constantIndexed(value *ir.Operand) (bool, error) {
	if value.Kind != ir.Ref {
		return false, nil
	}
	for i := 0; i < 2 && i < len(value.Operands); i++ {
		inner := value.Operands[i]
		if inner == nil {
			return false, malformed("operand " + value.String() + " has nil input")
		}
		if inner.Kind != ir.Ref || len(inner.Operands) == 0 {
			continue
		}
		if inner.Operands[0].IsConst() {
			return true, nil
		}
	}
	return false, nil
}

// resolveRead returns the variable read by r, or "" if r reads through an
// anonymous reference.
func resolveRead(r *ir.Read) (string, error) {
	if r == nil || r.Src == nil {
		return "", malformed("read has no source operand")
	}
	if r.Src.IsConst() {
		return "", malformed("read from constant " + r.Src.Literal)
	}
	return r.Src.Name, nil
}
