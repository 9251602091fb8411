package ir

import (
	"bytes"
	"strings"
)

// OperandKind distinguishes immediate constants from references.
type OperandKind int

const (
	// Const is an immediate constant, it never names a variable.
	Const OperandKind = iota
	// Ref is a reference to a storage location or a computed value.
	Ref
)

func (k OperandKind) String() string {
	switch k {
	case Const:
		return "const"
	case Ref:
		return "ref"
	}
	return "unknown"
}

// Operand is one operand of an Instruction.
//
// A Ref operand may be named (a storage location such as a local, a global or
// a parameter) or anonymous (a temporary computed by another instruction).
// Computed references keep their own inputs in Operands, so an operand is a
// small expression tree that the resolver can look into.
type Operand struct {
	Kind     OperandKind
	Name     string     // Name of the reference (empty if anonymous).
	Literal  string     // Literal text of a constant.
	Operands []*Operand // Inputs of a computed reference.
}

// Constant returns a constant operand with the given literal text.
func Constant(lit string) *Operand {
	return &Operand{Kind: Const, Literal: lit}
}

// Var returns a named reference, ops are the inputs of the reference if it
// is computed.
func Var(name string, ops ...*Operand) *Operand {
	return &Operand{Kind: Ref, Name: name, Operands: ops}
}

// Temp returns an anonymous computed reference with inputs ops.
func Temp(ops ...*Operand) *Operand {
	return &Operand{Kind: Ref, Operands: ops}
}

// IsConst returns true if o is an immediate constant.
func (o *Operand) IsConst() bool {
	return o != nil && o.Kind == Const
}

// IsNamed returns true if o is a reference with a name.
func (o *Operand) IsNamed() bool {
	return o != nil && o.Kind == Ref && o.Name != ""
}

// Operand returns the i-th input of o, or nil if there is none.
func (o *Operand) Operand(i int) *Operand {
	if o == nil || i < 0 || i >= len(o.Operands) {
		return nil
	}
	return o.Operands[i]
}

func (o *Operand) String() string {
	if o == nil {
		return "<nil>"
	}
	switch o.Kind {
	case Const:
		return o.Literal
	case Ref:
		if len(o.Operands) == 0 {
			if o.Name == "" {
				return "%_"
			}
			return "%" + o.Name
		}
		var buf bytes.Buffer
		if o.Name != "" {
			buf.WriteString("%" + o.Name)
		} else {
			buf.WriteString("%_")
		}
		ops := make([]string, len(o.Operands))
		for i, op := range o.Operands {
			ops[i] = op.String()
		}
		buf.WriteString("(" + strings.Join(ops, ", ") + ")")
		return buf.String()
	}
	return "?"
}
