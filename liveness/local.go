package liveness

import (
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
)

// LocalSets computes the upward-exposed uses and the killed variables of b
// from its own instructions. A Read through an anonymous reference, or an
// operand which is a leaf reference, names no variable and is skipped rather
// than reported as malformed.
func LocalSets(b *ir.Block) (ueVar, varKill VarSet, err error) {
	ueVar, varKill = make(VarSet), make(VarSet)
	use := func(v string) {
		if v != "" && !varKill.Has(v) {
			ueVar.Add(v)
		}
	}
	for i, instr := range b.Instrs {
		switch instr := instr.(type) {
		case *ir.Read:
			v, err := resolveRead(instr)
			if err != nil {
				return nil, nil, blockErr(b, i, err)
			}
			use(v)

		case *ir.Write:
			ops, err := ResolveWrite(instr)
			if err != nil {
				return nil, nil, blockErr(b, i, err)
			}
			for _, v := range ops.Uses {
				use(v)
			}
			if ops.Kill != "" {
				varKill.Add(ops.Kill)
			}

		case *ir.Other:

		case nil:
			return nil, nil, MalformedInstructionError{Block: b.Name, Index: i, Reason: "nil instruction"}
		}
	}
	return ueVar, varKill, nil
}

func blockErr(b *ir.Block, i int, err error) error {
	return MalformedInstructionError{Block: b.Name, Index: i, Reason: err.Error()}
}
