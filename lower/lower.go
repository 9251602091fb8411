// Package lower translates SSA functions built by golang.org/x/tools/go/ssa
// into the block/instruction form of package ir.
//
// The translation expects functions built in naive form, where every source
// local variable is an Alloc and every access to it is a load (UnOp *) or a
// Store. Loads become ir.Read, stores become ir.Write and every other
// instruction is kept as ir.Other for display.
package lower

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/ssa"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/internal/logging"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
)

// ErrNoBody is returned when lowering an external function.
var ErrNoBody = errors.New("function has no body")

// maxDepth bounds the operand trees built from SSA values. The resolver
// looks at most three levels into a write's value.
const maxDepth = 3

// synthetic are Alloc comments of locals that have no source-level name.
var synthetic = map[string]bool{
	"complit":       true,
	"makeslice":     true,
	"new":           true,
	"rangeindex":    true,
	"rangeint.iter": true,
	"slicelit":      true,
	"varargs":       true,
}

// Lowerer lowers SSA functions.
type Lowerer struct {
	*logging.Logger
}

// New returns a Lowerer which does not log.
func New() *Lowerer {
	l := new(Lowerer)
	l.SetLogger(logging.Nop())
	return l
}

// SetLogger sets logger for Lowerer.
func (l *Lowerer) SetLogger(logger *logging.Logger) {
	l.Logger = logger.For("lower", color.FgGreen)
}

// Function lowers f with a Lowerer that does not log.
func Function(f *ssa.Function) (*ir.Function, error) {
	return New().Lower(f)
}

// Lower translates the body of f.
func (l *Lowerer) Lower(f *ssa.Function) (*ir.Function, error) {
	if len(f.Blocks) == 0 {
		return nil, errors.Wrap(ErrNoBody, f.String())
	}
	fl := &funcLowerer{
		fn:     ir.NewFunction(Name(f)),
		locals: localNames(f),
	}
	for _, b := range f.Blocks {
		blk := fl.fn.NewBlock(BlockName(b))
		for _, instr := range b.Instrs {
			blk.Add(fl.instr(instr))
		}
	}
	for _, b := range f.Blocks {
		for _, succ := range b.Succs {
			fl.fn.AddEdge(BlockName(b), BlockName(succ))
		}
	}
	l.Debugf("%s lowered %s: %d blocks, %d edges, %d locals",
		l.Module(), fl.fn.Name, len(fl.fn.Blocks), fl.fn.NumEdges(), len(fl.locals))
	return fl.fn, nil
}

// Name is the name of f relative to its package.
func Name(f *ssa.Function) string {
	if f.Pkg != nil {
		return f.RelString(f.Pkg.Pkg)
	}
	return f.String()
}

// BlockName is the name of b in the lowered function, index then comment.
func BlockName(b *ssa.BasicBlock) string {
	if b.Comment == "" {
		return strconv.Itoa(b.Index)
	}
	return fmt.Sprintf("%d.%s", b.Index, b.Comment)
}

// localNames names every Alloc of f. Source variables keep their name,
// shadowed names get a numeric suffix and synthetic locals use their
// register name.
func localNames(f *ssa.Function) map[*ssa.Alloc]string {
	names := make(map[*ssa.Alloc]string)
	seen := make(map[string]int)
	for _, b := range f.Blocks {
		for _, instr := range b.Instrs {
			alloc, ok := instr.(*ssa.Alloc)
			if !ok {
				continue
			}
			name := alloc.Comment
			if synthetic[name] || !token.IsIdentifier(name) {
				names[alloc] = alloc.Name()
				continue
			}
			if n := seen[name]; n > 0 {
				seen[name]++
				name = fmt.Sprintf("%s.%d", name, n)
			} else {
				seen[name] = 1
			}
			names[alloc] = name
		}
	}
	return names
}

type funcLowerer struct {
	fn     *ir.Function
	locals map[*ssa.Alloc]string
}

func (fl *funcLowerer) instr(instr ssa.Instruction) ir.Instruction {
	switch instr := instr.(type) {
	case *ssa.UnOp:
		if instr.Op == token.MUL && !isConst(instr.X) {
			return ir.NewRead(fl.operand(instr.X, 1))
		}
	case *ssa.Store:
		if !isConst(instr.Addr) {
			return ir.NewWrite(fl.operand(instr.Val, 1), fl.operand(instr.Addr, 1))
		}
	}
	return other(instr)
}

// operand builds the operand tree of v up to maxDepth levels.
func (fl *funcLowerer) operand(v ssa.Value, depth int) *ir.Operand {
	switch v := v.(type) {
	case *ssa.Const:
		if v.Value == nil {
			return ir.Constant("nil")
		}
		return ir.Constant(v.Value.ExactString())
	case *ssa.Function:
		return ir.Constant(v.Name())
	case *ssa.Builtin:
		return ir.Constant(v.Name())
	case *ssa.Alloc:
		return ir.Var(fl.locals[v])
	case *ssa.Parameter, *ssa.FreeVar, *ssa.Global:
		return ir.Var(v.Name())
	}
	instr, ok := v.(ssa.Instruction)
	if !ok || depth >= maxDepth {
		return ir.Temp()
	}
	var ops []*ir.Operand
	for _, rand := range instr.Operands(nil) {
		if rand == nil || *rand == nil {
			continue
		}
		ops = append(ops, fl.operand(*rand, depth+1))
	}
	return ir.Temp(ops...)
}

func isConst(v ssa.Value) bool {
	_, ok := v.(*ssa.Const)
	return ok
}

// other wraps an instruction which is neither a load nor a store.
func other(instr ssa.Instruction) *ir.Other {
	op := strings.ToLower(strings.TrimPrefix(fmt.Sprintf("%T", instr), "*ssa."))
	text := instr.String()
	if v, ok := instr.(ssa.Value); ok && v.Name() != "" {
		text = v.Name() + " = " + text
	}
	return &ir.Other{Op: op, Text: text}
}
