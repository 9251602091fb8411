package liveness

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
)

func TestResolveWrite(t *testing.T) {
	tests := []struct {
		name       string
		write      *ir.Write
		uses       []string
		kill       string
		suppressed bool
	}{
		{
			name:  "Constant to variable",
			write: ir.NewWrite(ir.Constant("1"), ir.Var("y")),
			kill:  "y",
		},
		{
			name:  "Loaded value to variable",
			write: ir.NewWrite(ir.Temp(ir.Var("a")), ir.Var("b")),
			uses:  []string{"a"},
			kill:  "b",
		},
		{
			name:  "Computed value names no variable",
			write: ir.NewWrite(ir.Temp(ir.Temp(ir.Var("a")), ir.Constant("1")), ir.Var("a")),
			kill:  "a",
		},
		{
			name:  "Parameter to variable",
			write: ir.NewWrite(ir.Var("param"), ir.Var("x")),
			kill:  "x",
		},
		{
			name:  "Store through pointer",
			write: ir.NewWrite(ir.Constant("5"), ir.Temp(ir.Var("p"))),
			uses:  []string{"p"},
		},
		{
			name:  "Value and address both used",
			write: ir.NewWrite(ir.Temp(ir.Var("v")), ir.Var("dst", ir.Var("base"))),
			uses:  []string{"v", "base"},
			kill:  "dst",
		},
		{
			name: "Constant index in first input suppresses uses",
			write: ir.NewWrite(
				ir.Var("elem", ir.Var("arr", ir.Constant("2")), ir.Var("x")),
				ir.Var("dst", ir.Var("p"))),
			kill:       "dst",
			suppressed: true,
		},
		{
			name: "Constant index in second input suppresses uses",
			write: ir.NewWrite(
				ir.Temp(ir.Var("a"), ir.Temp(ir.Constant("3"))),
				ir.Var("b")),
			kill:       "b",
			suppressed: true,
		},
		{
			name: "Constant as direct input does not suppress",
			write: ir.NewWrite(
				ir.Var("sum", ir.Var("a"), ir.Constant("3")),
				ir.Var("b")),
			uses: []string{"a"},
			kill: "b",
		},
		{
			name: "Third input is not inspected",
			write: ir.NewWrite(
				ir.Temp(ir.Var("a"), ir.Var("b"), ir.Temp(ir.Constant("0"))),
				ir.Var("c")),
			uses: []string{"a"},
			kill: "c",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ops, err := ResolveWrite(test.write)
			if err != nil {
				t.Fatalf("ResolveWrite(%s) failed: %v", test.write, err)
			}
			if !reflect.DeepEqual(ops.Uses, test.uses) {
				t.Errorf("Uses = %v, want %v", ops.Uses, test.uses)
			}
			if ops.Kill != test.kill {
				t.Errorf("Kill = %q, want %q", ops.Kill, test.kill)
			}
			if ops.Suppressed != test.suppressed {
				t.Errorf("Suppressed = %t, want %t", ops.Suppressed, test.suppressed)
			}
		})
	}
}

func TestResolveWriteMalformed(t *testing.T) {
	tests := []struct {
		name  string
		write *ir.Write
	}{
		{"Nil write", nil},
		{"No value", ir.NewWrite(nil, ir.Var("x"))},
		{"No address", ir.NewWrite(ir.Constant("1"), nil)},
		{"Constant address", ir.NewWrite(ir.Constant("1"), ir.Constant("0"))},
		{"Nil input of value", ir.NewWrite(ir.Temp(nil), ir.Var("x"))},
		{"Nil input of address", ir.NewWrite(ir.Constant("1"), ir.Temp(nil))},
		{"Nil second input of value", ir.NewWrite(ir.Temp(ir.Var("a"), nil), ir.Var("x"))},
		{"Unknown operand kind", ir.NewWrite(&ir.Operand{Kind: ir.OperandKind(7)}, ir.Var("x"))},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ResolveWrite(test.write); err == nil {
				t.Errorf("expects ResolveWrite(%v) to fail", test.write)
			}
		})
	}
}

func TestMalformedInBlock(t *testing.T) {
	fn := ir.NewFunction("f")
	fn.NewBlock("entry",
		ir.NewRead(ir.Var("x")),
		ir.NewWrite(ir.Constant("1"), ir.Constant("2")))
	_, err := Analyse(fn)
	if !errors.Is(err, ErrMalformedInstruction) {
		t.Fatalf("expects ErrMalformedInstruction, got %v", err)
	}
	var merr MalformedInstructionError
	if !errors.As(err, &merr) {
		t.Fatalf("expects a MalformedInstructionError, got %T", err)
	}
	if merr.Block != "entry" || merr.Index != 1 {
		t.Errorf("expects error at entry#1, got %s#%d", merr.Block, merr.Index)
	}
}

func TestMalformedRead(t *testing.T) {
	for _, instr := range []ir.Instruction{
		ir.NewRead(nil),
		ir.NewRead(ir.Constant("0")),
		(*ir.Read)(nil),
		nil,
	} {
		b := &ir.Block{Name: "b", Instrs: []ir.Instruction{instr}}
		if _, _, err := LocalSets(b); !errors.Is(err, ErrMalformedInstruction) {
			t.Errorf("LocalSets with %v: expects ErrMalformedInstruction, got %v", instr, err)
		}
	}
}
