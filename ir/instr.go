package ir

import "fmt"

// Instruction is one of *Read, *Write or *Other.
type Instruction interface {
	String() string
	instr()
}

// Read loads from the memory location named by Src.
type Read struct {
	Src *Operand
}

// Write stores Value to the memory location Addr.
type Write struct {
	Value *Operand // What is stored.
	Addr  *Operand // Where it is stored.
}

// Other is any instruction which neither reads nor writes memory.
type Other struct {
	Op   string // Opcode, for printing.
	Text string // Textual form, for printing.
}

func (*Read) instr()  {}
func (*Write) instr() {}
func (*Other) instr() {}

func (i *Read) String() string {
	return fmt.Sprintf("read %s", i.Src)
}

func (i *Write) String() string {
	return fmt.Sprintf("write %s -> %s", i.Value, i.Addr)
}

func (i *Other) String() string {
	if i.Text == "" {
		return i.Op
	}
	return fmt.Sprintf("%s %s", i.Op, i.Text)
}

// NewRead returns a Read of src.
func NewRead(src *Operand) *Read { return &Read{Src: src} }

// NewWrite returns a Write of value to addr.
func NewWrite(value, addr *Operand) *Write { return &Write{Value: value, Addr: addr} }
