// Package ir is a minimal representation of a function as a control flow
// graph of basic blocks.
//
// Only instructions which read or write memory are modelled precisely, the
// rest are kept as Other so that printed blocks remain recognisable.
// Successor edges belong to the Function, not to the blocks, and refer to
// blocks by name.
package ir

import (
	"bytes"
	"fmt"
	"io"
)

// Block is a basic block: a named, ordered sequence of instructions.
type Block struct {
	Name   string
	Index  int // Position of the block in its Function.
	Instrs []Instruction
}

// Add appends instructions to the block.
func (b *Block) Add(instrs ...Instruction) *Block {
	b.Instrs = append(b.Instrs, instrs...)
	return b
}

func (b *Block) String() string {
	return b.Name
}

// Function is an ordered set of Blocks and the successor relation between
// them.
type Function struct {
	Name   string
	Blocks []*Block

	index map[string]*Block
	succs map[string][]string
}

// NewFunction returns a new empty Function.
func NewFunction(name string) *Function {
	return &Function{
		Name:  name,
		index: make(map[string]*Block),
		succs: make(map[string][]string),
	}
}

// NewBlock appends a new block to f.
//
// If a block with the same name already exists the new block is still
// appended (the analysis rejects such functions), but Lookup keeps returning
// the first one.
func (f *Function) NewBlock(name string, instrs ...Instruction) *Block {
	b := &Block{Name: name, Index: len(f.Blocks), Instrs: instrs}
	f.Blocks = append(f.Blocks, b)
	if _, exists := f.index[name]; !exists {
		f.index[name] = b
	}
	return b
}

// AddEdge adds a control flow edge from block from to block to.
// The blocks need not exist yet.
func (f *Function) AddEdge(from, to string) {
	f.succs[from] = append(f.succs[from], to)
}

// Succs returns the names of successors of b, in the order edges were added.
func (f *Function) Succs(b *Block) []string {
	return f.succs[b.Name]
}

// Lookup returns the block named name, or nil.
func (f *Function) Lookup(name string) *Block {
	return f.index[name]
}

// NumEdges returns the number of edges in the CFG.
func (f *Function) NumEdges() int {
	n := 0
	for _, succs := range f.succs {
		n += len(succs)
	}
	return n
}

// WriteTo writes f in human readable form to w.
func (f *Function) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "func %s:\n", f.Name)
	for _, b := range f.Blocks {
		fmt.Fprintf(&buf, "%s:", b.Name)
		if succs := f.Succs(b); len(succs) > 0 {
			fmt.Fprintf(&buf, " -> %v", succs)
		}
		buf.WriteString("\n")
		for _, instr := range b.Instrs {
			fmt.Fprintf(&buf, "\t%s\n", instr)
		}
	}
	return buf.WriteTo(w)
}

func (f *Function) String() string {
	var buf bytes.Buffer
	f.WriteTo(&buf)
	return buf.String()
}
