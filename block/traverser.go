package block

import (
	"github.com/oleiade/lane"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
)

// TraverseEdges takes a Function and apply visit to each edge reachable from
// the first block, breadth first. The first call has a nil from block.
// Edges to blocks which are not in the Function are skipped.
func TraverseEdges(fn *ir.Function, visit func(from, to *ir.Block)) {
	if len(fn.Blocks) == 0 {
		return
	}
	type Edge struct {
		From, To *ir.Block
	}
	visited := make(map[*ir.Block]bool)
	queue := lane.NewQueue()
	for queue.Enqueue(Edge{To: fn.Blocks[0]}); !queue.Empty(); {
		e := queue.Dequeue().(Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		visit(e.From, e.To)
		for _, name := range fn.Succs(e.To) {
			if succ := fn.Lookup(name); succ != nil {
				queue.Enqueue(Edge{From: e.To, To: succ})
			}
		}
	}
}

// Reachable returns the set of blocks reachable from the first block.
func Reachable(fn *ir.Function) map[*ir.Block]bool {
	reachable := make(map[*ir.Block]bool)
	TraverseEdges(fn, func(_, to *ir.Block) {
		reachable[to] = true
	})
	return reachable
}

// PostOrder returns the blocks of fn in depth-first postorder from the first
// block: every block comes after the successors it discovered. Blocks not
// reachable from the first block follow, in Function order.
func PostOrder(fn *ir.Function) []*ir.Block {
	order := make([]*ir.Block, 0, len(fn.Blocks))
	if len(fn.Blocks) == 0 {
		return order
	}
	visited := map[*ir.Block]bool{fn.Blocks[0]: true}
	stack := lane.NewStack()
	stack.Push(fn.Blocks[0])
	for !stack.Empty() {
		tail := true
		this := stack.Head().(*ir.Block)

		// Descend into the first unvisited successor.
		for _, name := range fn.Succs(this) {
			succ := fn.Lookup(name)
			if succ != nil && !visited[succ] {
				tail = false
				visited[succ] = true
				stack.Push(succ)
				break
			}
		}
		if tail {
			order = append(order, stack.Pop().(*ir.Block))
		}
	}
	for _, b := range fn.Blocks {
		if !visited[b] {
			order = append(order, b)
		}
	}
	return order
}
