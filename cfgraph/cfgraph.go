// Package cfgraph builds a gonum graph of the CFG of an ir.Function, for
// DOT output and graph algorithms.
package cfgraph

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/block"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/liveness"
)

// Node is a block of the CFG.
type Node struct {
	id    int64
	Block *ir.Block

	Unreachable bool // Not reachable from the first block.

	LiveIn  liveness.VarSet // Set by Annotate.
	LiveOut liveness.VarSet // Set by Annotate.
}

func (n *Node) ID() int64 { return n.id }

// DOTID returns the block name.
func (n *Node) DOTID() string { return n.Block.Name }

// Attributes returns the DOT label of the node.
func (n *Node) Attributes() []encoding.Attribute {
	label := n.Block.Name
	if n.LiveIn != nil {
		label += fmt.Sprintf("\nin: %s\nout: %s", n.LiveIn, n.LiveOut)
	}
	attrs := []encoding.Attribute{{Key: "label", Value: label}}
	if n.Unreachable {
		attrs = append(attrs, encoding.Attribute{Key: "style", Value: "dashed"})
	}
	return attrs
}

// Graph is the CFG of a Function. Self loops and repeated edges of the
// Function are kept.
type Graph struct {
	*multi.DirectedGraph
	name  string
	nodes []*Node
	index map[string]*Node
}

// New returns the graph of fn. Edges to blocks which are not in fn are
// dropped, and blocks not reachable from the first block are marked.
func New(fn *ir.Function) *Graph {
	g := &Graph{
		DirectedGraph: multi.NewDirectedGraph(),
		name:          fn.Name,
		index:         make(map[string]*Node),
	}
	reachable := block.Reachable(fn)
	for i, b := range fn.Blocks {
		n := &Node{id: int64(i), Block: b, Unreachable: !reachable[b]}
		g.AddNode(n)
		g.nodes = append(g.nodes, n)
		if _, dup := g.index[b.Name]; !dup {
			g.index[b.Name] = n
		}
	}
	for _, from := range g.nodes {
		for _, succ := range fn.Succs(from.Block) {
			if to, ok := g.index[succ]; ok {
				g.SetLine(g.NewLine(from, to))
			}
		}
	}
	return g
}

// DOTID returns the function name.
func (g *Graph) DOTID() string { return g.name }

// DOTAttributers returns the default graph, node and edge attributes.
func (g *Graph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return &encoding.Attributes{{Key: "label", Value: g.name}},
		&encoding.Attributes{{Key: "shape", Value: "box"}},
		&encoding.Attributes{}
}

// Block returns the node of the block named name.
func (g *Graph) Block(name string) *Node {
	return g.index[name]
}

// Annotate sets the live-in and live-out sets of the nodes from res.
func (g *Graph) Annotate(res *liveness.Result) {
	for _, n := range g.nodes {
		if _, ok := res.LiveOut[n.Block.Name]; !ok {
			continue
		}
		n.LiveIn = res.LiveIn(n.Block.Name)
		n.LiveOut = res.LiveOut[n.Block.Name]
	}
}

// Loops returns the blocks of every cycle in the graph, one strongly
// connected component per slice, ordered by their first block.
func (g *Graph) Loops() [][]string {
	var loops [][]string
	for _, scc := range topo.TarjanSCC(g) {
		if len(scc) == 1 && !g.HasEdgeFromTo(scc[0].ID(), scc[0].ID()) {
			continue
		}
		sort.Slice(scc, func(i, j int) bool { return scc[i].ID() < scc[j].ID() })
		loop := make([]string, len(scc))
		for i, n := range scc {
			loop[i] = n.(*Node).Block.Name
		}
		loops = append(loops, loop)
	}
	sort.Slice(loops, func(i, j int) bool {
		return g.index[loops[i][0]].id < g.index[loops[j][0]].id
	})
	return loops
}

// MarshalDOT returns the graph in DOT format.
func (g *Graph) MarshalDOT() ([]byte, error) {
	return dot.MarshalMulti(g, g.name, "", "\t")
}

func (g *Graph) String() string {
	var sb strings.Builder
	for _, n := range g.nodes {
		var succs []*Node
		to := g.From(n.ID())
		for to.Next() {
			succs = append(succs, to.Node().(*Node))
		}
		sort.Slice(succs, func(i, j int) bool { return succs[i].id < succs[j].id })
		names := make([]string, len(succs))
		for i, succ := range succs {
			names[i] = succ.Block.Name
		}
		fmt.Fprintf(&sb, "%s -> [%s]\n", n.Block.Name, strings.Join(names, " "))
	}
	return sb.String()
}

var (
	_ graph.Directed = (*Graph)(nil)
	_ dot.Multigraph = (*Graph)(nil)
)
