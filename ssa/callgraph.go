package ssa

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/callgraph"
	"golang.org/x/tools/go/callgraph/cha"
	"golang.org/x/tools/go/callgraph/rta"
	"golang.org/x/tools/go/callgraph/static"
	"golang.org/x/tools/go/ssa"
)

// ErrUnknownAlgo is returned when the callgraph algorithm is not supported.
var ErrUnknownAlgo = errors.New("unknown callgraph algorithm")

// CallGraph is a representation of CallGraph, wrapped with metadata.
type CallGraph struct {
	cg      *callgraph.Graph // Internal cached copy of the callgraph.
	prog    *ssa.Program     // SSA Program for which the callgraph is built from.
	usedFns []*ssa.Function  // Functions reachable from main.init and main.main.
}

// UsedFunctions return a slice of ssa.Function actually used by the current
// Program, rooted at main.init() and main.main(). Functions are sorted by
// name.
func (g *CallGraph) UsedFunctions() ([]*ssa.Function, error) {
	if g.usedFns != nil {
		return g.usedFns, nil
	}

	callTree := make(map[*ssa.Function][]*ssa.Function)
	if err := callgraph.GraphVisitEdges(g.cg, func(edge *callgraph.Edge) error {
		callTree[edge.Caller.Func] = append(callTree[edge.Caller.Func], edge.Callee.Func)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "callgraph: failed to visit edges")
	}

	mains, err := MainPkgs(g.prog)
	if err != nil {
		return nil, errors.Wrap(err, "callgraph: failed to find main packages (Check if this a command?)")
	}

	var fnQueue []*ssa.Function
	for _, main := range mains {
		fnQueue = append(fnQueue, roots(main)...)
	}

	visited := make(map[*ssa.Function]bool)
	for len(fnQueue) > 0 {
		headFn := fnQueue[0]
		fnQueue = fnQueue[1:]
		visited[headFn] = true
		for _, fn := range callTree[headFn] {
			if !visited[fn] {
				fnQueue = append(fnQueue, fn)
			}
			visited[fn] = true
		}
	}

	for fn := range visited {
		g.usedFns = append(g.usedFns, fn)
	}
	sort.Slice(g.usedFns, func(i, j int) bool { return g.usedFns[i].String() < g.usedFns[j].String() })
	return g.usedFns, nil
}

// WriteGraphviz writes callgraph to w in graphviz dot format.
// Edges are written in caller then callee order.
func (g *CallGraph) WriteGraphviz(w io.Writer) error {
	var lines []string
	if err := callgraph.GraphVisitEdges(g.cg, func(edge *callgraph.Edge) error {
		lines = append(lines, fmt.Sprintf("  %q -> %q\n", edge.Caller.Func, edge.Callee.Func))
		return nil
	}); err != nil {
		return err
	}
	sort.Strings(lines)

	bufw := bufio.NewWriter(w)
	bufw.WriteString("digraph callgraph {\n")
	for _, line := range lines {
		bufw.WriteString(line)
	}
	bufw.WriteString("}\n")
	return bufw.Flush()
}

func roots(main *ssa.Package) []*ssa.Function {
	var fns []*ssa.Function
	for _, name := range []string{"init", "main"} {
		if fn := main.Func(name); fn != nil {
			fns = append(fns, fn)
		}
	}
	return fns
}

// BuildCallGraph constructs a callgraph from ssa.Info.
// algo is algorithm available in golang.org/x/tools/go/callgraph, which
// includes:
//  - static  static calls only (unsound)
//  - cha     Class Hierarchy Analysis
//  - rta     Rapid Type Analysis
//
func (info *Info) BuildCallGraph(algo string) (*CallGraph, error) {
	var cg *callgraph.Graph
	switch algo {
	case "static":
		cg = static.CallGraph(info.Prog)

	case "cha":
		cg = cha.CallGraph(info.Prog)

	case "rta":
		mains, err := MainPkgs(info.Prog)
		if err != nil {
			return nil, err
		}
		var fns []*ssa.Function
		for _, main := range mains {
			fns = append(fns, roots(main)...)
		}
		cg = rta.Analyze(fns, true).CallGraph

	default:
		return nil, errors.Wrap(ErrUnknownAlgo, algo)
	}

	cg.DeleteSyntheticNodes()

	return &CallGraph{cg: cg, prog: info.Prog}, nil
}
