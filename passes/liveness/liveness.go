// Package liveness defines an Analyzer that computes the live variables of
// every function in a package.
//
// The package is built in naive SSA form, where each local variable stays
// in memory, lowered and analysed function by function. With -report, the
// Analyzer reports the variables live on entry of each function, which are
// locals read before any assignment.
package liveness

import (
	"go/ast"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ssa"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/liveness"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/lower"
)

const Doc = `compute live variables of each function

The liveness analysis computes, for every block of every function, the
variables used before being assigned in the block (UEVAR), the variables
assigned in the block (VARKILL) and the variables live after the block
(LIVEOUT).`

var Analyzer = &analysis.Analyzer{
	Name:       "liveness",
	Doc:        Doc,
	Run:        run,
	ResultType: reflect.TypeOf(new(Result)),
}

var (
	report    bool
	mode      liveness.Mode
	order     liveness.Order
	maxRounds int
)

func init() {
	Analyzer.Flags.BoolVar(&report, "report", false, "report variables live on function entry")
	Analyzer.Flags.Var(&mode, "mode", "solver mode (gauss-seidel or jacobi)")
	Analyzer.Flags.Var(&order, "order", "block order (function or postorder)")
	Analyzer.Flags.IntVar(&maxRounds, "max-rounds", 0, "maximum solver rounds (0 is unlimited)")
}

// Result is the result of the Analyzer.
type Result struct {
	Pkg   *ssa.Package
	Funcs []*ssa.Function // Source functions in source order.

	Liveness map[*ssa.Function]*liveness.Result
}

func run(pass *analysis.Pass) (interface{}, error) {
	prog := ssa.NewProgram(pass.Fset, ssa.NaiveForm)
	for _, p := range pass.Pkg.Imports() {
		prog.CreatePackage(p, nil, nil, true)
	}
	ssapkg := prog.CreatePackage(pass.Pkg, pass.Files, pass.TypesInfo, false)
	ssapkg.Build()

	res := &Result{
		Pkg:      ssapkg,
		Liveness: make(map[*ssa.Function]*liveness.Result),
	}
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			decl, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			fn, ok := pass.TypesInfo.Defs[decl.Name].(*types.Func)
			if !ok {
				continue
			}
			var addAnons func(f *ssa.Function)
			addAnons = func(f *ssa.Function) {
				res.Funcs = append(res.Funcs, f)
				for _, anon := range f.AnonFuncs {
					addAnons(anon)
				}
			}
			if f := prog.FuncValue(fn); f != nil {
				addAnons(f)
			}
		}
	}

	for _, f := range res.Funcs {
		if len(f.Blocks) == 0 {
			continue
		}
		irFn, err := lower.Function(f)
		if err != nil {
			return nil, err
		}
		lres, err := liveness.New(irFn).
			WithMode(mode).
			WithOrder(order).
			WithMaxRounds(maxRounds).
			Run()
		if err != nil {
			return nil, err
		}
		res.Liveness[f] = lres
		if report {
			pass.Reportf(f.Pos(), "%s%s live-in %s", liveness.Header, lres.Function, lres.LiveIn(lres.Blocks[0]))
		}
	}
	return res, nil
}
