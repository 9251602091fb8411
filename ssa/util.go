package ssa

import (
	"go/token"
	"go/types"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

var (
	ErrNoMainPkgs   = errors.New("no main packages")
	ErrFuncNotFound = errors.New("function not found")
)

// MainPkgs returns the main packages in the program.
func MainPkgs(prog *ssa.Program) ([]*ssa.Package, error) {
	mains := ssautil.MainPackages(prog.AllPackages())
	if len(mains) == 0 {
		return nil, ErrNoMainPkgs
	}
	return mains, nil
}

// SrcFuncs returns the functions declared in the source package with a
// body, including methods and function literals, sorted by position.
func (info *Info) SrcFuncs() []*ssa.Function {
	var funcs []*ssa.Function
	var addAnons func(f *ssa.Function)
	addAnons = func(f *ssa.Function) {
		if len(f.Blocks) > 0 {
			funcs = append(funcs, f)
		}
		for _, anon := range f.AnonFuncs {
			addAnons(anon)
		}
	}
	for _, mem := range info.Pkg.Members {
		switch mem := mem.(type) {
		case *ssa.Function:
			if mem.Pos() != token.NoPos {
				addAnons(mem)
			}
		case *ssa.Type:
			for _, T := range []types.Type{mem.Type(), types.NewPointer(mem.Type())} {
				mset := info.Prog.MethodSets.MethodSet(T)
				for i := 0; i < mset.Len(); i++ {
					fn := info.Prog.MethodValue(mset.At(i))
					if fn != nil && fn.Pkg == info.Pkg && fn.Synthetic == "" {
						addAnons(fn)
					}
				}
			}
		}
	}
	funcs = dedup(funcs)
	sort.SliceStable(funcs, func(i, j int) bool {
		if funcs[i].Pos() != funcs[j].Pos() {
			return funcs[i].Pos() < funcs[j].Pos()
		}
		return funcs[i].String() < funcs[j].String()
	})
	return funcs
}

func dedup(funcs []*ssa.Function) []*ssa.Function {
	seen := make(map[*ssa.Function]bool, len(funcs))
	out := funcs[:0]
	for _, f := range funcs {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
