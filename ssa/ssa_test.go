package ssa_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa/build"
)

const callProg = `package main
	import "fmt"
	type T struct{ n int }
	func (t *T) Inc() { t.n++ }
	func main() {
		foo("Hello")
		f := func() { bar() }
		_ = f
	}
	func foo(s string) {
		fmt.Println(s, "World")
	}
	func bar() {
		fmt.Println("doesn't reach here")
	}`

func buildProg(t *testing.T, s string) *ssa.Info {
	t.Helper()
	info, err := build.FromReader(strings.NewReader(s)).Build()
	if err != nil {
		t.Fatalf("SSA build failed: %v", err)
	}
	if info.Prog == nil {
		t.Fatalf("SSA Program missing")
	}
	return info
}

// This tests basic build.
func TestBuild(t *testing.T) {
	info := buildProg(t, `package main
	import "fmt"
	func main() {
		fmt.Println("Hello World")
	}`)
	mains, err := ssa.MainPkgs(info.Prog)
	if err != nil {
		t.Errorf("cannot find main packages: %v", err)
	}
	for _, main := range mains {
		if main.Func("main") == nil {
			t.Error("expects main.main() but not found")
		}
	}
}

// This tests building with non-main package.
func TestBuildNonMainPkg(t *testing.T) {
	info := buildProg(t, `package pkg
	import "fmt"
	func main() {
		fmt.Println("Hello World")
	}`)
	if _, err := ssa.MainPkgs(info.Prog); err != ssa.ErrNoMainPkgs {
		t.Errorf("unexpected main package")
	}
	if _, err := info.BuildCallGraph("rta"); err == nil {
		t.Errorf("expects rta callgraph to require a main package")
	}
}

// This tests building of callgraph.
func TestCallGraph(t *testing.T) {
	info := buildProg(t, callProg)
	for _, algo := range []string{"static", "cha", "rta"} {
		t.Run(algo, func(t *testing.T) {
			graph, err := info.BuildCallGraph(algo)
			if err != nil {
				t.Fatalf("build callgraph failed: %v", err)
			}
			fns, err := graph.UsedFunctions()
			if err != nil {
				t.Fatalf("cannot filter unused functions in callgraph: %v", err)
			}
			foundFoo := false
			for _, fn := range fns {
				if fn.Pkg == nil || fn.Pkg.Pkg.Name() != "main" {
					continue
				}
				switch fn.Name() {
				case "foo":
					foundFoo = true
				case "bar":
					t.Errorf("expects main.bar to be unused")
				}
			}
			if !foundFoo {
				t.Errorf("expects main.foo to be used")
			}
		})
	}
}

func TestUnknownCallGraph(t *testing.T) {
	info := buildProg(t, callProg)
	if _, err := info.BuildCallGraph("pta"); !errors.Is(err, ssa.ErrUnknownAlgo) {
		t.Errorf("expects ErrUnknownAlgo, got %v", err)
	}
}

func TestWriteGraphviz(t *testing.T) {
	info := buildProg(t, callProg)
	cg, err := info.BuildCallGraph("static")
	if err != nil {
		t.Fatalf("Cannot build callgraph: %v", err)
	}
	var buf bytes.Buffer
	if err := cg.WriteGraphviz(&buf); err != nil {
		t.Fatalf("Cannot write callgraph: %v", err)
	}
	s := buf.String()
	if !strings.HasPrefix(s, "digraph callgraph {\n") || !strings.HasSuffix(s, "}\n") {
		t.Errorf("malformed graphviz output:\n%s", s)
	}
	if !strings.Contains(s, `"main.main" -> "main.foo"`) {
		t.Errorf("expects edge main.main -> main.foo in:\n%s", s)
	}
}

func TestSrcFuncs(t *testing.T) {
	info := buildProg(t, callProg)
	var names []string
	for _, fn := range info.SrcFuncs() {
		names = append(names, fn.Name())
	}
	want := []string{"Inc", "main", "main$1", "foo", "bar"}
	if strings.Join(names, " ") != strings.Join(want, " ") {
		t.Errorf("SrcFuncs = %v, want %v", names, want)
	}
}

func TestFindFunc(t *testing.T) {
	info := buildProg(t, callProg)
	tests := []struct {
		path string
		want string
	}{
		{"foo", "foo"},
		{`"main".bar`, "bar"},
		{"(main).main", "main"},
		{"main$1", "main$1"},
		{"T.Inc", "Inc"},
	}
	for _, test := range tests {
		fn, err := info.FindFunc(test.path)
		if err != nil {
			t.Errorf("FindFunc(%s) failed: %v", test.path, err)
			continue
		}
		if fn.Name() != test.want {
			t.Errorf("FindFunc(%s) = %s, want %s", test.path, fn.Name(), test.want)
		}
	}
	if _, err := info.FindFunc("baz"); !errors.Is(err, ssa.ErrFuncNotFound) {
		t.Errorf("expects ErrFuncNotFound, got %v", err)
	}
	if _, err := info.FindFunc(`"fmt".Println`); err == nil {
		t.Errorf("expects functions outside the package not to be found")
	}
}

func TestWriteTo(t *testing.T) {
	info := buildProg(t, callProg)
	var buf bytes.Buffer
	n, err := info.WriteTo(&buf)
	if err != nil {
		t.Fatalf("cannot write SSA: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("expects %d bytes written, got %d", buf.Len(), n)
	}
	for _, s := range []string{"func main():", "func foo(s string):", "func bar():"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("expects %q in output", s)
		}
	}
}
