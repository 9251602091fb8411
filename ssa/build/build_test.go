package build_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	gossa "golang.org/x/tools/go/ssa"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa/build"
)

var (
	helloProg = `
	package main
	import "fmt"
	func main() {
		x := "hello"
		fmt.Println(x)
	}`
)

// Test loading from files.
func TestBuildFromFiles(t *testing.T) {
	files := []string{"testdata/main.go", "testdata/foo.go", "testdata/bar.go"}
	conf := build.FromFiles(files)
	info, err := conf.Build()
	if err != nil {
		t.Fatalf("SSA build failed: %v", err)
	}
	mains, err := ssa.MainPkgs(info.Prog)
	if err != nil {
		t.Fatalf("cannot find main package: %v", err)
	}
	for _, main := range mains {
		if main.Func("main") == nil {
			t.Errorf("cannot find main.main()")
		}
		if main.Func("foo") == nil {
			t.Errorf("cannot find main.foo()")
		}
		if main.Func("bar") == nil {
			t.Errorf("cannot find main.bar()")
		}
	}
}

func TestBuildMissingFile(t *testing.T) {
	if _, err := build.FromFiles([]string{"testdata/nonexistent.go"}).Build(); err == nil {
		t.Errorf("expects build of missing file to fail")
	}
	if _, err := build.FromFiles(nil).Build(); err == nil {
		t.Errorf("expects build without files to fail")
	}
}

func TestBuildTypeError(t *testing.T) {
	conf := build.FromReader(strings.NewReader(`package main; func main() { x := 1 }`))
	if _, err := conf.Build(); err == nil {
		t.Errorf("expects unused variable to fail type checking")
	}
}

// Test loading from string/reader.
func TestBuildFromReader(t *testing.T) {
	conf := build.FromReader(strings.NewReader(helloProg))
	info, err := conf.Build()
	if err != nil {
		t.Fatalf("SSA build failed: %v", err)
	}
	if info.Pkg.Func("main") == nil {
		t.Errorf("cannot find main.main()")
	}
	if info.TypesInfo == nil {
		t.Errorf("expects type information in built SSA")
	}
}

// Naive form keeps local variables in memory.
func TestNaiveForm(t *testing.T) {
	countAllocs := func(conf build.Configurer) int {
		info, err := conf.Build()
		if err != nil {
			t.Fatalf("SSA build failed: %v", err)
		}
		n := 0
		for _, b := range info.Pkg.Func("main").Blocks {
			for _, instr := range b.Instrs {
				if _, ok := instr.(*gossa.Alloc); ok {
					n++
				}
			}
		}
		return n
	}
	if n := countAllocs(build.FromReader(strings.NewReader(helloProg))); n == 0 {
		t.Errorf("expects local x to be allocated in naive form")
	}
	lifted := build.FromReader(strings.NewReader(helloProg)).WithMode(gossa.SanityCheckFunctions)
	naive := countAllocs(build.FromReader(strings.NewReader(helloProg)))
	if n := countAllocs(lifted); n >= naive {
		t.Errorf("expects fewer allocations when lifted, got %d (naive %d)", n, naive)
	}
}

func TestWithDebugRefs(t *testing.T) {
	hasDebugRef := func(conf build.Configurer) bool {
		info, err := conf.Build()
		if err != nil {
			t.Fatalf("SSA build failed: %v", err)
		}
		for _, b := range info.Pkg.Func("main").Blocks {
			for _, instr := range b.Instrs {
				if _, ok := instr.(*gossa.DebugRef); ok {
					return true
				}
			}
		}
		return false
	}
	if hasDebugRef(build.FromReader(strings.NewReader(helloProg)).Default()) {
		t.Errorf("expects no DebugRef by default")
	}
	if !hasDebugRef(build.FromReader(strings.NewReader(helloProg)).WithDebugRefs(true)) {
		t.Errorf("expects DebugRef when enabled")
	}
}

func TestWithBuildLog(t *testing.T) {
	buf := new(bytes.Buffer)
	conf := build.FromReader(strings.NewReader(helloProg)).WithBuildLog(buf, log.LstdFlags)
	info, err := conf.Build()
	if err != nil {
		t.Fatalf("SSA build failed: %v", err)
	}
	if info.BldLog != buf {
		t.Errorf("Expects build log to propagate to built SSA, but got: %v",
			info.BldLog)
	}
	if !strings.Contains(buf.String(), "Program loaded and type checked") {
		t.Errorf("Build log was set but not written to\nlog contains:\n%s",
			buf.String())
	}
}

func ExampleFromReader() {
	conf := build.FromReader(strings.NewReader("package main; func main() {}"))
	info, err := conf.Build()
	if err != nil {
		log.Fatalf("SSA build failed: %v", err)
	}
	_ = info // Use info here
	// output:
}
