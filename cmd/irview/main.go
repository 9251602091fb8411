// Command irview prints the lowered form of Go functions as seen by the
// liveness analysis.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	gossa "golang.org/x/tools/go/ssa"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/cfgraph"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ir"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/liveness"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/lower"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa/build"
)

const (
	Usage = `irview is a tool for printing the lowered IR of Go source code.

Usage:

  irview [options] file.go [files.go...]

Options:

`
)

var (
	buildlogPath string
	outPath      string
	viewFunc     string
	showSSA      bool
	showDot      bool
	showDump     bool
	showLoops    bool
	cgAlgo       string

	out io.Writer
)

func init() {
	flag.StringVar(&buildlogPath, "log", "", "Specify build log file (use '-' for stdout)")
	flag.StringVar(&outPath, "out", "", "Specify output file (default: stdout)")
	flag.StringVar(&viewFunc, "func", "", `Specify the function to view (format: FuncName or "import/path".FuncName)`)
	flag.BoolVar(&showSSA, "ssa", false, "Print the SSA IR instead of the lowered IR")
	flag.BoolVar(&showDot, "dot", false, "Print the CFG annotated with live variables in graphviz dot format")
	flag.BoolVar(&showDump, "dump", false, "Dump the lowered IR data structures")
	flag.BoolVar(&showLoops, "loops", false, "Print the blocks of each loop")
	flag.StringVar(&cgAlgo, "callgraph", "", "Print the callgraph in graphviz dot format (algorithm: static, cha or rta)")
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, Usage)
		flag.PrintDefaults()
		os.Exit(0)
	}

	conf := build.FromFiles(flag.Args()).Default()

	switch buildlogPath {
	case "":
	case "-":
		conf = conf.WithBuildLog(os.Stdout, log.LstdFlags)
	default:
		f, err := os.Create(buildlogPath)
		if err != nil {
			log.Fatalf("Cannot create log %s: %v", buildlogPath, err)
		}
		defer f.Close()
		conf = conf.WithBuildLog(f, log.LstdFlags)
	}

	switch outPath {
	case "":
		out = os.Stdout
	default:
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("Cannot create output file %s: %v", outPath, err)
		}
		defer f.Close()
		out = f
	}

	info, err := conf.Build()
	if err != nil {
		log.Fatal("Cannot build SSA from files: ", err)
	}
	if cgAlgo != "" {
		if err := writeCallGraph(info, cgAlgo, out); err != nil {
			log.Fatal("Cannot write callgraph: ", err)
		}
		return
	}
	funcs := info.SrcFuncs()
	if viewFunc != "" {
		fn, err := info.FindFunc(viewFunc)
		if err != nil {
			log.Fatal(err)
		}
		funcs = []*gossa.Function{fn}
	}
	for _, f := range funcs {
		if err := view(f); err != nil {
			log.Fatalf("Cannot write %s: %v", f, err)
		}
	}
}

func view(f *gossa.Function) error {
	if showSSA {
		_, err := f.WriteTo(out)
		return err
	}
	fn, err := lower.Function(f)
	if err != nil {
		return err
	}
	switch {
	case showDump:
		spew.Fdump(out, fn)
	case showDot:
		return writeDot(fn)
	case showLoops:
		for _, loop := range cfgraph.New(fn).Loops() {
			fmt.Fprintf(out, "%s: %v\n", fn.Name, loop)
		}
	default:
		_, err = fn.WriteTo(out)
	}
	return err
}

func writeCallGraph(info *ssa.Info, algo string, w io.Writer) error {
	cg, err := info.BuildCallGraph(algo)
	if err != nil {
		return err
	}
	return cg.WriteGraphviz(w)
}

func writeDot(fn *ir.Function) error {
	g := cfgraph.New(fn)
	if res, err := liveness.Analyse(fn); err == nil {
		g.Annotate(res)
	} else {
		log.Printf("Cannot annotate %s: %v", fn.Name, err)
	}
	b, err := g.MarshalDOT()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", b)
	return err
}
