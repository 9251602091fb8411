package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa/build"
)

func TestWriteCallGraph(t *testing.T) {
	s := `package main
func helper() {}
func main() { helper() }`
	info, err := build.FromReader(strings.NewReader(s)).Build()
	if err != nil {
		t.Fatalf("SSA build failed: %v", err)
	}
	for _, algo := range []string{"static", "cha", "rta"} {
		var buf bytes.Buffer
		if err := writeCallGraph(info, algo, &buf); err != nil {
			t.Fatalf("%s: cannot write callgraph: %v", algo, err)
		}
		if !strings.HasPrefix(buf.String(), "digraph callgraph {") {
			t.Errorf("%s: expects a digraph, got:\n%s", algo, buf.String())
		}
		if !strings.Contains(buf.String(), `"main.main" -> "main.helper"`) {
			t.Errorf("%s: expects edge main -> helper, got:\n%s", algo, buf.String())
		}
	}
	var buf bytes.Buffer
	if err := writeCallGraph(info, "pointer", &buf); !errors.Is(err, ssa.ErrUnknownAlgo) {
		t.Errorf("expects ErrUnknownAlgo, got %v", err)
	}
}
