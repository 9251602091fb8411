// Command livevet runs the liveness Analyzer as a standalone vet-style tool.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/passes/liveness"
)

func main() { singlechecker.Main(liveness.Analyzer) }
