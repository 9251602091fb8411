// Package ssa is a library to build and work with SSA.
// For most part the package contains helper or wrapper functions to use the
// packages in Go project's extra tools.
//
// In particular, the SSA IR is from golang.org/x/tools/go/ssa. The build
// subpackage builds it in naive form, where local variables stay in memory
// and every access to them is an explicit load or store, which is the form
// the liveness analysis consumes after lowering.
//
package ssa

import (
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/ssa"
)

// Info holds the results of a SSA build for analysis.
// To populate this structure, the 'build' subpackage should be used.
//
type Info struct {
	FSet      *token.FileSet // FileSet for parsed source files.
	Prog      *ssa.Program   // SSA IR for whole program.
	Pkg       *ssa.Package   // Package built from source.
	TypesInfo *types.Info    // Type information of the source package.

	BldLog io.Writer // Build log.
}
