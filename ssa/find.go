package ssa

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/ssa"
)

var (
	quotedPath = regexp.MustCompile(`^"(?P<pkg>[^"]+)"\.(?P<fn>.+)$`)
	parenPath  = regexp.MustCompile(`^\((?P<pkg>[^)]+)\)\.(?P<fn>.+)$`)
)

// FindFunc parses path (e.g. "example.com/pkg".Foo) and returns the Function
// body in SSA IR. A path without package refers to the built package. Methods
// are written as Type.Method, function literals by their SSA name
// (e.g. main$1).
func (info *Info) FindFunc(path string) (*ssa.Function, error) {
	pkgPath, fnName := parseFuncPath(path)
	if pkgPath == "" && info.Pkg != nil {
		pkgPath = info.Pkg.Pkg.Path()
	}
	for _, f := range info.SrcFuncs() {
		if f.Pkg == nil || f.Pkg.Pkg.Path() != pkgPath {
			continue
		}
		if funcName(f) == fnName {
			return f, nil
		}
	}
	return nil, errors.Wrap(ErrFuncNotFound, path)
}

// funcName is the name of f without package, with receiver type name for
// methods.
func funcName(f *ssa.Function) string {
	if recv := f.Signature.Recv(); recv != nil {
		t := recv.Type().String()
		t = t[strings.LastIndex(t, ".")+1:]
		return t + "." + f.Name()
	}
	return f.Name()
}

// parseFuncPath splits path to package and function segments.
func parseFuncPath(path string) (pkgPath, fnName string) {
	if len(path) < 1 {
		return "", ""
	}
	switch path[0] {
	case '(':
		if m := parenPath.FindStringSubmatch(path); len(m) >= 3 {
			return m[1], m[2]
		}
	case '"':
		if m := quotedPath.FindStringSubmatch(path); len(m) >= 3 {
			return m[1], m[2]
		}
	}
	return "", path
}
