package build

import (
	"go/importer"
	"go/token"
	"go/types"
	"io"
	"log"

	"github.com/pkg/errors"
	gossa "golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa"
)

// Configurer is a Builder with chained configuration.
type Configurer interface {
	Builder
	Default() Configurer
	WithMode(mode gossa.BuilderMode) Configurer
	WithDebugRefs(enable bool) Configurer
	WithBuildLog(l io.Writer, flags int) Configurer
}

// Config represents a build configuration.
type Config struct {
	mode gossa.BuilderMode // SSA builder mode.

	bldLog    io.Writer // Build log.
	bldLFlags int       // Build log flags.

	src srcParser // src points to the program source.
}

func newConfig(src srcParser) *Config {
	return &Config{
		mode:      gossa.NaiveForm,
		bldLog:    io.Discard,
		bldLFlags: log.LstdFlags,
		src:       src,
	}
}

// WithMode replaces the SSA builder mode.
func (c *Config) WithMode(mode gossa.BuilderMode) Configurer {
	c.mode = mode
	return c
}

// WithDebugRefs toggles DebugRef instructions in the built functions.
func (c *Config) WithDebugRefs(enable bool) Configurer {
	if enable {
		c.mode |= gossa.GlobalDebug
	} else {
		c.mode &^= gossa.GlobalDebug
	}
	return c
}

// WithBuildLog adds build log to config.
func (c *Config) WithBuildLog(l io.Writer, flags int) Configurer {
	c.bldLog = l
	c.bldLFlags = flags
	return c
}

// Build parses, type-checks and builds the source package.
func (c *Config) Build() (*ssa.Info, error) {
	bldLog := log.New(c.bldLog, "ssabuild: ", c.bldLFlags)

	fset := token.NewFileSet()
	files, err := c.src.Parse(fset)
	if err != nil {
		return nil, err
	}
	bldLog.Printf("Parsed %d file(s)", len(files))

	name := files[0].Name.Name
	pkg := types.NewPackage(name, name)
	tc := &types.Config{Importer: importer.Default()}
	ssaPkg, typesInfo, err := ssautil.BuildPackage(tc, fset, pkg, files, c.mode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to type check")
	}
	bldLog.Print("Program loaded and type checked")

	return &ssa.Info{
		FSet:      fset,
		Prog:      ssaPkg.Prog,
		Pkg:       ssaPkg,
		TypesInfo: typesInfo,
		BldLog:    c.bldLog,
	}, nil
}

// Default returns a default configuration for static analysis: naive form
// without debug references.
func (c *Config) Default() Configurer {
	return c.WithMode(gossa.NaiveForm).WithDebugRefs(false)
}
