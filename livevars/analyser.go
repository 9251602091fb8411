// Package livevars is the entry point of the live variable analysis of Go
// programs. It lowers every function of a built SSA package and reports the
// liveness sets of its blocks.
package livevars

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	gossa "golang.org/x/tools/go/ssa"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/config"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/internal/logging"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/liveness"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/lower"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa"
)

// Analyser runs the liveness analysis over the functions of a package.
type Analyser struct {
	Info      *ssa.Info // SSA IR.
	EntryFunc string    // Only analyse this function if set.

	Mode      liveness.Mode
	Order     liveness.Order
	MaxRounds int
	Colored   bool // Colour report headers.
	Reachable bool // Only analyse functions reachable from main.

	Results []*liveness.Result // Results of the last Analyse.

	outWriter io.Writer // Output stream.
	errWriter io.Writer // Error stream.
	*logging.Logger
}

// New returns a new Analyser, and uses w for reporting analysis failures.
func New(info *ssa.Info, w io.Writer) *Analyser {
	a := Analyser{
		Info:      info,
		outWriter: io.Discard,
		errWriter: io.Discard,
	}
	a.SetLogger(newLogger())
	if w != nil {
		a.errWriter = w
	}
	return &a
}

// Configure applies the solver and report settings of cfg.
func (a *Analyser) Configure(cfg config.Config) error {
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	order, err := cfg.Order()
	if err != nil {
		return err
	}
	a.Mode, a.Order, a.MaxRounds = mode, order, cfg.Solver.MaxRounds
	a.Colored = cfg.Report.Color
	a.Reachable = cfg.Report.Reachable
	return nil
}

func (a *Analyser) SetEntryFunc(path string) {
	a.EntryFunc = path
}

// AddLogFiles replaces the Logger with a debug level Logger which also writes
// to files. "stderr" and "stdout" name the standard streams.
func (a *Analyser) AddLogFiles(file ...string) {
	a.SetLogger(newFileLogger(file...))
}

func (a *Analyser) SetOutput(w io.Writer) {
	if w != nil {
		a.outWriter = w
	}
}

// SetLogger sets logger for Analyser.
func (a *Analyser) SetLogger(l *logging.Logger) {
	a.Logger = l.For("livevars", color.FgMagenta)
}

// shareLogger passes the logger of a on to the analysis stages.
func (a *Analyser) shareLogger(stages ...logging.LogSetter) {
	for _, s := range stages {
		s.SetLogger(a.Logger)
	}
}

// Funcs returns the functions to analyse in report order.
func (a *Analyser) Funcs() ([]*gossa.Function, error) {
	if a.EntryFunc != "" {
		fn, err := a.Info.FindFunc(a.EntryFunc)
		if err != nil {
			return nil, errors.Wrap(err, "cannot find entry function")
		}
		return []*gossa.Function{fn}, nil
	}
	funcs := a.Info.SrcFuncs()
	if !a.Reachable {
		return funcs, nil
	}
	graph, err := a.Info.BuildCallGraph("rta")
	if err != nil {
		return nil, err
	}
	used, err := graph.UsedFunctions()
	if err != nil {
		return nil, err
	}
	isUsed := make(map[*gossa.Function]bool, len(used))
	for _, fn := range used {
		isUsed[fn] = true
	}
	var reachable []*gossa.Function
	for _, fn := range funcs {
		if isUsed[fn] {
			reachable = append(reachable, fn)
		}
	}
	return reachable, nil
}

// Analyse analyses every function and writes the reports to the output.
// It stops at the first function which cannot be analysed.
func (a *Analyser) Analyse() error {
	// Sync error ignored. See https://github.com/uber-go/zap/issues/328
	defer a.Logger.Sync()

	funcs, err := a.Funcs()
	if err != nil {
		return err
	}
	lowerer := lower.New()
	a.shareLogger(lowerer)

	a.Results = nil
	for _, f := range funcs {
		fn, err := lowerer.Lower(f)
		if err != nil {
			fmt.Fprintf(a.errWriter, "%s: %v\n", f, err)
			return err
		}
		analysis := liveness.New(fn).
			WithMode(a.Mode).
			WithOrder(a.Order).
			WithMaxRounds(a.MaxRounds)
		a.shareLogger(analysis)
		res, err := analysis.Run()
		if err != nil {
			fmt.Fprintf(a.errWriter, "%s: %v\n", f, err)
			return err
		}
		a.Debugf("%s %s: %d blocks, %d rounds", a.Logger.Module(), res.Function, len(res.Blocks), res.Rounds)
		a.Results = append(a.Results, res)
		if _, err := res.WriteReport(a.outWriter, a.Colored); err != nil {
			return errors.Wrap(err, "cannot write report")
		}
	}
	return nil
}
