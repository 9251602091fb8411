// Command liveness is the command line entry point to the live variable
// analysis of Go source code.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	gossa "golang.org/x/tools/go/ssa"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/config"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/liveness"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/livevars"
	"github.com/Count3x/data-flow-analyzer-hengshuo-main/ssa/build"
)

const (
	Usage = `liveness is a tool for computing live variables of Go source code.

For every basic block of every function it prints the variables used before
assignment (UEVAR), the variables assigned (VARKILL) and the variables live
on exit (LIVEOUT).

Usage:

  liveness [options] file.go [files.go...]

Options:

`
)

var (
	cfgPath   string
	entryFunc string
	logPath   string
	mode      liveness.Mode
	order     liveness.Order
	maxRounds int
	colored   bool
	reachable bool
	lifted    bool

	logFile string // Analysis log output, in zap output path form.
)

func init() {
	flag.StringVar(&cfgPath, "config", "", "Specify configuration file (default: "+config.Name+" in source directory or its parents)")
	flag.StringVar(&entryFunc, "func", "", `Only analyse this function (format: FuncName or "import/path".FuncName)`)
	flag.StringVar(&logPath, "log", "", "Specify analysis log file (use '-' for stderr)")
	flag.Var(&mode, "mode", "Solver mode: gauss-seidel or jacobi")
	flag.Var(&order, "order", "Block order of solver rounds: function or postorder")
	flag.IntVar(&maxRounds, "max-rounds", 0, "Maximum solver rounds (0 is unlimited)")
	flag.BoolVar(&colored, "color", false, "Colour report headers")
	flag.BoolVar(&reachable, "reachable", false, "Only analyse functions reachable from main")
	flag.BoolVar(&lifted, "lifted", false, "Lift local variables to registers before analysis")
}

// loadConfig returns the configuration file settings overridden by the flags
// set on the command line.
func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load(filepath.Dir(flag.Arg(0)))
	}
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Solver.Mode = mode.String()
		case "order":
			cfg.Solver.Order = order.String()
		case "max-rounds":
			cfg.Solver.MaxRounds = maxRounds
		case "color":
			cfg.Report.Color = colored
		case "reachable":
			cfg.Report.Reachable = reachable
		case "lifted":
			cfg.Build.Naive = !lifted
		}
	})
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, Usage)
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("Cannot load configuration: ", err)
	}

	conf := build.FromFiles(flag.Args()).Default()
	if !cfg.Build.Naive {
		conf = conf.WithMode(gossa.BuilderMode(0))
	}
	conf = conf.WithDebugRefs(cfg.Build.DebugRefs)
	switch logPath {
	case "":
	case "-":
		conf = conf.WithBuildLog(os.Stderr, log.LstdFlags)
		logFile = "stderr"
	default:
		f, err := os.Create(logPath)
		if err != nil {
			log.Fatalf("Cannot create log %s: %v", logPath, err)
		}
		defer f.Close()
		conf = conf.WithBuildLog(f, log.LstdFlags)
		logFile = f.Name()
	}
	info, err := conf.Build()
	if err != nil {
		log.Fatal("Build failed: ", err)
	}

	analyser := livevars.New(info, nil)
	if logFile != "" {
		analyser.AddLogFiles(logFile)
	}
	if err := analyser.Configure(cfg); err != nil {
		log.Fatal(err)
	}
	analyser.SetEntryFunc(entryFunc)
	analyser.SetOutput(os.Stdout)
	if err := analyser.Analyse(); err != nil {
		log.Fatal("Analysis failed: ", err)
	}
}
