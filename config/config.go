// Package config loads analysis settings from liveness.toml files.
//
// Files are looked up from a directory towards the filesystem root. Settings
// of a file closer to the directory override those further away, which in
// turn override the defaults.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/liveness"
)

// Name is the file name of a configuration file.
const Name = "liveness.toml"

// Config is the analysis configuration.
type Config struct {
	Solver Solver `toml:"solver"`
	Report Report `toml:"report"`
	Build  Build  `toml:"build"`
}

// Solver configures the fixed-point iteration.
type Solver struct {
	Mode      string `toml:"mode"`       // gauss-seidel or jacobi.
	Order     string `toml:"order"`      // function or postorder.
	MaxRounds int    `toml:"max_rounds"` // 0 is unlimited.
}

// Report configures the analysis output.
type Report struct {
	Color     bool `toml:"color"`
	Reachable bool `toml:"reachable_only"` // Only functions reachable from main.
}

// Build configures the SSA builder.
type Build struct {
	Naive     bool `toml:"naive"`
	DebugRefs bool `toml:"debug_refs"`
}

// Default is the configuration used when no file sets a value.
var Default = Config{
	Solver: Solver{
		Mode:  liveness.GaussSeidel.String(),
		Order: liveness.FunctionOrder.String(),
	},
	Build: Build{Naive: true},
}

// Mode returns the parsed solver mode.
func (c Config) Mode() (liveness.Mode, error) {
	return liveness.ParseMode(c.Solver.Mode)
}

// Order returns the parsed block order.
func (c Config) Order() (liveness.Order, error) {
	return liveness.ParseOrder(c.Solver.Order)
}

// Validate checks every option of c.
func (c Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return err
	}
	if _, err := c.Order(); err != nil {
		return err
	}
	if c.Solver.MaxRounds < 0 {
		return errors.Errorf("max_rounds %d is negative", c.Solver.MaxRounds)
	}
	return nil
}

type config struct {
	cfg  Config
	meta toml.MetaData
}

// Merge returns cfg with every value defined in ocfg overridden.
func (cfg config) Merge(ocfg config) config {
	if ocfg.meta.IsDefined("solver", "mode") {
		cfg.cfg.Solver.Mode = ocfg.cfg.Solver.Mode
	}
	if ocfg.meta.IsDefined("solver", "order") {
		cfg.cfg.Solver.Order = ocfg.cfg.Solver.Order
	}
	if ocfg.meta.IsDefined("solver", "max_rounds") {
		cfg.cfg.Solver.MaxRounds = ocfg.cfg.Solver.MaxRounds
	}
	if ocfg.meta.IsDefined("report", "color") {
		cfg.cfg.Report.Color = ocfg.cfg.Report.Color
	}
	if ocfg.meta.IsDefined("report", "reachable_only") {
		cfg.cfg.Report.Reachable = ocfg.cfg.Report.Reachable
	}
	if ocfg.meta.IsDefined("build", "naive") {
		cfg.cfg.Build.Naive = ocfg.cfg.Build.Naive
	}
	if ocfg.meta.IsDefined("build", "debug_refs") {
		cfg.cfg.Build.DebugRefs = ocfg.cfg.Build.DebugRefs
	}
	return cfg
}

func decode(r io.Reader, name string) (config, error) {
	var cfg Config
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return config{}, errors.Wrapf(err, "cannot parse %s", name)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, errors.Errorf("%s: unknown key %s", name, undecoded[0])
	}
	return config{cfg, meta}, nil
}

// parseConfigs returns the configurations from the root towards dir,
// starting with the defaults.
func parseConfigs(dir string) ([]config, error) {
	var out []config
	for dir != "" {
		name := filepath.Join(dir, Name)
		f, err := os.Open(name)
		if err == nil {
			cfg, err := decode(f, name)
			f.Close()
			if err != nil {
				return nil, err
			}
			out = append(out, cfg)
		} else if !os.IsNotExist(err) {
			return nil, err
		}
		ndir := filepath.Dir(dir)
		if ndir == dir {
			break
		}
		dir = ndir
	}
	out = append(out, config{cfg: Default})
	for i := 0; i < len(out)/2; i++ {
		out[i], out[len(out)-1-i] = out[len(out)-1-i], out[i]
	}
	return out, nil
}

// Load returns the configuration for dir.
func Load(dir string) (Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, err
	}
	confs, err := parseConfigs(dir)
	if err != nil {
		return Config{}, err
	}
	conf := confs[0]
	for _, oconf := range confs[1:] {
		conf = conf.Merge(oconf)
	}
	return conf.cfg, conf.cfg.Validate()
}

// LoadFile returns the defaults overridden by the file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse returns the defaults overridden by the configuration read from r.
func Parse(r io.Reader, name string) (Config, error) {
	ocfg, err := decode(r, name)
	if err != nil {
		return Config{}, err
	}
	conf := config{cfg: Default}.Merge(ocfg).cfg
	return conf, conf.Validate()
}
