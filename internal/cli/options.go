// Package cli implements the gridpath command: read a digit grid, optionally
// tile it, run one search strategy between two cells and report the result.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for command-line validation.
var (
	ErrBadPosition = errors.New("cli: position must be formatted as x,y")
	ErrBadConfig   = errors.New("cli: invalid config file")
)

// Config is the YAML form of the command options. Unset fields keep the
// flag defaults; flags given on the command line win over the file.
type Config struct {
	Strategy  string `yaml:"strategy"`
	Heuristic string `yaml:"heuristic"`
	Threshold *int64 `yaml:"threshold"`
	Tile      int    `yaml:"tile"`
	MaxCost   int64  `yaml:"maxCost"`
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Verbose   bool   `yaml:"verbose"`
	PrintPath bool   `yaml:"printPath"`
}

// LoadConfig decodes a YAML config file. Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	cfg := &Config{}
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return cfg, nil
}

// Options holds everything the command needs to run.
type Options struct {
	ConfigFile string
	Strategy   string
	Heuristic  string
	Threshold  int64
	Tile       int
	MaxCost    int64
	From       string
	To         string
	Verbose    bool
	PrintPath  bool
	Input      string

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	hasThreshold bool
	strategy     search.Strategy
	heuristic    search.Heuristic
	from, to     *grid.Pos
	logger       *logrus.Logger
}

// NewOptions returns Options with the command defaults.
func NewOptions(in io.Reader, out, errOut io.Writer) *Options {
	return &Options{
		Strategy:  search.StrategyAStar.String(),
		Heuristic: "manhattan",
		Tile:      1,
		MaxCost:   9,
		Input:     "-",
		In:        in,
		Out:       out,
		ErrOut:    errOut,
	}
}

// AddFlags binds the options to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFile, "config", "c", o.ConfigFile, "YAML file with default option values")
	fs.StringVarP(&o.Strategy, "strategy", "s", o.Strategy, "search strategy: bfs, dijkstra, greedy or astar")
	fs.StringVar(&o.Heuristic, "heuristic", o.Heuristic, "heuristic for greedy and astar: manhattan, skewed or zero")
	fs.Int64VarP(&o.Threshold, "threshold", "t", o.Threshold, "only step onto cells whose cost is at most this value")
	fs.IntVar(&o.Tile, "tile", o.Tile, "repeat the grid this many times in each direction")
	fs.Int64Var(&o.MaxCost, "max-cost", o.MaxCost, "costs above this wrap around to 1 when tiling")
	fs.StringVar(&o.From, "from", o.From, "start cell as x,y (default: top-left)")
	fs.StringVar(&o.To, "to", o.To, "goal cell as x,y (default: bottom-right)")
	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "log every expansion")
	fs.BoolVar(&o.PrintPath, "print-path", o.PrintPath, "print every position of the path")
}

// Complete merges the config file under the flags, resolves names and
// builds the logger.
func (o *Options) Complete(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		o.Input = args[0]
	}

	fs := cmd.Flags()
	if o.ConfigFile != "" {
		f, err := os.Open(o.ConfigFile)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadConfig, err)
		}
		cfg, err := LoadConfig(f)
		f.Close()
		if err != nil {
			return err
		}
		o.applyConfig(cfg, fs)
	}
	if fs.Changed("threshold") {
		o.hasThreshold = true
	}

	var err error
	if o.strategy, err = search.ParseStrategy(o.Strategy); err != nil {
		return err
	}
	if o.heuristic, err = search.ParseHeuristic(o.Heuristic); err != nil {
		return err
	}
	if o.from, err = parseOptionalPos(o.From); err != nil {
		return err
	}
	if o.to, err = parseOptionalPos(o.To); err != nil {
		return err
	}

	o.logger = logrus.New()
	o.logger.SetOutput(o.ErrOut)
	o.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if o.Verbose {
		o.logger.SetLevel(logrus.DebugLevel)
	}

	return nil
}

// applyConfig copies every set config value whose flag was not given.
func (o *Options) applyConfig(cfg *Config, fs *pflag.FlagSet) {
	set := func(flag string, apply func()) {
		if !fs.Changed(flag) {
			apply()
		}
	}
	if cfg.Strategy != "" {
		set("strategy", func() { o.Strategy = cfg.Strategy })
	}
	if cfg.Heuristic != "" {
		set("heuristic", func() { o.Heuristic = cfg.Heuristic })
	}
	if cfg.Threshold != nil {
		set("threshold", func() { o.Threshold, o.hasThreshold = *cfg.Threshold, true })
	}
	if cfg.Tile != 0 {
		set("tile", func() { o.Tile = cfg.Tile })
	}
	if cfg.MaxCost != 0 {
		set("max-cost", func() { o.MaxCost = cfg.MaxCost })
	}
	if cfg.From != "" {
		set("from", func() { o.From = cfg.From })
	}
	if cfg.To != "" {
		set("to", func() { o.To = cfg.To })
	}
	if cfg.Verbose {
		set("verbose", func() { o.Verbose = true })
	}
	if cfg.PrintPath {
		set("print-path", func() { o.PrintPath = true })
	}
}

// Validate rejects option combinations Complete cannot catch.
func (o *Options) Validate() error {
	if o.Tile < 1 || o.MaxCost < 1 {
		return fmt.Errorf("%w: --tile=%d --max-cost=%d", grid.ErrBadFactor, o.Tile, o.MaxCost)
	}
	return nil
}

// parseOptionalPos parses "x,y"; an empty string yields nil.
func parseOptionalPos(s string) (*grid.Pos, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadPosition, s)
	}
	x, errX := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
	y, errY := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
	if errX != nil || errY != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadPosition, s)
	}
	p := grid.P(x, y)
	return &p, nil
}
