package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Driver names accepted in Config.Driver
const (
	DriverTerminal = "terminal"
	DriverTcell    = "tcell"
	DriverEbiten   = "ebiten"
)

// Config holds the configuration for the simulation
type Config struct {
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	InjectionCount      int           `json:"injection_count"`

	// Workers of 0 means one per CPU
	Workers           int  `json:"workers"`
	ParallelThreshold int  `json:"parallel_threshold"`
	UseCellPool       bool `json:"use_cell_pool"`

	// Pattern is a preset name or "random"; PatternFile takes precedence
	Pattern     string `json:"pattern"`
	PatternFile string `json:"pattern_file"`
	Seed        int64  `json:"seed"`
	RandomCount int    `json:"random_count"`
	RandomMinX  int64  `json:"random_min_x"`
	RandomMinY  int64  `json:"random_min_y"`
	RandomMaxX  int64  `json:"random_max_x"`
	RandomMaxY  int64  `json:"random_max_y"`

	Driver string `json:"driver"`

	// Board size in cells for the terminal driver
	TermWidth  int `json:"term_width"`
	TermHeight int `json:"term_height"`

	// Pixels per cell and window size for the ebiten driver
	Scale      int `json:"scale"`
	ViewWidth  int `json:"view_width"`
	ViewHeight int `json:"view_height"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:           34 * time.Millisecond,
		MaxGenerations:      0,
		AutoRestart:         false,
		StagnationThreshold: 5,
		InjectionCount:      3,
		Workers:             0,
		ParallelThreshold:   4096,
		UseCellPool:         true,
		Pattern:             "random",
		Seed:                42,
		RandomCount:         6502,
		RandomMinX:          -80,
		RandomMinY:          -50,
		RandomMaxX:          80,
		RandomMaxY:          50,
		Driver:              DriverTerminal,
		TermWidth:           60,
		TermHeight:          30,
		Scale:               3,
		ViewWidth:           1000,
		ViewHeight:          564,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override
// whatever was loaded from file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.DurationVar(&c.FrameRate, "frame", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 = run forever)")
	fs.BoolVar(&c.AutoRestart, "restart", c.AutoRestart, "reseed on extinction or stagnation")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "stagnant generations before a restart")
	fs.IntVar(&c.InjectionCount, "inject", c.InjectionCount, "random cells added while stagnant (with -restart)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation (0 = one per CPU)")
	fs.IntVar(&c.ParallelThreshold, "parallel-threshold", c.ParallelThreshold, "candidate count from which work is split across workers")
	fs.BoolVar(&c.UseCellPool, "pool", c.UseCellPool, "recycle candidate buffers between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "preset pattern name or \"random\"")
	fs.StringVar(&c.PatternFile, "file", c.PatternFile, "Life 1.06 file to load instead of a preset")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.IntVar(&c.RandomCount, "count", c.RandomCount, "cells sampled by the random pattern")
	fs.StringVar(&c.Driver, "driver", c.Driver, "display driver: terminal, tcell or ebiten")
	fs.IntVar(&c.TermWidth, "cols", c.TermWidth, "board width in cells (terminal driver)")
	fs.IntVar(&c.TermHeight, "rows", c.TermHeight, "board height in cells (terminal driver)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (ebiten driver)")
}

// Validate reports settings that cannot run
func (c Config) Validate() error {
	switch c.Driver {
	case DriverTerminal, DriverTcell, DriverEbiten:
	default:
		return errors.Errorf("[Validate] unknown driver: %q", c.Driver)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] negative frame rate: %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] negative max generations: %d", c.MaxGenerations)
	}
	if c.InjectionCount < 0 {
		return errors.Errorf("[Validate] negative injection count: %d", c.InjectionCount)
	}
	if c.Workers < 0 {
		return errors.Errorf("[Validate] negative workers: %d", c.Workers)
	}
	if c.TermWidth < 1 || c.TermHeight < 1 {
		return errors.Errorf("[Validate] terminal board must be at least 1x1: %dx%d", c.TermWidth, c.TermHeight)
	}
	if c.Scale < 1 {
		return errors.Errorf("[Validate] scale must be positive: %d", c.Scale)
	}
	if c.RandomMaxX <= c.RandomMinX || c.RandomMaxY <= c.RandomMinY {
		return errors.Errorf("[Validate] empty random region: [%d,%d)x[%d,%d)",
			c.RandomMinX, c.RandomMaxX, c.RandomMinY, c.RandomMaxY)
	}
	return nil
}
