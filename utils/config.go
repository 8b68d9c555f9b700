package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Extent           int           `json:"extent"`
	MaxSteps         int           `json:"max_steps"`
	FrameRate        time.Duration `json:"frame_rate"`
	PauseEachStep    bool          `json:"pause_each_step"`
	ClearScreen      bool          `json:"clear_screen"`
	UseIndexedWindow bool          `json:"use_indexed_window"`
	UseMemoryPool    bool          `json:"use_memory_pool"`
	InputFile        string        `json:"input_file"`
	Pattern          string        `json:"pattern"`
	RandomDensity    float64       `json:"random_density"`
	Seed             int64         `json:"seed"`
	Survey           bool          `json:"survey"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Extent:        20,
		MaxSteps:      200,
		FrameRate:     150 * time.Millisecond,
		PauseEachStep: true,
		UseMemoryPool: true,
		Seed:          42,
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

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet, using the current
// values as defaults
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Extent, "extent", c.Extent, "width and height of the displayed grid")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "maximum number of generations, 0 for no limit")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations when not pausing")
	fs.BoolVar(&c.PauseEachStep, "pause", c.PauseEachStep, "wait for Enter after every generation")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the terminal between generations")
	fs.BoolVar(&c.UseIndexedWindow, "indexed", c.UseIndexedWindow, "classify neighborhoods with set lookups instead of a scan")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle retired generations")
	fs.StringVar(&c.InputFile, "file", c.InputFile, "read starting coordinates from file")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a built-in pattern")
	fs.Float64Var(&c.RandomDensity, "random", c.RandomDensity, "start from random cells at this density")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random starts")
	fs.BoolVar(&c.Survey, "survey", c.Survey, "run every built-in pattern and report how it ends")
}

// Validate checks the configuration for values the simulation cannot use
func (c Config) Validate() error {
	if c.Extent < 1 {
		return errors.Errorf("[Validate] extent must be at least 1, got %d", c.Extent)
	}
	if c.MaxSteps < 0 {
		return errors.Errorf("[Validate] max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	return nil
}

// Bound returns half the extent, the largest coordinate magnitude accepted as input
func (c Config) Bound() int {
	return c.Extent / 2
}
