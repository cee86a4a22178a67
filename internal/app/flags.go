package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"ambient-weather/internal/core"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Weather    string
	Width      int
	Height     int
	FPS        int
	Seed       int64
	Feed       string
	Cycle      string
	CycleEvery time.Duration
	CellW      int
	CellH      int
	Debug      bool
	LogFile    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Weather:    "clear",
		Width:      960,
		Height:     540,
		FPS:        60,
		CycleEvery: 5 * time.Minute,
		CellW:      8,
		CellH:      16,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Weather, "weather", c.Weather, "initial weather category (snow, rain, anything else is ambient)")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second (0 follows the display in the window build)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.Feed, "feed", c.Feed, "file of weather categories or condition codes, one per line (- for stdin)")
	fs.StringVar(&c.Cycle, "cycle", c.Cycle, "comma-separated categories to rotate through")
	fs.DurationVar(&c.CycleEvery, "cycle-every", c.CycleEvery, "interval between -cycle categories")
	fs.IntVar(&c.CellW, "cell-w", c.CellW, "surface pixels per terminal column")
	fs.IntVar(&c.CellH, "cell-h", c.CellH, "surface pixels per terminal row")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file path (default stderr)")
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive (got %dx%d)", c.Width, c.Height)
	}
	if c.FPS < 0 || c.FPS > 240 {
		return fmt.Errorf("fps out of range 0-240 (got %d)", c.FPS)
	}
	if c.CellW <= 0 || c.CellH <= 0 {
		return fmt.Errorf("cell size must be positive (got %dx%d)", c.CellW, c.CellH)
	}
	if len(c.CycleList()) > 0 && c.CycleEvery <= 0 {
		return errors.New("cycle-every must be positive when -cycle is set")
	}
	return nil
}

// CycleList splits -cycle into trimmed, non-empty categories.
func (c *Config) CycleList() []string {
	var out []string
	for _, part := range strings.Split(c.Cycle, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Source returns the random source for the engine.
func (c *Config) Source() *core.RNG {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.NewRNG(seed)
}
