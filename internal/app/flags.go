package app

import (
	"flag"
	"fmt"
	"runtime"

	"lifeline/internal/export"
)

// Config represents the command-line parameters shared by the tools.
type Config struct {
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	In      string
	Out     string
	Frames  int
	Delay   int
	Workers int
	Quiet   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	opts := export.DefaultOptions()
	return &Config{
		Scale:   opts.Scale,
		TPS:     10,
		Seed:    42,
		Width:   64,
		Height:  64,
		Out:     "life.gif",
		Frames:  60,
		Delay:   opts.Delay,
		Workers: runtime.NumCPU(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.IntVar(&c.Width, "w", c.Width, "width of a random board")
	fs.IntVar(&c.Height, "h", c.Height, "height of a random board")
	fs.StringVar(&c.In, "in", c.In, "board file to load instead of a random board")
	fs.StringVar(&c.Out, "out", c.Out, "output GIF path, or directory when exporting several boards")
	fs.IntVar(&c.Frames, "frames", c.Frames, "generations to record")
	fs.IntVar(&c.Delay, "delay", c.Delay, "frame delay in 1/100 s")
	fs.IntVar(&c.Workers, "workers", c.Workers, "concurrent exports and row workers per board")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress progress logging")
}

// ExportOptions derives GIF encoding options from the config.
func (c *Config) ExportOptions() export.Options {
	opts := export.DefaultOptions()
	opts.Scale = c.Scale
	opts.Delay = c.Delay
	return opts
}

// Source names where the starting board comes from.
func (c *Config) Source() string {
	if c.In != "" {
		return c.In
	}
	return fmt.Sprintf("random %dx%d seed %d", c.Width, c.Height, c.Seed)
}
