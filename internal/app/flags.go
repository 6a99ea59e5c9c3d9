package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"island-gen/internal/core"
	"island-gen/internal/island"
)

// Config represents the command-line parameters shared by the generator
// binaries.
type Config struct {
	Resolution int
	Scale      int
	TPS        int
	HUDWidth   int

	Island island.Config

	Post    string
	Out     string
	Timeout time.Duration
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Resolution: 513,
		Scale:      1,
		TPS:        60,
		HUDWidth:   240,
		Island:     island.DefaultConfig(),
		Out:        "island",
		Timeout:    2 * time.Minute,
	}
}

// Bind attaches the configuration to the provided FlagSet. Passing -seed turns
// random seeding off.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Resolution, "res", c.Resolution, "heightmap resolution in samples per side")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")

	fs.IntVar(&c.Island.SmoothTimes, "smooth", c.Island.SmoothTimes, "cellular automaton smoothing passes")
	fs.IntVar(&c.Island.NeighboringWalls, "walls", c.Island.NeighboringWalls, "neighbour threshold for the automaton")
	fs.IntVar(&c.Island.RandomFillPercent, "fill", c.Island.RandomFillPercent, "initial land fill percentage")
	fs.IntVar(&c.Island.MaxRadius, "max-radius", c.Island.MaxRadius, "shore falloff radius at 512px")
	fs.Float64Var(&c.Island.NoiseHeight, "noise-height", c.Island.NoiseHeight, "amplitude of the noise layer")
	fs.Float64Var(&c.Island.NoiseScale, "noise-scale", c.Island.NoiseScale, "frequency of the noise layer")
	fs.StringVar(&c.Island.NoiseBasis, "noise-basis", c.Island.NoiseBasis, "noise basis: perlin or simplex")
	fs.IntVar(&c.Island.BlendPasses, "blend", c.Island.BlendPasses, "number of blend passes")
	fs.Func("seed", "seed string (disables random seeding)", func(s string) error {
		c.Island.Seed = s
		c.Island.UseRandomSeed = s == ""
		return nil
	})
	fs.BoolVar(&c.Island.UseRandomSeed, "random-seed", c.Island.UseRandomSeed, "derive the seed from the clock")

	fs.StringVar(&c.Post, "post", c.Post, "comma-separated post passes ("+strings.Join(core.PassNames(), ", ")+")")
	fs.StringVar(&c.Out, "out", c.Out, "output path prefix for .raw and .png files")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "abort shore generation after this long")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// Validate checks the island settings and the outer surface parameters.
func (c *Config) Validate() error {
	if c.Resolution <= 0 {
		return fmt.Errorf("resolution %d must be positive: %w", c.Resolution, island.ErrInvalidConfig)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive: %w", c.Scale, island.ErrInvalidConfig)
	}
	return c.Island.Validate()
}

// PostPasses resolves the -post list against the pass registry, in order.
func (c *Config) PostPasses() ([]core.Pass, error) {
	if strings.TrimSpace(c.Post) == "" {
		return nil, nil
	}
	settings := c.Island.ToMap()
	var passes []core.Pass
	for _, name := range strings.Split(c.Post, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		factory, ok := core.Passes()[name]
		if !ok {
			return nil, fmt.Errorf("unknown post pass %q (have %s)", name, strings.Join(core.PassNames(), ", "))
		}
		passes = append(passes, factory(settings))
	}
	return passes, nil
}
