package island

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid island config")

const (
	// NoiseBasisPerlin selects classic Perlin noise for the noise layer.
	NoiseBasisPerlin = "perlin"
	// NoiseBasisSimplex selects OpenSimplex noise for the noise layer.
	NoiseBasisSimplex = "simplex"
)

// Config holds the settings for one generation run.
type Config struct {
	// Cellular automaton shaping.
	SmoothTimes       int
	NeighboringWalls  int
	RandomFillPercent int

	// MaxRadius is the shore falloff radius at the 512px reference resolution.
	MaxRadius int

	NoiseHeight float64
	NoiseScale  float64
	NoiseBasis  string

	BlendPasses int

	Seed          string
	UseRandomSeed bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		SmoothTimes:       5,
		NeighboringWalls:  4,
		RandomFillPercent: 50,
		MaxRadius:         50,
		NoiseHeight:       0.02,
		NoiseScale:        20,
		NoiseBasis:        NoiseBasisPerlin,
		BlendPasses:       1,
		UseRandomSeed:     true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["smooth_times"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SmoothTimes = parsed
		}
	}
	if v, ok := cfg["neighboring_walls"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 8 {
			c.NeighboringWalls = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.RandomFillPercent = parsed
		}
	}
	if v, ok := cfg["max_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxRadius = parsed
		}
	}
	if v, ok := cfg["noise_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.NoiseHeight = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.NoiseScale = parsed
		}
	}
	if v, ok := cfg["noise_basis"]; ok && (v == NoiseBasisPerlin || v == NoiseBasisSimplex) {
		c.NoiseBasis = v
	}
	if v, ok := cfg["blend_passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.BlendPasses = parsed
		}
	}
	// An explicit seed turns random seeding off unless random_seed says otherwise.
	if v, ok := cfg["seed"]; ok && v != "" {
		c.Seed = v
		c.UseRandomSeed = false
	}
	if v, ok := cfg["random_seed"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.UseRandomSeed = parsed
		}
	}
	return c
}

// ToMap renders the config as the key/value pairs FromMap understands.
func (c Config) ToMap() map[string]string {
	m := map[string]string{
		"smooth_times":      strconv.Itoa(c.SmoothTimes),
		"neighboring_walls": strconv.Itoa(c.NeighboringWalls),
		"fill":              strconv.Itoa(c.RandomFillPercent),
		"max_radius":        strconv.Itoa(c.MaxRadius),
		"noise_height":      strconv.FormatFloat(c.NoiseHeight, 'g', -1, 64),
		"noise_scale":       strconv.FormatFloat(c.NoiseScale, 'g', -1, 64),
		"noise_basis":       c.NoiseBasis,
		"blend_passes":      strconv.Itoa(c.BlendPasses),
		"random_seed":       strconv.FormatBool(c.UseRandomSeed),
	}
	if c.Seed != "" {
		m["seed"] = c.Seed
	}
	return m
}

// Validate reports the first setting that would corrupt a run.
func (c Config) Validate() error {
	switch {
	case c.SmoothTimes < 0:
		return fmt.Errorf("smooth times %d is negative: %w", c.SmoothTimes, ErrInvalidConfig)
	case c.NeighboringWalls < 0 || c.NeighboringWalls > 8:
		return fmt.Errorf("neighboring walls %d outside [0,8]: %w", c.NeighboringWalls, ErrInvalidConfig)
	case c.RandomFillPercent < 0 || c.RandomFillPercent > 100:
		return fmt.Errorf("random fill %d%% outside [0,100]: %w", c.RandomFillPercent, ErrInvalidConfig)
	case c.MaxRadius <= 0:
		return fmt.Errorf("max radius %d must be positive: %w", c.MaxRadius, ErrInvalidConfig)
	case !c.UseRandomSeed && c.Seed == "":
		return fmt.Errorf("seed is empty and random seeding is off: %w", ErrInvalidConfig)
	case math.IsNaN(c.NoiseHeight) || math.IsInf(c.NoiseHeight, 0):
		return fmt.Errorf("noise height %v is not finite: %w", c.NoiseHeight, ErrInvalidConfig)
	case math.IsNaN(c.NoiseScale) || math.IsInf(c.NoiseScale, 0):
		return fmt.Errorf("noise scale %v is not finite: %w", c.NoiseScale, ErrInvalidConfig)
	case c.BlendPasses < 1:
		return fmt.Errorf("blend passes %d must be at least 1: %w", c.BlendPasses, ErrInvalidConfig)
	}
	if c.NoiseBasis != "" && c.NoiseBasis != NoiseBasisPerlin && c.NoiseBasis != NoiseBasisSimplex {
		return fmt.Errorf("unknown noise basis %q: %w", c.NoiseBasis, ErrInvalidConfig)
	}
	return nil
}
