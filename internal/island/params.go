package island

import (
	"strconv"

	"island-gen/internal/core"
)

// Parameters returns the config as HUD-ready groups.
func (c *Config) Parameters() core.ParameterSnapshot {
	seed := c.Seed
	if c.UseRandomSeed {
		seed = "(time)"
	}
	groups := []core.ParameterGroup{
		{
			Name: "Shape",
			Params: []core.Parameter{
				intParam("smooth_times", "Smooth passes", c.SmoothTimes),
				intParam("neighboring_walls", "Wall threshold", c.NeighboringWalls),
				intParam("fill", "Random fill %", c.RandomFillPercent),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeString, Value: seed},
				{Key: "random_seed", Label: "Random seed", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.UseRandomSeed)},
			},
		},
		{
			Name: "Shore",
			Params: []core.Parameter{
				intParam("max_radius", "Max radius", c.MaxRadius),
			},
		},
		{
			Name: "Post",
			Params: []core.Parameter{
				floatParam("noise_height", "Noise height", c.NoiseHeight),
				floatParam("noise_scale", "Noise scale", c.NoiseScale),
				{Key: "noise_basis", Label: "Noise basis", Type: core.ParamTypeString, Value: c.NoiseBasis},
				intParam("blend_passes", "Blend passes", c.BlendPasses),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the viewer HUD may adjust.
func (c *Config) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "smooth_times", Label: "Smooth passes", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 20, HasMin: true, HasMax: true},
		{Key: "neighboring_walls", Label: "Wall threshold", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "fill", Label: "Random fill %", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "max_radius", Label: "Max radius", Type: core.ParamTypeInt, Step: 5, Min: 20, Max: 100, HasMin: true, HasMax: true},
		{Key: "noise_height", Label: "Noise height", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.2, HasMin: true, HasMax: true},
		{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 1, Min: 1, Max: 100, HasMin: true, HasMax: true},
		{Key: "blend_passes", Label: "Blend passes", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 50, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting, clamping to the control bounds.
func (c *Config) SetIntParameter(key string, value int) bool {
	ctrl, ok := findControl(c.ParameterControls(), key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = int(clampControl(ctrl, float64(value)))
	switch key {
	case "smooth_times":
		c.SmoothTimes = value
	case "neighboring_walls":
		c.NeighboringWalls = value
	case "fill":
		c.RandomFillPercent = value
	case "max_radius":
		c.MaxRadius = value
	case "blend_passes":
		c.BlendPasses = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point setting, clamping to the control
// bounds.
func (c *Config) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := findControl(c.ParameterControls(), key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = clampControl(ctrl, value)
	switch key {
	case "noise_height":
		c.NoiseHeight = value
	case "noise_scale":
		c.NoiseScale = value
	default:
		return false
	}
	return true
}

func findControl(controls []core.ParameterControl, key string) (core.ParameterControl, bool) {
	for _, ctrl := range controls {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

func clampControl(ctrl core.ParameterControl, v float64) float64 {
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
