package core

import "sort"

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Pass is a post-processing step that rewrites an elevation grid in place.
type Pass interface {
	Name() string
	Apply(g *HeightGrid)
}

// Factory constructs a Pass using an optional configuration map.
type Factory func(cfg map[string]string) Pass

var passes = map[string]Factory{}

// Register adds a pass factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	passes[name] = f
}

// Passes exposes the registry of available pass factories.
func Passes() map[string]Factory {
	return passes
}

// PassNames returns the registered pass names in sorted order.
func PassNames() []string {
	names := make([]string, 0, len(passes))
	for name := range passes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
