package main

import (
	"testing"

	"island-gen/internal/island"
)

func TestSweepEvaluatesEverySeed(t *testing.T) {
	cfg := island.DefaultConfig()
	cfg.UseRandomSeed = false
	seeds := []string{"a", "b", "c", "d", "e"}

	results := sweep(cfg, seeds, 64, false, 3)
	if len(results) != len(seeds) {
		t.Fatalf("got %d results, want %d", len(results), len(seeds))
	}
	seen := map[string]bool{}
	for _, r := range results {
		if r.err != nil {
			t.Fatalf("seed %s: %v", r.seed, r.err)
		}
		if r.landRatio < 0 || r.landRatio > 1 {
			t.Fatalf("seed %s: land ratio %v", r.seed, r.landRatio)
		}
		seen[r.seed] = true
	}
	if len(seen) != len(seeds) {
		t.Fatalf("duplicate or missing seeds: %v", seen)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	cfg := island.DefaultConfig()
	cfg.UseRandomSeed = false
	a := evaluate(cfg, "reef", 128, true)
	b := evaluate(cfg, "reef", 128, true)
	if a != b {
		t.Fatalf("results differ: %v vs %v", a, b)
	}
	if a.meanHeight <= 0 || a.meanHeight > float64(island.LandHeight) {
		t.Fatalf("mean height %v outside (0, %v]", a.meanHeight, island.LandHeight)
	}
}

func TestRankPrefersTargetRatio(t *testing.T) {
	results := []seedResult{
		{seed: "far", landRatio: 0.9},
		{seed: "near", landRatio: 0.33},
		{seed: "mid", landRatio: 0.5},
		{seed: "also-near", landRatio: 0.36},
	}
	rank(results, 0.35)
	want := []string{"also-near", "near", "mid", "far"}
	for i, w := range want {
		if results[i].seed != w {
			t.Fatalf("rank %d=%s, want %s", i, results[i].seed, w)
		}
	}
}
