package app

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"island-gen/internal/island"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestBindDefaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Resolution != 513 || cfg.Timeout != 2*time.Minute {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Island != island.DefaultConfig() {
		t.Fatalf("island defaults changed: %+v", cfg.Island)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestBindParsesIslandFlags(t *testing.T) {
	cfg := parse(t, "-res", "257", "-smooth", "3", "-fill", "45", "-noise-basis", "simplex", "-seed", "atoll", "-timeout", "5s")
	if cfg.Resolution != 257 || cfg.Timeout != 5*time.Second {
		t.Fatalf("outer flags not parsed: %+v", cfg)
	}
	if cfg.Island.SmoothTimes != 3 || cfg.Island.RandomFillPercent != 45 || cfg.Island.NoiseBasis != island.NoiseBasisSimplex {
		t.Fatalf("island flags not parsed: %+v", cfg.Island)
	}
	if cfg.Island.Seed != "atoll" || cfg.Island.UseRandomSeed {
		t.Fatalf("seed flag should disable random seeding: %+v", cfg.Island)
	}
}

func TestValidateRejectsBadResolution(t *testing.T) {
	cfg := parse(t, "-res", "0")
	if err := cfg.Validate(); !errors.Is(err, island.ErrInvalidConfig) {
		t.Fatalf("Validate()=%v, want ErrInvalidConfig", err)
	}
	cfg = parse(t, "-walls", "11")
	if err := cfg.Validate(); !errors.Is(err, island.ErrInvalidConfig) {
		t.Fatalf("Validate()=%v, want ErrInvalidConfig", err)
	}
}

func TestPostPasses(t *testing.T) {
	cfg := parse(t, "-post", "perlin, blend,floor", "-blend", "4")
	passes, err := cfg.PostPasses()
	if err != nil {
		t.Fatalf("PostPasses: %v", err)
	}
	var names []string
	for _, p := range passes {
		names = append(names, p.Name())
	}
	want := []string{"perlin", "blend", "floor"}
	if len(names) != len(want) {
		t.Fatalf("passes=%v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("passes=%v, want %v", names, want)
		}
	}
	if b, ok := passes[1].(island.Blend); !ok || b.Passes != 4 {
		t.Fatalf("blend pass=%#v, want 4 passes", passes[1])
	}

	cfg = parse(t, "-post", "erode")
	if _, err := cfg.PostPasses(); err == nil {
		t.Fatal("unknown pass should fail")
	}

	cfg = parse(t)
	if passes, err := cfg.PostPasses(); err != nil || passes != nil {
		t.Fatalf("empty post list=%v, %v", passes, err)
	}
}
