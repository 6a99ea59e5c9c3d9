package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"island-gen/internal/island"
	"island-gen/internal/terrain"
)

type seedResult struct {
	seed       string
	landRatio  float64
	shoreCells int
	meanHeight float64
	err        error
}

func (r seedResult) String() string {
	return fmt.Sprintf("seed=%s land=%.3f shore=%d mean=%.4f", r.seed, r.landRatio, r.shoreCells, r.meanHeight)
}

func main() {
	count := flag.Int("seeds", 64, "number of seeds to try")
	prefix := flag.String("prefix", "island-", "seed prefix; the index is appended")
	res := flag.Int("res", 257, "heightmap resolution")
	shores := flag.Bool("shores", false, "also run the shore falloff for each seed")
	target := flag.Float64("target", 0.35, "preferred land ratio")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	cfg := island.DefaultConfig()
	cfg.UseRandomSeed = false
	seeds := make([]string, *count)
	for i := range seeds {
		seeds[i] = *prefix + strconv.Itoa(i)
	}

	fmt.Printf("Sweeping %d seeds (%d workers, res %d, shores %v)\n", len(seeds), *workers, *res, *shores)
	start := time.Now()
	all := sweep(cfg, seeds, *res, *shores, *workers)

	var failed int
	ok := all[:0]
	for _, r := range all {
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "seed %s: %v\n", r.seed, r.err)
			continue
		}
		ok = append(ok, r)
	}
	rank(ok, *target)

	fmt.Printf("\nTop %d results closest to land ratio %.2f (elapsed %s):\n", *top, *target, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(ok) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, ok[i])
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// sweep evaluates every seed on a pool of workers. Results come back in
// completion order.
func sweep(cfg island.Config, seeds []string, res int, shores bool, workers int) []seedResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan string)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- evaluate(cfg, seed, res, shores)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range seeds {
			jobs <- s
		}
		close(jobs)
	}()

	var all []seedResult
	for r := range results {
		all = append(all, r)
	}
	return all
}

func evaluate(cfg island.Config, seed string, res int, shores bool) seedResult {
	cfg.Seed = seed
	out := seedResult{seed: seed}

	surface := terrain.NewMemorySurface(res)
	gen, err := island.NewGenerator(cfg, surface)
	if err != nil {
		out.err = err
		return out
	}
	isl, err := gen.Generate()
	if err != nil {
		out.err = err
		return out
	}
	cells := float64(isl.Mask.W * isl.Mask.H)
	out.landRatio = float64(isl.Mask.Count(island.Land)) / cells
	out.shoreCells = isl.Mask.Count(island.Shore)

	if shores {
		job, err := gen.StartShores(context.Background(), isl)
		if err != nil {
			out.err = err
			return out
		}
		job.Wait()
		if err := gen.Commit(isl); err != nil {
			out.err = err
			return out
		}
	}

	var sum float64
	heights := surface.Snapshot()
	for _, v := range heights.Cells() {
		sum += float64(v)
	}
	out.meanHeight = sum / float64(len(heights.Cells()))
	return out
}

// rank orders results by distance from the target land ratio, then by seed.
func rank(results []seedResult, target float64) {
	sort.Slice(results, func(i, j int) bool {
		di := abs(results[i].landRatio - target)
		dj := abs(results[j].landRatio - target)
		if di != dj {
			return di < dj
		}
		return results[i].seed < results[j].seed
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
