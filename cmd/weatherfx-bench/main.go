package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"ambient-weather/internal/clock"
	"ambient-weather/internal/core"
	"ambient-weather/internal/log"
	"ambient-weather/internal/render"
	"ambient-weather/internal/surface"
	"ambient-weather/internal/weather"

	"gonum.org/v1/gonum/stat"
)

type scenario struct {
	category string
	width    int
	height   int
	seed     int64
}

type scenarioResult struct {
	scenario
	kind       weather.Kind
	particles  int
	frames     int
	violations int
	mean       time.Duration
	stddev     time.Duration
	p99        time.Duration
	snapshot   string
	err        error
}

func main() {
	frames := flag.Int("frames", 3600, "frames to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 1280, "surface width in pixels")
	height := flag.Int("height", 720, "surface height in pixels")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("png", "", "directory to write a snapshot of each scenario's last frame")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := log.Init(*debug, ""); err != nil {
		panic(err)
	}
	defer log.Sync()

	var sets []scenario
	for _, category := range []string{"snow", "rain", "clear"} {
		sets = append(sets, scenario{category: category, width: *width, height: *height, seed: *seed})
	}
	// Degenerate surface: update math runs, draws are no-ops.
	sets = append(sets, scenario{category: "snow", width: 0, height: 0, seed: *seed})

	fmt.Printf("Running %d scenarios (%d workers, %d frames)\n", len(sets), *workers, *frames)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *frames, *out)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	failed := false
	for res := range results {
		all = append(all, res)
		if res.violations > 0 || res.err != nil {
			failed = true
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].category != all[j].category {
			return all[i].category < all[j].category
		}
		return all[i].width > all[j].width
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%-6s kind=%-7s %4dx%-4d particles=%3d frames=%d mean=%s stddev=%s p99=%s violations=%d",
			res.category, res.kind, res.width, res.height, res.particles, res.frames, res.mean, res.stddev, res.p99, res.violations)
		if res.snapshot != "" {
			fmt.Printf(" png=%s", res.snapshot)
		}
		if res.err != nil {
			fmt.Printf(" err=%v", res.err)
		}
		fmt.Println()
	}

	if failed {
		log.Errorw("bench found failures")
		os.Exit(1)
	}
}

func runScenario(sc scenario, frames int, outDir string) scenarioResult {
	res := scenarioResult{scenario: sc}

	canvas := render.NewRaster()
	mgr := surface.NewManager(surface.HostFunc(func() (int, int) { return sc.width, sc.height }), canvas, log.GetZapLogger())
	clk := clock.NewManual()
	engine := weather.New(mgr, clk, core.NewRNG(sc.seed), log.GetZapLogger())
	engine.SetWeatherCategory(sc.category)
	engine.Start()

	res.kind = engine.Kind()
	res.particles = engine.Len()

	w, h := float64(sc.width), float64(sc.height)
	samples := make([]float64, 0, frames)
	for i := 0; i < frames; i++ {
		t0 := time.Now()
		if !clk.Advance() {
			res.err = fmt.Errorf("frame loop stopped after %d frames", i)
			break
		}
		samples = append(samples, float64(time.Since(t0)))
		for _, p := range engine.Particles() {
			if p.Pos.X < 0 || p.Pos.X > w || p.Pos.Y < weather.TopBand || p.Pos.Y > h {
				res.violations++
			}
		}
	}
	engine.Stop()
	res.frames = len(samples)

	if len(samples) > 0 {
		mean, std := stat.MeanStdDev(samples, nil)
		sort.Float64s(samples)
		res.mean = time.Duration(mean).Round(time.Microsecond / 10)
		res.stddev = time.Duration(std).Round(time.Microsecond / 10)
		res.p99 = time.Duration(stat.Quantile(0.99, stat.Empirical, samples, nil)).Round(time.Microsecond / 10)
	}

	if outDir != "" && sc.width > 0 && sc.height > 0 {
		path := filepath.Join(outDir, fmt.Sprintf("%s-%dx%d.png", sc.category, sc.width, sc.height))
		if err := writePNG(path, canvas); err != nil {
			res.err = err
		} else {
			res.snapshot = path
		}
	}
	return res
}

func writePNG(path string, canvas *render.Raster) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, canvas.Image()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
