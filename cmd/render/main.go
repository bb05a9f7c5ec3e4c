package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"softrender/internal/batch"
	"softrender/internal/config"
	"softrender/internal/scene"
	"softrender/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Path to scene JSON (default: built-in demo scene)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Output size in pixels (default: 512)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 1)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		ScenePath: *scenePath,
		OutputDir: *outputDir,
		Size:      *size,
		Quality:   *quality,
		Frames:    *frames,
		Workers:   *workers,
	})

	// Load scene
	var sc scene.Scene
	if cfg.ScenePath != "" {
		var err error
		sc, err = scene.Load(cfg.ScenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	} else {
		sc = scene.Default()
	}

	fmt.Printf("Rendering %d frame(s) of %d object(s) at %dx%d (x%d supersample, %d workers)\n",
		cfg.Frames, len(sc.Objects), cfg.RenderSize, cfg.RenderSize, cfg.Supersample, cfg.Workers)

	start := time.Now()
	results := batch.Run(batch.Config{
		Scene:        sc,
		OutputDir:    cfg.OutputDir,
		TexResolver:  texture.NewCache(cfg.TextureDir),
		RenderSize:   cfg.RenderSize,
		Supersample:  cfg.Supersample,
		WebPQuality:  cfg.WebPQuality,
		Frames:       cfg.Frames,
		TurntableDeg: cfg.TurntableDeg,
		Workers:      cfg.Workers,
	})

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
			continue
		}
		fmt.Fprintf(os.Stderr, "frame %d: %s\n", r.Frame, r.Error)
	}

	fmt.Printf("Done: %d/%d frames in %.1fs -> %s\n",
		ok, len(results), time.Since(start).Seconds(), cfg.OutputDir)
	if ok < len(results) {
		os.Exit(1)
	}
}
