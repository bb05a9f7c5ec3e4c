package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"softrender/internal/postprocess"
	"softrender/internal/raster"
	"softrender/internal/scene"
	"softrender/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a turntable run.
type Config struct {
	Scene        scene.Scene
	OutputDir    string
	TexResolver  texture.Resolver
	RenderSize   int
	Supersample  int
	WebPQuality  int
	Frames       int
	TurntableDeg float64
	Workers      int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders all frames using a worker pool. Frame i orbits the
// camera by i/Frames of TurntableDeg about the world Y axis. Every
// frame is an independent pure render, so workers share nothing but
// the read-only scene and the texture cache.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, frame int) Result {
	yaw := 0.0
	if cfg.Frames > 1 {
		yaw = cfg.TurntableDeg * float64(frame) / float64(cfg.Frames)
	}

	img := raster.RenderScene(cfg.Scene, cfg.TexResolver, cfg.RenderSize, cfg.Supersample, yaw)

	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.webp", frame))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: frame, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: frame, Path: outPath, Success: true}
}
