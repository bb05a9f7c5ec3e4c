package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"scene": "demo.json", "render_size": 256, "frames": 8}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{})

	if cfg.ScenePath != "demo.json" || cfg.RenderSize != 256 || cfg.Frames != 8 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.Supersample != 2 || cfg.WebPQuality != 90 || cfg.TurntableDeg != 360 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Workers <= 0 {
		t.Fatalf("workers default: %d", cfg.Workers)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg := Config{ScenePath: "a.json", RenderSize: 128, Frames: 2}
	cfg.Resolve(Flags{ScenePath: "b.json", Size: 64, Frames: 16, Workers: 3})

	if cfg.ScenePath != "b.json" {
		t.Fatalf("scene: %s", cfg.ScenePath)
	}
	if cfg.RenderSize != 64 || cfg.Frames != 16 || cfg.Workers != 3 {
		t.Fatalf("flag overrides lost: %+v", cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/config.json"); err == nil {
		t.Fatal("expected error")
	}
}
