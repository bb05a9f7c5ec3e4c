package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckerboard(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{A: 255}
	img := Checkerboard(8, 4, white, black)

	if got := img.NRGBAAt(0, 0); got != white {
		t.Fatalf("(0,0) = %v", got)
	}
	if got := img.NRGBAAt(4, 0); got != black {
		t.Fatalf("(4,0) = %v", got)
	}
	if got := img.NRGBAAt(4, 4); got != white {
		t.Fatalf("(4,4) = %v", got)
	}
}

func TestLoadJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.jpg")

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, src, nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("bounds: %v", img.Bounds())
	}
	// JPEG has no alpha; conversion must force it opaque.
	if a := img.NRGBAAt(1, 1).A; a != 255 {
		t.Fatalf("alpha: %d", a)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/tex.tga"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.jpg")
	f, _ := os.Create(path)
	jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2)), nil)
	f.Close()

	c := NewCache(dir)
	img := c.Resolve("tex.jpg")
	if img == nil {
		t.Fatal("resolve failed")
	}
	// Second resolve hits the cache and returns the same image.
	if c.Resolve("tex.jpg") != img {
		t.Fatal("cache miss on second resolve")
	}
	// Missing textures resolve to nil without error.
	if c.Resolve("missing.tga") != nil {
		t.Fatal("missing texture not nil")
	}
}
