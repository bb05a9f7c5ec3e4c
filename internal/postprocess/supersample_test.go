package postprocess

import (
	"image"
	"testing"
)

func TestDownsampleHalves(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 200
		src.Pix[i+1] = 100
		src.Pix[i+2] = 50
		src.Pix[i+3] = 255
	}

	dst := Downsample(src, 32, 32)
	if dst.Bounds().Dx() != 32 || dst.Bounds().Dy() != 32 {
		t.Fatalf("bounds: %v", dst.Bounds())
	}
	// A uniform opaque image stays (approximately) the same color.
	c := dst.NRGBAAt(16, 16)
	if d := int(c.R) - 200; d < -2 || d > 2 {
		t.Fatalf("color drifted: %v", c)
	}
	if c.A != 255 {
		t.Fatalf("alpha: %d", c.A)
	}
}

func TestDownsampleNoopWhenSmall(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	if got := Downsample(src, 32, 32); got != src {
		t.Fatal("small image should pass through")
	}
}

func TestDownsampleTransparentStaysTransparent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	dst := Downsample(src, 16, 16)
	if a := dst.NRGBAAt(8, 8).A; a != 0 {
		t.Fatalf("alpha: %d", a)
	}
}
