package raster

import (
	"image/color"
	"math"
	"testing"

	"softrender/internal/texture"
)

func fullShadeTriangle(fb *FrameBuffer, px, py, pz []float64) {
	RasterizeTriangle(fb, px, py, pz, nil, [3]int{0, 1, 2}, [3]int{0, 0, 0},
		nil, 200, 100, 50, 1.0)
}

func TestRasterizeFillsInterior(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	px := []float64{1, 14, 1}
	py := []float64{1, 1, 14}
	pz := []float64{0, 0, 0}
	fullShadeTriangle(fb, px, py, pz)

	i := (4*16 + 4) * 4
	if fb.Color[i] != 200 || fb.Color[i+1] != 100 || fb.Color[i+2] != 50 {
		t.Fatalf("interior pixel: %v", fb.Color[i:i+4])
	}
	if math.IsInf(fb.Depth[4*16+4], 1) {
		t.Fatal("depth not written")
	}
	// Far corner outside the triangle stays untouched.
	j := (15*16 + 15)
	if !math.IsInf(fb.Depth[j], 1) {
		t.Fatal("exterior depth written")
	}
}

func TestRasterizeDepthTest(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	px := []float64{0, 15, 0}
	py := []float64{0, 0, 15}

	// Near surface first.
	fullShadeTriangle(fb, px, py, []float64{-0.5, -0.5, -0.5})
	i := (3*16 + 3) * 4
	if fb.Color[i] != 200 {
		t.Fatalf("near triangle missing: %v", fb.Color[i:i+4])
	}

	// Farther triangle must not overwrite.
	RasterizeTriangle(fb, px, py, []float64{0.5, 0.5, 0.5}, nil,
		[3]int{0, 1, 2}, [3]int{0, 0, 0}, nil, 1, 2, 3, 1.0)
	if fb.Color[i] != 200 {
		t.Fatalf("far triangle overwrote near: %v", fb.Color[i:i+4])
	}

	// Nearer one does.
	RasterizeTriangle(fb, px, py, []float64{-0.9, -0.9, -0.9}, nil,
		[3]int{0, 1, 2}, [3]int{0, 0, 0}, nil, 7, 8, 9, 1.0)
	if fb.Color[i] != 7 {
		t.Fatalf("nearer triangle lost: %v", fb.Color[i:i+4])
	}
}

func TestRasterizeDegenerate(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	// Zero-area triangle: all three points collinear.
	px := []float64{1, 4, 7}
	py := []float64{1, 4, 7}
	fullShadeTriangle(fb, px, py, []float64{0, 0, 0})
	for _, z := range fb.Depth {
		if !math.IsInf(z, 1) {
			t.Fatal("degenerate triangle rasterized")
		}
	}
}

func TestRasterizeIndexOutOfRange(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	px := []float64{1, 6}
	py := []float64{1, 6}
	pz := []float64{0, 0}
	// Third index beyond the slice: dropped, no panic.
	RasterizeTriangle(fb, px, py, pz, nil, [3]int{0, 1, 5}, [3]int{0, 0, 0},
		nil, 1, 1, 1, 1.0)
}

func TestRasterizeTextured(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	tex := texture.Checkerboard(8, 4,
		color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		color.NRGBA{A: 255})
	px := []float64{0, 15, 0}
	py := []float64{0, 0, 15}
	pz := []float64{0, 0, 0}
	uvs := [][2]float64{{0, 0}, {1, 0}, {0, 1}}
	RasterizeTriangle(fb, px, py, pz, uvs, [3]int{0, 1, 2}, [3]int{0, 1, 2},
		tex, 9, 9, 9, 1.0)

	// Texel near the origin is white, not the base color.
	i := (1*16 + 1) * 4
	if fb.Color[i] != 255 {
		t.Fatalf("textured pixel: %v", fb.Color[i:i+4])
	}
}

func TestShadeScalesColor(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	px := []float64{0, 7, 0}
	py := []float64{0, 0, 7}
	pz := []float64{0, 0, 0}
	RasterizeTriangle(fb, px, py, pz, nil, [3]int{0, 1, 2}, [3]int{0, 0, 0},
		nil, 200, 100, 50, 0.5)
	i := (1*8 + 1) * 4
	if fb.Color[i] != 100 || fb.Color[i+1] != 50 || fb.Color[i+2] != 25 {
		t.Fatalf("half shade: %v", fb.Color[i:i+4])
	}
}
