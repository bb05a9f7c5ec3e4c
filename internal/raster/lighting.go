package raster

import (
	"math"

	"softrender/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters for flat shading.
type LightConfig struct {
	LightDir mathutil.Vec3
	FillDir  mathutil.Vec3
	Ambient  float64
	Direct   float64
	Fill     float64
}

// DefaultLightConfig returns a key light from the upper right with a
// weak cool fill from the opposite side.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		LightDir: mathutil.Vec3{0.5, 0.8, 0.4}.Normalize(),
		FillDir:  mathutil.Vec3{-0.4, 0.2, -0.6}.Normalize(),
		Ambient:  0.30,
		Direct:   0.85,
		Fill:     0.25,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal.
// Lambertian terms use abs(n·l): geometry is shaded double-sided.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	key := math.Abs(normal.Dot(lc.LightDir))
	fill := math.Abs(normal.Dot(lc.FillDir))
	return lc.Ambient + key*lc.Direct + fill*lc.Fill
}
