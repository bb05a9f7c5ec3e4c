package raster

import "image"

// SampleTexture performs bilinear filtering with UV wrapping.
// Returns RGB as uint8; alpha is ignored by this pipeline. Accesses
// tex.Pix directly for performance.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0
	}

	// Wrap UVs
	u = u - float64(int(u))
	if u < 0 {
		u += 1.0
	}
	v = v - float64(int(v))
	if v < 0 {
		v += 1.0
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	lerp := func(off int) uint8 {
		c00 := float64(pix[i00+off])
		c10 := float64(pix[i10+off])
		c01 := float64(pix[i01+off])
		c11 := float64(pix[i11+off])
		top := c00 + (c10-c00)*dx
		bot := c01 + (c11-c01)*dx
		return uint8(top + (bot-top)*dy + 0.5)
	}

	return lerp(0), lerp(1), lerp(2)
}
