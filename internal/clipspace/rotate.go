package clipspace

import (
	"math"

	"softrender/internal/mathutil"
)

// RotateAboutAxis rotates v about a unit axis by angle radians using the
// Rodrigues decomposition: the component of v along the axis is fixed,
// the orthogonal remainder turns in the plane spanned by itself and
// axis × remainder.
//
// If v is parallel to the axis the remainder has zero length and its
// normalization yields the zero vector, so the result degenerates to the
// parallel component — i.e. v itself. Callers must not rely on the
// in-plane basis being meaningful in that case.
func RotateAboutAxis(axis, v mathutil.Vec3, angle float64) mathutil.Vec3 {
	par := axis.Scale(axis.Dot(v))
	perp := v.Sub(par)

	b := perp.Normalize()
	c := axis.Cross(b)

	sin, cos := math.Sincos(angle)
	l := perp.Len()
	turned := b.Scale(l * cos).Add(c.Scale(l * sin))

	return par.Add(turned)
}

// RotationMatrix builds a rotation of angleDeg degrees about the given
// axis (normalized here) by rotating the three standard basis vectors
// and writing them into the first three columns. Column 3 stays
// (0,0,0,1): rotation matrices never carry translation.
//
// For any non-degenerate axis the result is orthogonal with
// determinant +1.
func RotationMatrix(axis mathutil.Vec3, angleDeg float64) mathutil.Mat4 {
	axis = axis.Normalize()
	a := mathutil.Deg2Rad(angleDeg)

	bx := RotateAboutAxis(axis, mathutil.Vec3{1, 0, 0}, a)
	by := RotateAboutAxis(axis, mathutil.Vec3{0, 1, 0}, a)
	bz := RotateAboutAxis(axis, mathutil.Vec3{0, 0, 1}, a)

	return mathutil.Mat4{
		bx[0], by[0], bz[0], 0,
		bx[1], by[1], bz[1], 0,
		bx[2], by[2], bz[2], 0,
		0, 0, 0, 1,
	}
}
