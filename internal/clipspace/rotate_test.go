package clipspace

import (
	"math"
	"testing"

	"softrender/internal/mathutil"
)

const tol = 1e-12

func vecNear(a, b mathutil.Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps &&
		math.Abs(a[1]-b[1]) <= eps &&
		math.Abs(a[2]-b[2]) <= eps
}

func TestRotateZeroAngle(t *testing.T) {
	axis := mathutil.Vec3{0.3, -0.5, 0.8}.Normalize()
	v := mathutil.Vec3{1.5, -2, 0.25}
	out := RotateAboutAxis(axis, v, 0)
	if !vecNear(out, v, tol) {
		t.Fatalf("rotate by 0 moved v: %+v", out)
	}
}

func TestRotateFixesAxis(t *testing.T) {
	axis := mathutil.Vec3{1, 2, -2}.Normalize()
	for _, ang := range []float64{0, 0.1, math.Pi / 3, math.Pi, 5.5} {
		out := RotateAboutAxis(axis, axis, ang)
		if !vecNear(out, axis, tol) {
			t.Fatalf("axis not fixed at angle %g: %+v", ang, out)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	// 90° about Z: (1,0,0) -> (0,1,0)
	out := RotateAboutAxis(mathutil.Vec3{0, 0, 1}, mathutil.Vec3{1, 0, 0}, math.Pi/2)
	if !vecNear(out, mathutil.Vec3{0, 1, 0}, tol) {
		t.Fatalf("quarter turn about Z: %+v", out)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	axis := mathutil.Vec3{-0.2, 0.9, 0.4}.Normalize()
	v := mathutil.Vec3{3, -1, 2}
	ang := 1.234
	back := RotateAboutAxis(axis, RotateAboutAxis(axis, v, ang), -ang)
	if !vecNear(back, v, 1e-10) {
		t.Fatalf("round trip drifted: %+v", back)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	axis := mathutil.Vec3{1, 1, 1}.Normalize()
	v := mathutil.Vec3{-2, 0.5, 4}
	out := RotateAboutAxis(axis, v, 2.2)
	if d := math.Abs(out.Len() - v.Len()); d > 1e-10 {
		t.Fatalf("length changed by %g", d)
	}
}

func TestRotationMatrixZeroAngle(t *testing.T) {
	for _, axis := range []mathutil.Vec3{{1, 0, 0}, {0, 0, 1}, {2, -3, 5}} {
		m := RotationMatrix(axis, 0)
		if !m.IsIdentity() {
			t.Fatalf("RotationMatrix(%v, 0) != I: %+v", axis, m)
		}
	}
}

func TestRotationMatrixOrthonormal(t *testing.T) {
	axis := mathutil.Vec3{0.6, -1.1, 0.35}
	for _, deg := range []float64{17, 90, 133.7, 271, -45} {
		m := RotationMatrix(axis, deg)
		p := mathutil.Mat4Mul(m, m.Transpose())
		if !p.IsIdentity() {
			t.Fatalf("R R^T != I at %g°: %+v", deg, p)
		}
		// Determinant of the upper-left 3×3 must be +1 (proper rotation).
		det := m[0]*(m[5]*m[10]-m[6]*m[9]) -
			m[1]*(m[4]*m[10]-m[6]*m[8]) +
			m[2]*(m[4]*m[9]-m[5]*m[8])
		if math.Abs(det-1) > 1e-10 {
			t.Fatalf("det != 1 at %g°: %.12g", deg, det)
		}
	}
}

func TestRotationMatrixBasisColumns(t *testing.T) {
	// 90° about Z maps (1,0,0)->(0,1,0) and (0,1,0)->(-1,0,0).
	m := RotationMatrix(mathutil.Vec3{0, 0, 1}, 90)
	if out := m.MulPoint(mathutil.Vec3{1, 0, 0}); !vecNear(out, mathutil.Vec3{0, 1, 0}, 1e-12) {
		t.Fatalf("Rz(90)·e1 = %+v", out)
	}
	if out := m.MulPoint(mathutil.Vec3{0, 1, 0}); !vecNear(out, mathutil.Vec3{-1, 0, 0}, 1e-12) {
		t.Fatalf("Rz(90)·e2 = %+v", out)
	}
	// Bottom row and last column stay (0,0,0,1).
	if m[3] != 0 || m[7] != 0 || m[11] != 0 || m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		t.Fatalf("rotation carries translation: %+v", m)
	}
}

func TestRotateParallelDegenerate(t *testing.T) {
	// v parallel to axis: the in-plane basis is undefined; the guarded
	// normalize makes the remainder vanish and the result is v itself.
	axis := mathutil.Vec3{0, 1, 0}
	v := mathutil.Vec3{0, 3, 0}
	out := RotateAboutAxis(axis, v, 1.0)
	if !vecNear(out, v, tol) {
		t.Fatalf("parallel input: %+v", out)
	}
}
