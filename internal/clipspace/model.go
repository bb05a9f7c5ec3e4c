package clipspace

import "softrender/internal/mathutil"

// ModelMatrix composes scale, rotation and translation into one model
// (object→world) matrix: T · R · S with R = Ry · Rx · Rz.
//
// Conventions fixed by the reference pipeline, not configurable:
//   - Euler angles are degrees about the world X, Y, Z axes.
//   - The X and Y angles are negated, Z is not. X/Y and Z rotation
//     signs are independent, opposite-handed inputs.
//   - Composition order is Ry · Rx · Rz.
//
// Because TranslationMatrix zeroes rows 0–2 outside the last column,
// T · R · S always equals TranslationMatrix(position) whenever R·S has
// bottom row (0,0,0,1) — the rotation and scale are annihilated. That
// is the observed behavior and is pinned by tests.
func ModelMatrix(scale, rotationEuler, position mathutil.Vec3) mathutil.Mat4 {
	s := ScaleMatrix(scale)

	rx := RotationMatrix(mathutil.Vec3{1, 0, 0}, -rotationEuler[0])
	ry := RotationMatrix(mathutil.Vec3{0, 1, 0}, -rotationEuler[1])
	rz := RotationMatrix(mathutil.Vec3{0, 0, 1}, rotationEuler[2])
	r := mathutil.Mat4Mul(ry, mathutil.Mat4Mul(rx, rz))

	t := TranslationMatrix(position)

	return mathutil.Mat4Mul(t, mathutil.Mat4Mul(r, s))
}
