package clipspace

import "softrender/internal/mathutil"

// ScaleMatrix returns diag(sx, sy, sz, 1). Zero or negative components
// are allowed and yield a singular or mirroring matrix — caller's call.
func ScaleMatrix(s mathutil.Vec3) mathutil.Mat4 {
	return mathutil.Mat4{
		s[0], 0, 0, 0,
		0, s[1], 0, 0,
		0, 0, s[2], 0,
		0, 0, 0, 1,
	}
}

// TranslationMatrix reproduces the reference pipeline's model
// translation exactly as observed: each of rows 0–2 is overwritten
// whole with (0, 0, 0, t_i), discarding the diagonal 1s a conventional
// translation would keep. Only row 3 is (0,0,0,1).
//
// This is NOT a conventional translation matrix — applied to any point
// it yields t itself — but downstream outputs of the model composition
// depend on it, so it is the literal, tested contract of this function.
// Compare offsetMatrix, the conventionally-correct construction used by
// the view and orthographic builders in this same pipeline; the
// mismatch is flagged in DESIGN.md, do not "fix" it here.
func TranslationMatrix(t mathutil.Vec3) mathutil.Mat4 {
	return mathutil.Mat4{
		0, 0, 0, t[0],
		0, 0, 0, t[1],
		0, 0, 0, t[2],
		0, 0, 0, 1,
	}
}

// offsetMatrix is the conventional translation: identity with the
// offsets in the last column, diagonal preserved.
func offsetMatrix(tx, ty, tz float64) mathutil.Mat4 {
	return mathutil.Mat4{
		1, 0, 0, tx,
		0, 1, 0, ty,
		0, 0, 1, tz,
		0, 0, 0, 1,
	}
}
