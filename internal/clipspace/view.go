package clipspace

import "softrender/internal/mathutil"

// ViewMatrix builds the world→camera matrix for a right-handed world
// with the camera looking toward negative Z in view space.
//
// The Z components of the (normalized) look direction and up vector are
// negated first — the pipeline's handedness flip. camX = up × look, and
// camY is re-orthogonalized as look × camX so a sloppy up input still
// produces an orthonormal basis. The basis rows sit above a
// conventional eye translation (offsetMatrix, not the anomalous
// TranslationMatrix): translate to the eye first, then rotate into
// camera axes.
func ViewMatrix(eye, lookDirection, up mathutil.Vec3) mathutil.Mat4 {
	look := lookDirection.Normalize()
	look[2] = -look[2]
	u := up.Normalize()
	u[2] = -u[2]
	e := mathutil.Vec3{eye[0], eye[1], -eye[2]}

	camX := u.Cross(look)
	camY := look.Cross(camX)

	basis := mathutil.Mat4{
		camX[0], camX[1], camX[2], 0,
		camY[0], camY[1], camY[2], 0,
		look[0], look[1], look[2], 0,
		0, 0, 0, 1,
	}

	// The eye's handedness flip cancels against the recentering
	// negation in Z: the offset column ends up (-eye.x, -eye.y, -eye.z)
	// in the caller's coordinates, so the eye itself maps to the
	// camera-space origin.
	recenter := offsetMatrix(-e[0], -e[1], e[2])

	return mathutil.Mat4Mul(basis, recenter)
}
