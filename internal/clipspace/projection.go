package clipspace

import (
	"math"

	"softrender/internal/mathutil"
)

// Camera carries the projection parameters of a scene camera.
// Size is the half-height of the orthographic view volume; FOV is the
// vertical field of view in degrees for the perspective path. Near and
// Far are positive camera-space distances.
type Camera struct {
	Orthographic bool
	Size         float64
	FOV          float64
	Near         float64
	Far          float64
}

// Orthographic maps the axis-aligned box [l,r]×[b,t] with depth range
// f..n onto the canonical [-1,1]³ cube: center the box at the origin,
// then scale each extent to 2. Returns Scale · Translate.
//
// A zero-extent box (r==l, t==b or n==f) divides by zero and yields
// Inf/NaN entries; no error is raised.
func Orthographic(l, r, b, t, f, n float64) mathutil.Mat4 {
	center := offsetMatrix(-(r+l)/2, -(t+b)/2, -(n+f)/2)
	scale := ScaleMatrix(mathutil.Vec3{2 / (r - l), 2 / (t - b), 2 / (n - f)})
	return mathutil.Mat4Mul(scale, center)
}

// Perspective maps a symmetric view frustum to clip space via the
// classical perspective-to-orthographic reduction. fovDeg is the
// vertical field of view; zNear and zFar are positive distances,
// converted here to the view-space negative-Z convention.
//
// The reduction matrix squashes the frustum into an axis-aligned box
// (near and far planes are fixed: z=n maps back to n, z=f to f) while
// parking the original view-space z in w for the downstream homogeneous
// division. The equivalent box is then handed to Orthographic with the
// depth range oriented so the near plane lands on -1 and the far plane
// on +1 after division.
func Perspective(fovDeg, aspect, zNear, zFar float64) mathutil.Mat4 {
	halfH := math.Tan(mathutil.Deg2Rad(fovDeg)/2) * zNear
	halfW := halfH * aspect

	n := -zNear
	f := -zFar

	squash := mathutil.Mat4{
		n, 0, 0, 0,
		0, n, 0, 0,
		0, 0, n + f, -n * f,
		0, 0, 1, 0,
	}

	ortho := Orthographic(-halfW, halfW, -halfH, halfH, n, f)

	return mathutil.Mat4Mul(ortho, squash)
}

// Projection dispatches on the camera mode. Orthographic cameras use
// Size as half-height and half-width = half-height × aspect, with the
// depth range passed as (f, n) = (-Far, -Near). Perspective cameras
// delegate to Perspective.
func Projection(cam Camera, aspect float64) mathutil.Mat4 {
	if cam.Orthographic {
		h := cam.Size
		w := h * aspect
		f := -cam.Far
		n := -cam.Near
		return Orthographic(-w, w, -h, h, f, n)
	}
	return Perspective(cam.FOV, aspect, cam.Near, cam.Far)
}
