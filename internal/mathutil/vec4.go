package mathutil

// Vec4 is a homogeneous 4-component vector.
type Vec4 [4]float64

// FromPoint lifts a 3D point to homogeneous coordinates with w=1.
func FromPoint(v Vec3) Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// DivW performs the homogeneous division, dropping to 3D.
// A zero w yields Inf/NaN components, matching the pipeline's
// silent-degeneration convention.
func (v Vec4) DivW() Vec3 {
	return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}
