package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"softrender/internal/clipspace"
	"softrender/internal/mathutil"
)

// Object places one mesh in the world. Rotation is Euler angles in
// degrees; Scale and Position are per-axis. Texture is an optional
// path to a .tga or .jpg file; Color is the flat base color used when
// no texture is given.
type Object struct {
	Mesh     string     `json:"mesh"`
	Scale    [3]float64 `json:"scale"`
	Rotation [3]float64 `json:"rotation"`
	Position [3]float64 `json:"position"`
	Texture  string     `json:"texture"`
	Color    [3]uint8   `json:"color"`
}

// CameraSpec holds the camera pose and projection parameters as plain
// values, the shape the transform core consumes.
type CameraSpec struct {
	Eye          [3]float64 `json:"eye"`
	Look         [3]float64 `json:"look"`
	Up           [3]float64 `json:"up"`
	Orthographic bool       `json:"orthographic"`
	Size         float64    `json:"size"`
	FOV          float64    `json:"fov"`
	Near         float64    `json:"near"`
	Far          float64    `json:"far"`
}

// Scene is the root of a scene file.
type Scene struct {
	Camera  CameraSpec `json:"camera"`
	Objects []Object   `json:"objects"`
}

// Load reads a JSON scene file. Fields not set in the file keep their
// zero values; call Resolve to fill in defaults.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	s.Resolve()
	return s, nil
}

// Default returns the built-in demo scene: a rotated textured cube and
// a ground plane under a perspective camera.
func Default() Scene {
	s := Scene{
		Camera: CameraSpec{
			Eye:  [3]float64{0, 0, 5},
			Look: [3]float64{0, 0, -1},
		},
		Objects: []Object{
			{Mesh: "cube", Rotation: [3]float64{0, 30, 0}, Position: [3]float64{0, 0.5, 0}, Color: [3]uint8{200, 90, 60}},
			{Mesh: "plane", Scale: [3]float64{3, 1, 3}, Position: [3]float64{0, -0.5, 0}, Color: [3]uint8{90, 110, 90}},
			{Mesh: "octahedron", Scale: [3]float64{0.6, 0.9, 0.6}, Position: [3]float64{-1.8, 0.4, 1.2}, Color: [3]uint8{80, 120, 190}},
		},
	}
	s.Resolve()
	return s
}

// Resolve fills empty fields with defaults: unit scale, Y-up camera
// looking at the origin, a 60° perspective frustum over 0.1..100.
func (s *Scene) Resolve() {
	c := &s.Camera
	if c.Eye == ([3]float64{}) {
		c.Eye = [3]float64{0, 1, 5}
	}
	if c.Look == ([3]float64{}) {
		// Look at the origin from the eye.
		l := mathutil.Vec3{-c.Eye[0], -c.Eye[1], -c.Eye[2]}.Normalize()
		c.Look = [3]float64{l[0], l[1], l[2]}
	}
	if c.Up == ([3]float64{}) {
		c.Up = [3]float64{0, 1, 0}
	}
	if c.FOV == 0 {
		c.FOV = 60
	}
	if c.Size == 0 {
		c.Size = 2
	}
	if c.Near == 0 {
		c.Near = 0.1
	}
	if c.Far == 0 {
		c.Far = 100
	}

	for i := range s.Objects {
		o := &s.Objects[i]
		if o.Scale == ([3]float64{}) {
			o.Scale = [3]float64{1, 1, 1}
		}
		if o.Color == ([3]uint8{}) {
			o.Color = [3]uint8{160, 160, 170}
		}
	}
}

// TransformParams returns the object's transform as the value triple
// the transform core takes.
func (o *Object) TransformParams() (scale, rotation, position mathutil.Vec3) {
	return mathutil.Vec3(o.Scale), mathutil.Vec3(o.Rotation), mathutil.Vec3(o.Position)
}

// Camera converts the projection part of the spec to the core's
// parameter struct.
func (c *CameraSpec) Camera() clipspace.Camera {
	return clipspace.Camera{
		Orthographic: c.Orthographic,
		Size:         c.Size,
		FOV:          c.FOV,
		Near:         c.Near,
		Far:          c.Far,
	}
}

// Pose returns eye, look direction and up as vectors.
func (c *CameraSpec) Pose() (eye, look, up mathutil.Vec3) {
	return mathutil.Vec3(c.Eye), mathutil.Vec3(c.Look), mathutil.Vec3(c.Up)
}
