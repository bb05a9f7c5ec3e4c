package raster

import (
	"image"

	"softrender/internal/clipspace"
	"softrender/internal/mathutil"
	"softrender/internal/scene"
	"softrender/internal/texture"
)

// worldUp is the turntable axis.
var worldUp = mathutil.Vec3{0, 1, 0}

// RenderScene rasterizes the scene into an NRGBA image of
// size×supersample square pixels. yawDeg spins the whole scene about
// the world Y axis (turntable frames) while the camera stays put; pass
// 0 for the authored pose.
//
// The camera matrices come straight from the transform core:
// clip = Projection(camera) × ViewMatrix(pose). Object geometry is
// placed in world space from its transform parameters with the model
// composer's conventions (scale, then Rz/Rx/Ry with the (-x,-y,+z)
// angle signs, then offset) applied per vertex — the composed model
// matrix itself is unusable for rendering by observed contract, see
// clipspace.TranslationMatrix.
func RenderScene(s scene.Scene, texResolver texture.Resolver, size, supersample int, yawDeg float64) *image.NRGBA {
	rs := size * supersample
	fb := NewFrameBuffer(rs, rs)
	fb.Fill(24, 26, 32)

	eye, look, up := s.Camera.Pose()
	view := clipspace.ViewMatrix(eye, look, up)
	proj := clipspace.Projection(s.Camera.Camera(), 1)
	clip := mathutil.Mat4Mul(proj, view)

	lc := DefaultLightConfig()

	yaw := mathutil.Deg2Rad(yawDeg)

	for i := range s.Objects {
		obj := &s.Objects[i]
		mesh, err := scene.MeshByName(obj.Mesh)
		if err != nil {
			continue
		}
		renderObject(fb, clip, obj, &mesh, texResolver, &lc, s.Camera.Orthographic, yaw)
	}

	return fb.Image()
}

func renderObject(
	fb *FrameBuffer,
	clip mathutil.Mat4,
	obj *scene.Object,
	mesh *scene.Mesh,
	texResolver texture.Resolver,
	lc *LightConfig,
	orthographic bool,
	yaw float64,
) {
	scaleV, rot, pos := obj.TransformParams()

	world := make([]mathutil.Vec3, len(mesh.Verts))
	for i, v := range mesh.Verts {
		w := placeVertex(v, scaleV, rot, pos)
		if yaw != 0 {
			w = clipspace.RotateAboutAxis(worldUp, w, yaw)
		}
		world[i] = w
	}

	// Project every vertex to screen space up front (teacher-style
	// per-mesh slices feeding the per-triangle hot path).
	px := make([]float64, len(world))
	py := make([]float64, len(world))
	pz := make([]float64, len(world))
	front := make([]bool, len(world))

	w := float64(fb.Width)
	h := float64(fb.Height)
	for i, v := range world {
		c := clip.MulVec4(mathutil.FromPoint(v))
		// Perspective w carries view-space z, negative in front of the
		// camera; the orthographic path keeps w = 1. No near-plane
		// clipping: triangles touching the eye plane are dropped whole.
		if orthographic {
			front[i] = true
		} else {
			front[i] = c[3] < -1e-9
		}
		if !front[i] {
			continue
		}
		ndc := c.DivW()
		px[i] = (ndc[0] + 1) / 2 * w
		py[i] = (1 - ndc[1]) / 2 * h
		if orthographic {
			// The dispatcher's observed orthographic depth range runs
			// far→-1, near→+1; negate so smaller still means nearer.
			pz[i] = -ndc[2]
		} else {
			pz[i] = ndc[2]
		}
	}

	var tex *image.NRGBA
	if texResolver != nil && obj.Texture != "" {
		tex = texResolver.Resolve(obj.Texture)
	}

	for _, tri := range mesh.Tris {
		ok := true
		for _, vi := range tri.VI {
			if vi < 0 || vi >= len(front) || !front[vi] {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		// Flat shade from the world-space face normal.
		a := world[tri.VI[0]]
		e1 := world[tri.VI[1]].Sub(a)
		e2 := world[tri.VI[2]].Sub(a)
		normal := e1.Cross(e2).Normalize()
		shade := lc.ComputeShade(normal)

		RasterizeTriangle(fb, px, py, pz, mesh.UVs, tri.VI, tri.TI,
			tex, obj.Color[0], obj.Color[1], obj.Color[2], shade)
	}
}

// placeVertex applies the object's transform parameters directly to a
// vertex, in the model composer's order and sign conventions: scale,
// then rotation Rz → Rx → Ry (angles -x, -y, +z), then position.
func placeVertex(v, scale, rot, pos mathutil.Vec3) mathutil.Vec3 {
	v = mathutil.Vec3{v[0] * scale[0], v[1] * scale[1], v[2] * scale[2]}
	v = clipspace.RotateAboutAxis(mathutil.Vec3{0, 0, 1}, v, mathutil.Deg2Rad(rot[2]))
	v = clipspace.RotateAboutAxis(mathutil.Vec3{1, 0, 0}, v, mathutil.Deg2Rad(-rot[0]))
	v = clipspace.RotateAboutAxis(mathutil.Vec3{0, 1, 0}, v, mathutil.Deg2Rad(-rot[1]))
	return v.Add(pos)
}
