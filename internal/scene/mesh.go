package scene

import (
	"fmt"

	"softrender/internal/mathutil"
)

// Triangle references three vertex and three UV indices.
type Triangle struct {
	VI [3]int
	TI [3]int
}

// Mesh is indexed triangle geometry in object space.
type Mesh struct {
	Verts []mathutil.Vec3
	UVs   [][2]float64
	Tris  []Triangle
}

// MeshByName returns one of the built-in procedural meshes:
// "cube", "plane" or "octahedron".
func MeshByName(name string) (Mesh, error) {
	switch name {
	case "cube":
		return Cube(), nil
	case "plane":
		return Plane(), nil
	case "octahedron":
		return Octahedron(), nil
	}
	return Mesh{}, fmt.Errorf("scene: unknown mesh %q", name)
}

var quadUV = [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Cube returns a unit cube centered at the origin with per-face UVs.
func Cube() Mesh {
	h := 0.5
	verts := []mathutil.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h}, // back
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}, // front
	}
	// Each face as two triangles, counter-clockwise seen from outside.
	faces := [6][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	m := Mesh{Verts: verts, UVs: quadUV}
	for _, f := range faces {
		m.Tris = append(m.Tris,
			Triangle{VI: [3]int{f[0], f[1], f[2]}, TI: [3]int{0, 1, 2}},
			Triangle{VI: [3]int{f[0], f[2], f[3]}, TI: [3]int{0, 2, 3}},
		)
	}
	return m
}

// Plane returns a 2×2 quad in the XZ plane at y=0, facing +Y.
func Plane() Mesh {
	return Mesh{
		Verts: []mathutil.Vec3{
			{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1},
		},
		UVs: quadUV,
		Tris: []Triangle{
			{VI: [3]int{0, 3, 2}, TI: [3]int{0, 3, 2}},
			{VI: [3]int{0, 2, 1}, TI: [3]int{0, 2, 1}},
		},
	}
}

// Octahedron returns the unit octahedron (vertices on the axes).
func Octahedron() Mesh {
	verts := []mathutil.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	tri := func(a, b, c int) Triangle {
		return Triangle{VI: [3]int{a, b, c}, TI: [3]int{0, 1, 2}}
	}
	return Mesh{
		Verts: verts,
		UVs:   quadUV,
		Tris: []Triangle{
			tri(0, 2, 4), tri(2, 1, 4), tri(1, 3, 4), tri(3, 0, 4),
			tri(2, 0, 5), tri(1, 2, 5), tri(3, 1, 5), tri(0, 3, 5),
		},
	}
}
