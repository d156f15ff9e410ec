package game

import "math"

// Mesh vertices are interleaved [px, py, pz, nx, ny, nz].
const meshStride = 6

type MeshKind uint8

const (
	MeshBox MeshKind = iota
	MeshCylinder
)

// CylinderSegments is the number of side facets on the cylinder mesh.
const CylinderSegments = 32

// boxMesh is a unit cube centred on the origin, 36 vertices.
func boxMesh() []float32 {
	faces := []struct {
		n    [3]float32
		u, v [3]float32
	}{
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
	}
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

	out := make([]float32, 0, 36*meshStride)
	for _, f := range faces {
		for _, c := range corners {
			for i := 0; i < 3; i++ {
				out = append(out, 0.5*(f.n[i]+c[0]*f.u[i]+c[1]*f.v[i]))
			}
			out = append(out, f.n[0], f.n[1], f.n[2])
		}
	}
	return out
}

// cylinderMesh is a radius 0.5, height 1 cylinder centred on the origin.
func cylinderMesh(segments int) []float32 {
	out := make([]float32, 0, segments*12*meshStride)
	vert := func(x, y, z, nx, ny, nz float64) {
		out = append(out, float32(x), float32(y), float32(z), float32(nx), float32(ny), float32(nz))
	}
	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * math.Pi
		a1 := float64(i+1) / float64(segments) * 2 * math.Pi
		x0, z0 := 0.5*math.Cos(a0), 0.5*math.Sin(a0)
		x1, z1 := 0.5*math.Cos(a1), 0.5*math.Sin(a1)
		nx0, nz0 := math.Cos(a0), math.Sin(a0)
		nx1, nz1 := math.Cos(a1), math.Sin(a1)

		// Side.
		vert(x0, -0.5, z0, nx0, 0, nz0)
		vert(x1, 0.5, z1, nx1, 0, nz1)
		vert(x1, -0.5, z1, nx1, 0, nz1)
		vert(x0, -0.5, z0, nx0, 0, nz0)
		vert(x0, 0.5, z0, nx0, 0, nz0)
		vert(x1, 0.5, z1, nx1, 0, nz1)

		// Caps.
		vert(0, 0.5, 0, 0, 1, 0)
		vert(x1, 0.5, z1, 0, 1, 0)
		vert(x0, 0.5, z0, 0, 1, 0)
		vert(0, -0.5, 0, 0, -1, 0)
		vert(x0, -0.5, z0, 0, -1, 0)
		vert(x1, -0.5, z1, 0, -1, 0)
	}
	return out
}
