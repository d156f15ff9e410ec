package jump

import "github.com/go-gl/mathgl/mgl64"

// Direction is one of the four axis-aligned headings on the ground plane.
type Direction uint8

const (
	DirPosX Direction = iota
	DirNegX
	DirPosZ
	DirNegZ
)

var directionVecs = [...]mgl64.Vec3{
	DirPosX: {1, 0, 0},
	DirNegX: {-1, 0, 0},
	DirPosZ: {0, 0, 1},
	DirNegZ: {0, 0, -1},
}

// Vec returns the unit vector. Out-of-range values map to +X.
func (d Direction) Vec() mgl64.Vec3 {
	if int(d) >= len(directionVecs) {
		return directionVecs[DirPosX]
	}
	return directionVecs[d]
}

func (d Direction) Dot(o Direction) float64 {
	return d.Vec().Dot(o.Vec())
}

func (d Direction) String() string {
	switch d {
	case DirPosX:
		return "+x"
	case DirNegX:
		return "-x"
	case DirPosZ:
		return "+z"
	case DirNegZ:
		return "-z"
	}
	return "?"
}
