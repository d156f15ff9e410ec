package physics

import "github.com/go-gl/mathgl/mgl64"

type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeCylinder
	ShapePlane // infinite horizontal plane, normal +Y, at the body's Y
)

// Shape is an axis-aligned collider. Bodies never rotate, so boxes stay aligned
// to the world axes and cylinders stay upright.
type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl64.Vec3 // box
	Radius      float64    // cylinder
	HalfHeight  float64    // cylinder
}

func Box(halfExtents mgl64.Vec3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

func Cylinder(radius, height float64) Shape {
	return Shape{Kind: ShapeCylinder, Radius: radius, HalfHeight: height / 2}
}

func Plane() Shape {
	return Shape{Kind: ShapePlane}
}

// halfHeight returns the vertical half size of bounded shapes.
func (s Shape) halfHeight() float64 {
	switch s.Kind {
	case ShapeBox:
		return s.HalfExtents.Y()
	case ShapeCylinder:
		return s.HalfHeight
	}
	return 0
}
