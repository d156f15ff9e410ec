package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// contactSlop tolerates resting contacts that sit exactly on a face.
const contactSlop = 1e-3

// surfaceFriction damps sliding on faces that push upward.
const surfaceFriction = 0.3

// contact is a narrow-phase result between a dynamic box and a static body.
// Normal points from the static body toward the dynamic one.
type contact struct {
	normal      mgl64.Vec3
	point       mgl64.Vec3
	penetration float64
}

// detect dispatches on the static body's shape. The dynamic body must be a box.
func detect(b, s *Body) (contact, bool) {
	if b.shape.Kind != ShapeBox {
		return contact{}, false
	}
	switch s.shape.Kind {
	case ShapeBox:
		return boxVsBox(b, s)
	case ShapeCylinder:
		return boxVsCylinder(b, s)
	case ShapePlane:
		return boxVsPlane(b, s)
	}
	return contact{}, false
}

func boxVsPlane(b, s *Body) (contact, bool) {
	planeY := s.Position.Y()
	pen := planeY - b.Bottom()
	if pen <= 0 {
		return contact{}, false
	}
	return contact{
		normal:      mgl64.Vec3{0, 1, 0},
		point:       mgl64.Vec3{b.Position.X(), planeY, b.Position.Z()},
		penetration: pen,
	}, true
}

func boxVsBox(b, s *Body) (contact, bool) {
	bh := b.shape.HalfExtents
	sh := s.shape.HalfExtents

	overlapX := bh.X() + sh.X() - math.Abs(b.Position.X()-s.Position.X())
	overlapY := bh.Y() + sh.Y() - math.Abs(b.Position.Y()-s.Position.Y())
	overlapZ := bh.Z() + sh.Z() - math.Abs(b.Position.Z()-s.Position.Z())
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return contact{}, false
	}

	c := contact{}
	switch {
	case b.wasAbove(s):
		c.normal = mgl64.Vec3{0, 1, 0}
		c.penetration = s.Top() - b.Bottom()
	case b.wasBelow(s):
		c.normal = mgl64.Vec3{0, -1, 0}
		c.penetration = b.Top() - s.Bottom()
	case overlapX <= overlapZ && overlapX < overlapY:
		c.normal = mgl64.Vec3{sign(b.Position.X() - s.Position.X()), 0, 0}
		c.penetration = overlapX
	case overlapZ < overlapX && overlapZ < overlapY:
		c.normal = mgl64.Vec3{0, 0, sign(b.Position.Z() - s.Position.Z())}
		c.penetration = overlapZ
	default:
		c.normal = mgl64.Vec3{0, sign(b.Position.Y() - s.Position.Y()), 0}
		c.penetration = overlapY
	}

	// Project the box center onto the touched face, clamped to the footprint.
	px := clamp(b.Position.X(), s.Position.X()-sh.X(), s.Position.X()+sh.X())
	pz := clamp(b.Position.Z(), s.Position.Z()-sh.Z(), s.Position.Z()+sh.Z())
	c.point = mgl64.Vec3{px, faceY(b, s, c.normal), pz}
	return c, true
}

func boxVsCylinder(b, s *Body) (contact, bool) {
	bh := b.shape.HalfExtents
	r := s.shape.Radius

	overlapY := bh.Y() + s.shape.HalfHeight - math.Abs(b.Position.Y()-s.Position.Y())
	if overlapY <= 0 {
		return contact{}, false
	}

	// Closest point of the box footprint to the cylinder axis.
	cx, cz := s.Position.X(), s.Position.Z()
	qx := clamp(cx, b.Position.X()-bh.X(), b.Position.X()+bh.X())
	qz := clamp(cz, b.Position.Z()-bh.Z(), b.Position.Z()+bh.Z())
	dx, dz := qx-cx, qz-cz
	dist := math.Hypot(dx, dz)
	if dist >= r {
		return contact{}, false
	}

	var horizPen float64
	var horizNormal mgl64.Vec3
	if dist > 0 {
		horizPen = r - dist
		horizNormal = mgl64.Vec3{dx / dist, 0, dz / dist}
	} else {
		// Axis inside the footprint: push out along the box center offset.
		ox, oz := b.Position.X()-cx, b.Position.Z()-cz
		ol := math.Hypot(ox, oz)
		if ol > 0 {
			horizNormal = mgl64.Vec3{ox / ol, 0, oz / ol}
		} else {
			horizNormal = mgl64.Vec3{1, 0, 0}
		}
		horizPen = r + math.Min(bh.X(), bh.Z())
	}

	c := contact{}
	switch {
	case b.wasAbove(s):
		c.normal = mgl64.Vec3{0, 1, 0}
		c.penetration = s.Top() - b.Bottom()
	case b.wasBelow(s):
		c.normal = mgl64.Vec3{0, -1, 0}
		c.penetration = b.Top() - s.Bottom()
	case horizPen < overlapY:
		c.normal = horizNormal
		c.penetration = horizPen
	default:
		c.normal = mgl64.Vec3{0, sign(b.Position.Y() - s.Position.Y()), 0}
		c.penetration = overlapY
	}

	// Box center projected onto the cap, pulled inside the rim.
	px, pz := b.Position.X()-cx, b.Position.Z()-cz
	if l := math.Hypot(px, pz); l > r {
		px, pz = px*r/l, pz*r/l
	}
	c.point = mgl64.Vec3{cx + px, faceY(b, s, c.normal), cz + pz}
	return c, true
}

// wasAbove reports whether the body's bottom cleared the static top before the
// last step, which makes any new overlap a top-face touch.
func (b *Body) wasAbove(s *Body) bool {
	prevBottom := b.prev.Y() - b.shape.halfHeight()
	return prevBottom >= s.Top()-contactSlop
}

func (b *Body) wasBelow(s *Body) bool {
	prevTop := b.prev.Y() + b.shape.halfHeight()
	return prevTop <= s.Bottom()+contactSlop
}

func faceY(b, s *Body, n mgl64.Vec3) float64 {
	switch {
	case n.Y() > 0.5:
		return s.Top()
	case n.Y() < -0.5:
		return s.Bottom()
	}
	return b.Position.Y()
}

// resolve pushes the dynamic body out of the static one and removes the
// velocity component driving into it. Restitution is zero.
func resolve(b *Body, c contact) {
	b.Position = b.Position.Add(c.normal.Mul(c.penetration))

	vn := b.Velocity.Dot(c.normal)
	if vn >= 0 {
		return
	}
	b.Velocity = b.Velocity.Sub(c.normal.Mul(vn))

	if c.normal.Y() <= 0.5 {
		return
	}
	// Coulomb-style friction on supporting faces.
	tangent := mgl64.Vec3{b.Velocity.X(), 0, b.Velocity.Z()}
	speed := tangent.Len()
	if speed < 1e-9 {
		return
	}
	drop := math.Min(speed, surfaceFriction*-vn)
	b.Velocity = b.Velocity.Sub(tangent.Mul(drop / speed))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
