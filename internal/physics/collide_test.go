package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func staticBody(shape Shape, pos mgl64.Vec3) *Body {
	return newBody(1, BodyConfig{Shape: shape, Position: pos, Tag: TagPlatform})
}

func movedBox(from, to mgl64.Vec3) *Body {
	b := newBody(2, BodyConfig{Mass: 1, Shape: Box(mgl64.Vec3{0.25, 0.5, 0.25}), Position: from, Tag: TagAgent})
	b.prev = from
	b.Position = to
	return b
}

func TestBoxVsBoxSeparated(t *testing.T) {
	s := staticBody(Box(mgl64.Vec3{0.5, 0.25, 0.5}), mgl64.Vec3{0, 0.25, 0})
	b := movedBox(mgl64.Vec3{2, 1, 0}, mgl64.Vec3{2, 0.9, 0})
	if _, ok := detect(b, s); ok {
		t.Fatalf("separated boxes reported a contact")
	}
}

func TestBoxVsBoxEdgeLandingClampsPoint(t *testing.T) {
	s := staticBody(Box(mgl64.Vec3{0.5, 0.25, 0.5}), mgl64.Vec3{0, 0.25, 0})
	// Center hangs past the +X edge while the footprint still overlaps.
	b := movedBox(mgl64.Vec3{0.7, 1.02, 0}, mgl64.Vec3{0.7, 0.98, 0})
	c, ok := detect(b, s)
	if !ok {
		t.Fatalf("expected contact")
	}
	if c.normal != (mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("normal: got %v want +Y", c.normal)
	}
	if c.point.X() != 0.5 || c.point.Y() != 0.5 {
		t.Fatalf("point: got %v want clamped to (0.5, 0.5, 0)", c.point)
	}
	if math.Abs(c.penetration-0.02) > 1e-9 {
		t.Fatalf("penetration: got %f want 0.02", c.penetration)
	}
}

func TestBoxVsBoxFromBelow(t *testing.T) {
	s := staticBody(Box(mgl64.Vec3{0.5, 0.25, 0.5}), mgl64.Vec3{0, 2, 0})
	b := movedBox(mgl64.Vec3{0, 1.2, 0}, mgl64.Vec3{0, 1.3, 0})
	c, ok := detect(b, s)
	if !ok {
		t.Fatalf("expected contact")
	}
	if c.normal != (mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("normal: got %v want -Y", c.normal)
	}
}

func TestCylinderMissOutsideRadius(t *testing.T) {
	s := staticBody(Cylinder(0.5, 0.5), mgl64.Vec3{0, 0.25, 0})
	// Footprint corner is outside the rim even though the AABBs overlap.
	b := movedBox(mgl64.Vec3{0.65, 0.8, 0.65}, mgl64.Vec3{0.65, 0.7, 0.65})
	if _, ok := detect(b, s); ok {
		t.Fatalf("corner outside the cylinder reported a contact")
	}
}

func TestCylinderPointInsideRim(t *testing.T) {
	s := staticBody(Cylinder(0.5, 0.5), mgl64.Vec3{0, 0.25, 0})
	b := movedBox(mgl64.Vec3{0.6, 1.01, 0}, mgl64.Vec3{0.6, 0.99, 0})
	c, ok := detect(b, s)
	if !ok {
		t.Fatalf("expected contact")
	}
	if math.Hypot(c.point.X(), c.point.Z()) > 0.5+1e-12 {
		t.Fatalf("point %v lies outside the cap", c.point)
	}
}

func TestResolveRemovesInwardVelocityOnly(t *testing.T) {
	b := movedBox(mgl64.Vec3{}, mgl64.Vec3{})
	b.Velocity = mgl64.Vec3{1, -4, 0}
	resolve(b, contact{normal: mgl64.Vec3{0, 1, 0}, penetration: 0.1})

	if b.Position.Y() != 0.1 {
		t.Fatalf("position not pushed out: %v", b.Position)
	}
	if b.Velocity.Y() != 0 {
		t.Fatalf("inward velocity kept: %v", b.Velocity)
	}
	// Friction drop is min(speed, 0.3*4) = 1.
	if math.Abs(b.Velocity.X()) > 1e-12 {
		t.Fatalf("friction not applied: %v", b.Velocity)
	}

	b.Velocity = mgl64.Vec3{0, 2, 0}
	resolve(b, contact{normal: mgl64.Vec3{0, 1, 0}})
	if b.Velocity.Y() != 2 {
		t.Fatalf("separating velocity altered: %v", b.Velocity)
	}
}
