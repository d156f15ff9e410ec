package physics

import "github.com/go-gl/mathgl/mgl64"

// Tag tells collision listeners what a body represents.
type Tag uint8

const (
	TagNone Tag = iota
	TagAgent
	TagPlatform
	TagVoidFloor
)

func (t Tag) String() string {
	switch t {
	case TagAgent:
		return "agent"
	case TagPlatform:
		return "platform"
	case TagVoidFloor:
		return "void-floor"
	}
	return "none"
}

// BodyConfig describes a body at creation time. Mass 0 makes it static.
type BodyConfig struct {
	Mass           float64
	Shape          Shape
	Position       mgl64.Vec3
	LinearDamping  float64
	AngularDamping float64
	Tag            Tag
}

type Body struct {
	Position        mgl64.Vec3
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	// Mass, damping and shape are fixed for the body's lifetime.
	id             uint64
	mass           float64
	linearDamping  float64
	angularDamping float64
	shape          Shape
	tag            Tag

	prev mgl64.Vec3 // position before the last integration
}

func newBody(id uint64, cfg BodyConfig) *Body {
	return &Body{
		Position:       cfg.Position,
		prev:           cfg.Position,
		id:             id,
		mass:           cfg.Mass,
		linearDamping:  cfg.LinearDamping,
		angularDamping: cfg.AngularDamping,
		shape:          cfg.Shape,
		tag:            cfg.Tag,
	}
}

func (b *Body) ID() uint64              { return b.id }
func (b *Body) Mass() float64           { return b.mass }
func (b *Body) LinearDamping() float64  { return b.linearDamping }
func (b *Body) AngularDamping() float64 { return b.angularDamping }
func (b *Body) Shape() Shape            { return b.shape }
func (b *Body) Tag() Tag                { return b.tag }
func (b *Body) Static() bool            { return b.mass == 0 }

// Bottom returns the world Y of the body's lowest face.
func (b *Body) Bottom() float64 { return b.Position.Y() - b.shape.halfHeight() }

// Top returns the world Y of the body's highest face.
func (b *Body) Top() float64 { return b.Position.Y() + b.shape.halfHeight() }

// Integrate advances one explicit Euler step. Gravity acts on Y, linear damping
// scales the horizontal components only. Predictors that preview a flight path
// must repeat these exact operations in this order.
func (b *Body) integrate(gravity, dt float64) {
	b.prev = b.Position

	b.Velocity[1] += gravity * dt
	k := 1 - b.linearDamping*dt
	b.Velocity[0] *= k
	b.Velocity[2] *= k
	b.AngularVelocity = b.AngularVelocity.Mul(1 - b.angularDamping*dt)

	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}
