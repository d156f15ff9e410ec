package jump

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/physics"
)

// StageShape is a platform footprint.
type StageShape uint8

const (
	StageBox StageShape = iota
	StageCylinder
)

func (s StageShape) String() string {
	if s == StageCylinder {
		return "cylinder"
	}
	return "box"
}

// Role marks a platform as the one stood on or the one aimed at.
type Role uint8

const (
	RoleNone Role = iota
	RoleCurrent
	RoleNext
)

func (r Role) String() string {
	switch r {
	case RoleCurrent:
		return "current"
	case RoleNext:
		return "next"
	}
	return "none"
}

// StagePlan is a platform that has been placed but not yet registered.
type StagePlan struct {
	Position mgl64.Vec3 // collider center; the top face sits at stageHeight
	Shape    StageShape
	Size     float64 // box edge or cylinder diameter
	Distance float64 // center to center from the previous platform
}

// Collider returns the static shape for the plan.
func (p StagePlan) Collider(stageHeight float64) physics.Shape {
	if p.Shape == StageCylinder {
		return physics.Cylinder(p.Size/2, stageHeight)
	}
	return physics.Box(mgl64.Vec3{p.Size / 2, stageHeight / 2, p.Size / 2})
}

// Platform is a registered stage with its static body.
type Platform struct {
	Body  *physics.Body
	Shape StageShape
	Size  float64
	Role  Role
}

// Center returns the platform's collider center.
func (p *Platform) Center() mgl64.Vec3 { return p.Body.Position }

// PlanarDistance is the ground-plane distance from q to the platform center.
func (p *Platform) PlanarDistance(q mgl64.Vec3) float64 {
	c := p.Body.Position
	return math.Hypot(q.X()-c.X(), q.Z()-c.Z())
}

// StageGenerator places platforms. It only consumes randomness and never
// touches the world; the game registers colliders for the returned plans.
type StageGenerator struct {
	cfg Config
	rng *Rand
}

func NewStageGenerator(cfg Config, rng *Rand) *StageGenerator {
	return &StageGenerator{cfg: cfg, rng: rng}
}

// First returns the fixed starting platform at the origin.
func (g *StageGenerator) First() StagePlan {
	return StagePlan{
		Position: mgl64.Vec3{0, g.cfg.StageHeight / 2, 0},
		Shape:    StageBox,
		Size:     g.cfg.FirstStageSize,
	}
}

// Next places a platform away from cur without reversing prev.
func (g *StageGenerator) Next(cur mgl64.Vec3, prev Direction) (StagePlan, Direction) {
	dir := g.direction(prev)
	dist := g.rng.RangeF(g.cfg.MinDistance, g.cfg.MaxDistance)
	size := g.rng.RangeF(g.cfg.MinStageSize, g.cfg.MaxStageSize)
	shape := StageBox
	if g.rng.Intn(2) == 1 {
		shape = StageCylinder
	}

	v := dir.Vec()
	return StagePlan{
		Position: mgl64.Vec3{cur.X() + v.X()*dist, g.cfg.StageHeight / 2, cur.Z() + v.Z()*dist},
		Shape:    shape,
		Size:     size,
		Distance: dist,
	}, dir
}

// direction rejection-samples axis and sign until the heading does not point
// back at prev.
func (g *StageGenerator) direction(prev Direction) Direction {
	for {
		var d Direction
		if g.rng.Intn(2) == 0 {
			d = DirPosX
		} else {
			d = DirPosZ
		}
		if g.rng.Intn(2) == 1 {
			d++ // DirNegX / DirNegZ follow their positive twins
		}
		if d.Dot(prev) >= -0.5 {
			return d
		}
	}
}
