package jump

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/physics"
)

// Agent is the jumping body plus the transient flags that gate landings and
// charges.
type Agent struct {
	Body *physics.Body
	Yaw  float64 // radians about +Y; 0 faces +Z

	landing  bool // a landing is being absorbed
	cooldown int  // ticks until landing clears
	airborne bool // released and not yet back on a top face
}

func newAgent(w *physics.World, cfg Config) *Agent {
	b := w.Add(physics.BodyConfig{
		Mass:           cfg.AgentMass,
		Shape:          physics.Box(cfg.AgentHalfExtents()),
		Position:       cfg.AgentStart(),
		LinearDamping:  cfg.LinearDamping,
		AngularDamping: cfg.AngularDamping,
		Tag:            physics.TagAgent,
	})
	return &Agent{Body: b}
}

func (a *Agent) Position() mgl64.Vec3 { return a.Body.Position }

// Landing reports whether the landing guard is set.
func (a *Agent) Landing() bool  { return a.landing }
func (a *Agent) Airborne() bool { return a.airborne }

// Face turns the agent toward target on the ground plane.
func (a *Agent) Face(target mgl64.Vec3) {
	dx := target.X() - a.Body.Position.X()
	dz := target.Z() - a.Body.Position.Z()
	if dx == 0 && dz == 0 {
		return
	}
	a.Yaw = math.Atan2(dx, dz)
}

func (a *Agent) armGuard(ticks int) {
	a.landing = true
	a.cooldown = ticks
}

func (a *Agent) clearGuard() {
	a.landing = false
	a.cooldown = 0
}

// tickGuard counts the cooldown down and clears the guard when it expires.
func (a *Agent) tickGuard() {
	if !a.landing {
		return
	}
	a.cooldown--
	if a.cooldown <= 0 {
		a.clearGuard()
	}
}

// absorb kills horizontal and angular motion and keeps a share of the
// vertical speed so the body settles instead of bouncing.
func (a *Agent) absorb(keep float64) {
	v := a.Body.Velocity
	a.Body.Velocity = mgl64.Vec3{0, v.Y() * keep, 0}
	a.Body.AngularVelocity = mgl64.Vec3{}
}
