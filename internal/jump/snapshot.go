package jump

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// PlatformView is a platform as front-ends draw it.
type PlatformView struct {
	Center mgl64.Vec3
	Shape  StageShape
	Size   float64
	Height float64
	Role   Role
}

// Snapshot is a copy of the round for rendering. Mutating it has no effect
// on the game.
type Snapshot struct {
	RoundID    uuid.UUID
	State      State
	Score      int
	Multiplier int

	Agent     mgl64.Vec3
	AgentHalf mgl64.Vec3
	AgentYaw  float64
	Airborne  bool

	Platforms []PlatformView
	Direction Direction

	Charging    bool
	ChargeStart time.Time
	Preview     []mgl64.Vec3
}

// Snapshot returns the current round. Before the first start it holds only
// the state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{State: g.state, Multiplier: 1}
	r := g.round
	if r == nil {
		return s
	}
	s.RoundID = r.ID
	s.Score = r.Score.Total
	s.Multiplier = r.Score.Multiplier
	s.Agent = r.Agent.Position()
	s.AgentHalf = r.Agent.Body.Shape().HalfExtents
	s.AgentYaw = r.Agent.Yaw
	s.Airborne = r.Agent.airborne
	s.Direction = r.Direction
	s.Charging = r.charging
	s.ChargeStart = r.charge.Start
	s.Preview = g.Preview()

	s.Platforms = make([]PlatformView, 0, len(r.Platforms))
	for _, p := range r.Platforms {
		s.Platforms = append(s.Platforms, PlatformView{
			Center: p.Center(),
			Shape:  p.Shape,
			Size:   p.Size,
			Height: g.cfg.StageHeight,
			Role:   p.Role,
		})
	}
	return s
}
