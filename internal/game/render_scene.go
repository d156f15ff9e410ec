package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/fx"
	"hop/internal/jump"
)

// Squash tracks the charge squash of the agent and the platform under it.
// It follows the hold while charging and eases back to rest after release.
type Squash struct {
	Amount float64
	tweens *fx.Tweener
}

func NewSquash(tweens *fx.Tweener) *Squash {
	return &Squash{tweens: tweens}
}

// Update follows the hold while charging, otherwise the recover tween.
func (s *Squash) Update(charging bool, hold float64, now time.Time) {
	if charging {
		s.tweens.Cancel(fx.SquashRecover)
		s.Amount = fx.SquashAmount(hold)
		return
	}
	if v, ok := s.tweens.Value(fx.SquashRecover, now); ok {
		s.Amount = v.X()
	}
}

// Release starts easing back from the current amount.
func (s *Squash) Release(now time.Time) {
	s.tweens.Start(fx.SquashRecover, mgl64.Vec3{s.Amount, 0, 0}, mgl64.Vec3{}, now, fx.SquashRecoverDuration)
}

func (s *Squash) Reset() {
	s.tweens.Cancel(fx.SquashRecover)
	s.Amount = 0
}

// platformColor picks a fill by role and shape.
func platformColor(p jump.PlatformView) RGB {
	base := Palette.StageBox
	if p.Shape == jump.StageCylinder {
		base = Palette.StageCyl
	}
	switch p.Role {
	case jump.RoleCurrent:
		return base
	case jump.RoleNext:
		return lerpRGB(base, Palette.StageTarget, 0.5)
	}
	return lerpRGB(base, Palette.StageOld, 0.6)
}

// platformModel scales the unit mesh to the platform. The squash keeps the
// bottom face fixed.
func platformModel(p jump.PlatformView, stageY float64) mgl32.Mat4 {
	h := p.Height * stageY
	cy := p.Center.Y() - p.Height/2 + h/2
	return mgl32.Translate3D(float32(p.Center.X()), float32(cy), float32(p.Center.Z())).
		Mul4(mgl32.Scale3D(float32(p.Size), float32(h), float32(p.Size)))
}

// agentModels returns the body and head transforms. drop lowers the agent by
// the amount the platform under it was squashed.
func agentModels(snap jump.Snapshot, agentY, drop float64) (body, head mgl32.Mat4) {
	half := snap.AgentHalf
	bottom := snap.Agent.Y() - half.Y() - drop
	height := 2 * half.Y() * agentY
	bodyH := height * 0.72
	headH := height - bodyH

	base := mgl32.Translate3D(float32(snap.Agent.X()), float32(bottom), float32(snap.Agent.Z())).
		Mul4(mgl32.HomogRotate3DY(float32(snap.AgentYaw)))

	body = base.Mul4(mgl32.Translate3D(0, float32(bodyH/2), 0)).
		Mul4(mgl32.Scale3D(float32(2*half.X()), float32(bodyH), float32(2*half.Z())))
	head = base.Mul4(mgl32.Translate3D(0, float32(bodyH+headH/2), 0)).
		Mul4(mgl32.Scale3D(float32(1.3*half.X()), float32(headH), float32(1.3*half.Z())))
	return body, head
}

// PreviewSprites turns predicted points into dots.
func PreviewSprites(buf []float32, pts []mgl64.Vec3) []float32 {
	buf = buf[:0]
	r, g, b := Palette.Preview.F32()
	for i := 0; i < len(pts); i += PreviewDotStride {
		p := pts[i]
		a := float32(0.9 - 0.5*float64(i)/float64(len(pts)))
		buf = append(buf, float32(p.X()), float32(p.Y()), float32(p.Z()), PreviewDotSize, r, g, b, a)
	}
	return buf
}

// DrawScene renders platforms, the agent, the preview arc and particles.
func (r *Renderer) DrawScene(snap jump.Snapshot, squash float64, ps *ParticleSystem) {
	if len(snap.Platforms) == 0 {
		return
	}
	agentY, stageY := fx.SquashScales(squash)

	var drop float64
	for _, p := range snap.Platforms {
		sy := 1.0
		if p.Role == jump.RoleCurrent {
			sy = stageY
			if !snap.Airborne {
				drop = p.Height * (1 - stageY)
			}
		}
		kind := MeshBox
		if p.Shape == jump.StageCylinder {
			kind = MeshCylinder
		}
		r.DrawMesh(kind, platformModel(p, sy), platformColor(p))
	}

	body, head := agentModels(snap, agentY, drop)
	r.DrawMesh(MeshBox, body, Palette.Agent)
	r.DrawMesh(MeshBox, head, Palette.AgentHead)

	if snap.Charging {
		r.spriteBuf = PreviewSprites(r.spriteBuf, snap.Preview)
		r.DrawSprites(r.spriteBuf, false)
	}
	if ps != nil {
		r.spriteBuf = ps.RenderData(r.spriteBuf)
		r.DrawSprites(r.spriteBuf, true)
	}
}
