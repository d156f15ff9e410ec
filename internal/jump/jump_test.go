package jump

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/physics"
)

func TestClampStaysInRange(t *testing.T) {
	cfg := DefaultConfig()
	j := NewJumpController(cfg)
	for _, d := range []float64{-1, 0, 0.05, 0.1, 0.7, 1.5, 2, 100} {
		c := j.Clamp(d)
		if c < cfg.MinPressTime || c > cfg.MaxPressTime {
			t.Fatalf("clamp(%f) = %f out of range", d, c)
		}
	}
}

func TestSpeedMonotoneInHold(t *testing.T) {
	j := NewJumpController(DefaultConfig())
	prevH, prevV := -1.0, -1.0
	for d := 0.0; d <= 2; d += 0.01 {
		h, v := j.Speeds(d)
		if h < prevH || v < prevV {
			t.Fatalf("speed dropped at d=%f: (%f,%f) after (%f,%f)", d, h, v, prevH, prevV)
		}
		prevH, prevV = h, v
	}
	if r := j.Ratio(1.5); r != 1 {
		t.Fatalf("full charge ratio: got %f want 1", r)
	}
	h, v := j.Speeds(10)
	if h != 8 || v != 12 {
		t.Fatalf("full charge speeds: got (%f,%f)", h, v)
	}
	wantRatio := math.Sqrt(0.1 / 1.5)
	if r := j.Ratio(0); math.Abs(r-wantRatio) > 1e-12 {
		t.Fatalf("min ratio: got %f want %f", r, wantRatio)
	}
}

func TestChargeDuration(t *testing.T) {
	t0 := time.Unix(100, 0)
	c := ChargeSession{Start: t0}
	if d := c.Duration(t0.Add(750 * time.Millisecond)); d != 0.75 {
		t.Fatalf("duration: got %f", d)
	}
	if d := c.Duration(t0.Add(-time.Second)); d != 0 {
		t.Fatalf("clock going backwards should clamp to zero, got %f", d)
	}
}

func TestAimFallsBack(t *testing.T) {
	j := NewJumpController(DefaultConfig())
	w := physics.NewWorld(-30)
	next := &Platform{Body: w.Add(physics.BodyConfig{
		Shape:    physics.Box(mgl64.Vec3{0.5, 0.25, 0.5}),
		Position: mgl64.Vec3{3, 0.25, 4},
		Tag:      physics.TagPlatform,
	})}

	aim := j.Aim(mgl64.Vec3{0, 1, 0}, next, DirNegZ)
	if !aim.ApproxEqual(mgl64.Vec3{0.6, 0, 0.8}) {
		t.Fatalf("aim toward next: got %v", aim)
	}
	if aim := j.Aim(mgl64.Vec3{}, nil, DirNegZ); aim != DirNegZ.Vec() {
		t.Fatalf("missing next: got %v", aim)
	}
	if aim := j.Aim(mgl64.Vec3{3, 2, 4}, next, DirPosZ); aim != DirPosZ.Vec() {
		t.Fatalf("coincident next: got %v", aim)
	}
}

func TestApplyOverwritesVelocity(t *testing.T) {
	cfg := DefaultConfig()
	j := NewJumpController(cfg)
	w := physics.NewWorld(cfg.Gravity)
	a := newAgent(w, cfg)
	a.Body.Velocity = mgl64.Vec3{5, 3, 2}
	a.armGuard(6)

	vel := j.Apply(a, 1.5, nil, DirPosX)
	if vel != (mgl64.Vec3{8, 12, 0}) || a.Body.Velocity != vel {
		t.Fatalf("velocity: got %v", a.Body.Velocity)
	}
	if math.Abs(a.Body.Position.Y()-(cfg.AgentStartY+cfg.JumpLift)) > 1e-12 {
		t.Fatalf("lift not applied: %v", a.Body.Position)
	}
	if a.Landing() {
		t.Fatalf("guard should be cleared")
	}
}

func TestAbsorbKeepsShareOfVerticalSpeed(t *testing.T) {
	cfg := DefaultConfig()
	a := newAgent(physics.NewWorld(cfg.Gravity), cfg)
	a.Body.Velocity = mgl64.Vec3{5, 3, 2}
	a.Body.AngularVelocity = mgl64.Vec3{1, 1, 1}
	a.absorb(0.3)
	if !a.Body.Velocity.ApproxEqual(mgl64.Vec3{0, 0.9, 0}) {
		t.Fatalf("velocity: got %v want (0, 0.9, 0)", a.Body.Velocity)
	}
	if a.Body.AngularVelocity != (mgl64.Vec3{}) {
		t.Fatalf("angular velocity not cleared")
	}
}

func TestFaceTurnsTowardTarget(t *testing.T) {
	cfg := DefaultConfig()
	a := newAgent(physics.NewWorld(cfg.Gravity), cfg)
	a.Face(mgl64.Vec3{3, 0, 0})
	if math.Abs(a.Yaw-math.Pi/2) > 1e-12 {
		t.Fatalf("yaw toward +X: got %f", a.Yaw)
	}
	a.Face(a.Position())
	if math.Abs(a.Yaw-math.Pi/2) > 1e-12 {
		t.Fatalf("facing itself should keep yaw, got %f", a.Yaw)
	}
}
