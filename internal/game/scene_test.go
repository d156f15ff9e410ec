package game

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/fx"
	"hop/internal/jump"
)

func TestSquashFollowsHoldThenRecovers(t *testing.T) {
	s := NewSquash(fx.NewTweener())
	t0 := time.Unix(0, 0)

	s.Update(true, 0.5, t0)
	if math.Abs(s.Amount-0.15) > 1e-12 {
		t.Fatalf("amount while charging: got %f want 0.15", s.Amount)
	}
	s.Update(true, 4, t0)
	if s.Amount != 0.3 {
		t.Fatalf("amount should saturate at 0.3, got %f", s.Amount)
	}

	s.Release(t0)
	s.Update(false, 0, t0.Add(fx.SquashRecoverDuration/2))
	if s.Amount <= 0 || s.Amount >= 0.3 {
		t.Fatalf("midway recovery amount %f", s.Amount)
	}
	s.Update(false, 0, t0.Add(fx.SquashRecoverDuration))
	if s.Amount != 0 {
		t.Fatalf("recovered amount: got %f want 0", s.Amount)
	}
}

func TestPlatformModelKeepsBottom(t *testing.T) {
	p := jump.PlatformView{Center: mgl64.Vec3{1, 0.25, 2}, Size: 1.2, Height: 0.5}
	m := platformModel(p, 0.85)
	bottom := m.Mul4x1(mgl32.Vec4{0, -0.5, 0, 1})
	top := m.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1})
	if math.Abs(float64(bottom.Y())) > 1e-6 {
		t.Fatalf("bottom moved to %f", bottom.Y())
	}
	if math.Abs(float64(top.Y())-0.425) > 1e-6 {
		t.Fatalf("squashed top: got %f want 0.425", top.Y())
	}
	edge := m.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1})
	if math.Abs(float64(edge.X())-1.6) > 1e-6 {
		t.Fatalf("footprint edge: got %f want 1.6", edge.X())
	}
}

func TestAgentModelsStackHeadOnBody(t *testing.T) {
	snap := jump.Snapshot{Agent: mgl64.Vec3{0, 1, 0}, AgentHalf: mgl64.Vec3{0.25, 0.5, 0.25}}
	body, head := agentModels(snap, 1, 0)
	bodyBottom := body.Mul4x1(mgl32.Vec4{0, -0.5, 0, 1}).Y()
	bodyTop := body.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1}).Y()
	headBottom := head.Mul4x1(mgl32.Vec4{0, -0.5, 0, 1}).Y()
	headTop := head.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1}).Y()
	if math.Abs(float64(bodyBottom)-0.5) > 1e-6 || math.Abs(float64(headTop)-1.5) > 1e-6 {
		t.Fatalf("agent spans %f..%f, want 0.5..1.5", bodyBottom, headTop)
	}
	if math.Abs(float64(bodyTop-headBottom)) > 1e-6 {
		t.Fatalf("head should sit on the body: %f vs %f", bodyTop, headBottom)
	}
}

func TestFocusMidpoint(t *testing.T) {
	snap := jump.Snapshot{Platforms: []jump.PlatformView{
		{Center: mgl64.Vec3{-3, 0.25, 0}},
		{Center: mgl64.Vec3{0, 0.25, 0}, Role: jump.RoleCurrent},
		{Center: mgl64.Vec3{4, 0.25, 0}, Role: jump.RoleNext},
	}}
	got, ok := focus(snap)
	if !ok || got != (mgl64.Vec3{2, 0.25, 0}) {
		t.Fatalf("focus: got %v ok=%v", got, ok)
	}
	if _, ok := focus(jump.Snapshot{}); ok {
		t.Fatalf("empty snapshot should have no focus")
	}
}

func TestPreviewSpritesStride(t *testing.T) {
	pts := make([]mgl64.Vec3, 10)
	buf := PreviewSprites(nil, pts)
	want := (len(pts) + PreviewDotStride - 1) / PreviewDotStride
	if len(buf) != want*8 {
		t.Fatalf("dots: got %d want %d", len(buf)/8, want)
	}
}

func TestPlatformColorByRole(t *testing.T) {
	cur := platformColor(jump.PlatformView{Role: jump.RoleCurrent, Shape: jump.StageCylinder})
	if cur != Palette.StageCyl {
		t.Fatalf("current cylinder should use its shape colour")
	}
	next := platformColor(jump.PlatformView{Role: jump.RoleNext})
	old := platformColor(jump.PlatformView{Role: jump.RoleNone})
	if next == old || next == Palette.StageBox {
		t.Fatalf("next platform should stand out")
	}
}

func TestChargeRatio(t *testing.T) {
	cfg := jump.DefaultConfig()
	if r := chargeRatio(cfg.MaxPressTime*2, cfg); r != 1 {
		t.Fatalf("ratio clamps at 1, got %f", r)
	}
	if r := chargeRatio(cfg.MaxPressTime/2, cfg); math.Abs(r-0.5) > 1e-12 {
		t.Fatalf("half hold: got %f", r)
	}
}
