package jump

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/physics"
)

func TestCompensationShrinksWithCharge(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	if c := p.Compensation(1); c != 1 {
		t.Fatalf("full charge: got %f want 1", c)
	}
	if c := p.Compensation(0); math.Abs(c-0.94) > 1e-12 {
		t.Fatalf("no charge: got %f want 0.94", c)
	}
	prev := 0.0
	for r := 0.0; r <= 1; r += 0.05 {
		c := p.Compensation(r)
		if c < prev {
			t.Fatalf("correction grew with charge at ratio %f", r)
		}
		prev = c
	}
}

func TestPredictTerminatesAtPlatformTop(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPredictor(cfg)
	j := NewJumpController(cfg)
	start := mgl64.Vec3{0, cfg.StageHeight + cfg.JumpLift, 0}

	for _, hold := range []float64{0.1, 0.4, 0.9, 1.5} {
		vel := j.Velocity(hold, DirPosX.Vec())
		points := p.Predict(start, vel, j.Ratio(hold))
		if len(points) != cfg.PreviewSteps {
			t.Fatalf("hold %f: %d points", hold, len(points))
		}
		last := points[len(points)-1]
		if math.Abs(last.Y()-cfg.StageHeight) > 1e-9 {
			t.Fatalf("hold %f: terminal height %f want %f", hold, last.Y(), cfg.StageHeight)
		}
		// Everything after the crossing is clamped to it.
		first := -1
		for i, q := range points {
			if q.Y() <= cfg.StageHeight {
				first = i
				break
			}
		}
		if first < 0 {
			t.Fatalf("hold %f: path never reached the top", hold)
		}
		for _, q := range points[first:] {
			if q != last {
				t.Fatalf("hold %f: point %v after terminal %v", hold, q, last)
			}
		}
	}
}

func TestPredictMatchesWorldIntegration(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPredictor(cfg)
	w := physics.NewWorld(cfg.Gravity)
	a := newAgent(w, cfg)
	a.Body.Position = mgl64.Vec3{0, 5, 0}
	vel := mgl64.Vec3{8, 12, 0}
	a.Body.Velocity = vel

	foot := a.Body.Position.Sub(mgl64.Vec3{0, cfg.AgentHalfExtents().Y(), 0})
	// Full charge disables compensation, so the paths must agree exactly.
	points := p.Predict(foot, vel, 1)
	for i := 0; i < 30; i++ {
		if err := w.Step(cfg.TickDT()); err != nil {
			t.Fatalf("step: %v", err)
		}
		got := mgl64.Vec3{a.Body.Position.X(), a.Body.Bottom(), a.Body.Position.Z()}
		if !got.ApproxEqualThreshold(points[i], 1e-9) {
			t.Fatalf("step %d: world %v preview %v", i, got, points[i])
		}
	}
}

func TestPredictCompensatesShortJumps(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPredictor(cfg)
	vel := mgl64.Vec3{2, 3, 0}
	start := mgl64.Vec3{0, 1, 0}
	full := p.Predict(start, vel, 1)
	short := p.Predict(start, vel, 0.25)
	if short[len(short)-1].X() >= full[len(full)-1].X() {
		t.Fatalf("compensated path should land shorter: %v vs %v", short[len(short)-1], full[len(full)-1])
	}
}
