package jump

import "github.com/go-gl/mathgl/mgl64"

// Predictor previews a flight by repeating the world's integrator on copies
// of the launch state.
type Predictor struct {
	cfg Config
}

func NewPredictor(cfg Config) Predictor {
	return Predictor{cfg: cfg}
}

// Compensation scales preview horizontal speed. The correction is largest for
// the weakest jump and vanishes at full charge.
func (p Predictor) Compensation(ratio float64) float64 {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return 1 - p.cfg.CompensationMax*(1-ratio)
}

// Predict returns PreviewSteps points starting one step after start. Once the
// descending path crosses the platform top, the crossing point is interpolated
// and every later point repeats it.
func (p Predictor) Predict(start, vel mgl64.Vec3, ratio float64) []mgl64.Vec3 {
	dt := p.cfg.TickDT()
	top := p.cfg.StageHeight
	k := 1 - p.cfg.LinearDamping*dt

	c := p.Compensation(ratio)
	v := mgl64.Vec3{vel.X() * c, vel.Y(), vel.Z() * c}
	pos := start

	points := make([]mgl64.Vec3, 0, p.cfg.PreviewSteps)
	landed := false
	for i := 0; i < p.cfg.PreviewSteps; i++ {
		if landed {
			points = append(points, pos)
			continue
		}
		prev := pos
		v[1] += p.cfg.Gravity * dt
		v[0] *= k
		v[2] *= k
		pos = pos.Add(v.Mul(dt))

		if v.Y() < 0 && prev.Y() > top && pos.Y() <= top {
			t := (prev.Y() - top) / (prev.Y() - pos.Y())
			pos = prev.Add(pos.Sub(prev).Mul(t))
			pos[1] = top
			landed = true
		}
		points = append(points, pos)
	}
	return points
}
