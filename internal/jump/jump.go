package jump

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ChargeSession is an in-progress press.
type ChargeSession struct {
	Start time.Time
}

// Duration is the wall-clock hold time in seconds, never negative.
func (c ChargeSession) Duration(now time.Time) float64 {
	d := now.Sub(c.Start).Seconds()
	if d < 0 {
		return 0
	}
	return d
}

// JumpController turns a hold duration into a launch velocity.
type JumpController struct {
	cfg Config
}

func NewJumpController(cfg Config) *JumpController {
	return &JumpController{cfg: cfg}
}

func (j *JumpController) Clamp(d float64) float64 {
	if d < j.cfg.MinPressTime {
		return j.cfg.MinPressTime
	}
	if d > j.cfg.MaxPressTime {
		return j.cfg.MaxPressTime
	}
	return d
}

// Ratio maps a hold duration to sqrt(clamped/max), in (0, 1].
func (j *JumpController) Ratio(d float64) float64 {
	return math.Sqrt(j.Clamp(d) / j.cfg.MaxPressTime)
}

// Speeds returns the horizontal and vertical launch speeds for d.
func (j *JumpController) Speeds(d float64) (h, v float64) {
	r := j.Ratio(d)
	return r * j.cfg.HorizontalForce, r * j.cfg.VerticalForce
}

// Aim returns the unit ground-plane heading from `from` to the next platform,
// or the fallback heading when there is no next platform or it sits
// directly underneath.
func (j *JumpController) Aim(from mgl64.Vec3, next *Platform, fallback Direction) mgl64.Vec3 {
	if next != nil {
		c := next.Center()
		d := mgl64.Vec3{c.X() - from.X(), 0, c.Z() - from.Z()}
		if l := d.Len(); l > 1e-9 {
			return d.Mul(1 / l)
		}
	}
	return fallback.Vec()
}

// Velocity is the launch vector for a hold of d seconds along aim.
func (j *JumpController) Velocity(d float64, aim mgl64.Vec3) mgl64.Vec3 {
	h, v := j.Speeds(d)
	return mgl64.Vec3{aim.X() * h, v, aim.Z() * h}
}

// Apply launches the agent: lift it clear of the platform it rests on,
// overwrite its velocity and clear the landing guard. It returns the velocity.
func (j *JumpController) Apply(a *Agent, d float64, next *Platform, fallback Direction) mgl64.Vec3 {
	aim := j.Aim(a.Body.Position, next, fallback)
	vel := j.Velocity(d, aim)

	a.Body.Position[1] += j.cfg.JumpLift
	a.Body.Velocity = vel
	a.clearGuard()
	return vel
}
