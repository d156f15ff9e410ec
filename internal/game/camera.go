package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/fx"
	"hop/internal/jump"
)

// Camera looks at Target from Target+Offset. Target glides between landings
// through the shared tweener.
type Camera struct {
	Target mgl64.Vec3
	Offset mgl64.Vec3
	FovDeg float64

	// Screen shake.
	ShakeX, ShakeZ float64 // current offset in world units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude

	tweens *fx.Tweener
	rng    *jump.Rand
}

func NewCamera(tweens *fx.Tweener, seed uint64) *Camera {
	return &Camera{
		Offset: mgl64.Vec3{CameraOffsetX, CameraOffsetY, CameraOffsetZ},
		FovDeg: CameraFovDeg,
		tweens: tweens,
		rng:    jump.NewRand(seed),
	}
}

// Reset snaps to target and drops any move in flight.
func (c *Camera) Reset(target mgl64.Vec3) {
	c.tweens.Cancel(fx.CameraMove)
	c.Target = ground(target)
	c.ShakeTimer = 0
}

// Follow glides to target. A newer Follow replaces an unfinished one.
func (c *Camera) Follow(target mgl64.Vec3, now time.Time) {
	c.tweens.Start(fx.CameraMove, c.Target, ground(target), now, fx.CameraMoveDuration)
}

func ground(p mgl64.Vec3) mgl64.Vec3 { return mgl64.Vec3{p.X(), 0, p.Z()} }

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// Update applies the follow tween and decays shake.
func (c *Camera) Update(now time.Time, dt float64) {
	if v, ok := c.tweens.Value(fx.CameraMove, now); ok {
		c.Target = v
	}

	if c.ShakeTimer <= 0 {
		c.ShakeX, c.ShakeZ, c.ShakeIntensity = 0, 0, 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = c.rng.RangeF(-mag, mag)
	c.ShakeZ = c.rng.RangeF(-mag, mag)
}

func (c *Camera) lookAt() mgl64.Vec3 {
	return c.Target.Add(mgl64.Vec3{c.ShakeX, 0, c.ShakeZ})
}

func (c *Camera) Eye() mgl64.Vec3 { return c.lookAt().Add(c.Offset) }

func (c *Camera) View() mgl32.Mat4 {
	eye, at := c.Eye(), c.lookAt()
	return mgl32.LookAtV(vec32(eye), vec32(at), mgl32.Vec3{0, 1, 0})
}

func (c *Camera) Proj(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(1)
	if fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	return mgl32.Perspective(mgl32.DegToRad(float32(c.FovDeg)), aspect, CameraNear, CameraFar)
}

func (c *Camera) ViewProj(fbW, fbH int) mgl32.Mat4 {
	return c.Proj(fbW, fbH).Mul4(c.View())
}

// Project maps a world point to framebuffer pixels, origin top-left. ok is
// false for points behind the eye.
func (c *Camera) Project(p mgl64.Vec3, fbW, fbH int) (x, y float64, ok bool) {
	clip := c.ViewProj(fbW, fbH).Mul4x1(vec32(p).Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := float64(clip.X() / clip.W())
	ndcY := float64(clip.Y() / clip.W())
	x = (ndcX*0.5 + 0.5) * float64(fbW)
	y = (-ndcY*0.5 + 0.5) * float64(fbH)
	return x, y, true
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
