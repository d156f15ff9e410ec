// Package fx drives cosmetic interpolations. Nothing here feeds back into
// gameplay.
package fx

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies an effect slot. At most one tween per kind is in flight.
type Kind uint8

const (
	CameraMove Kind = iota
	SquashRecover
)

const (
	CameraMoveDuration    = time.Second
	SquashRecoverDuration = 200 * time.Millisecond
)

func EaseInOutQuad(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Tween eases between two vectors over a wall-clock window.
type Tween struct {
	From, To mgl64.Vec3
	Start    time.Time
	Duration time.Duration
}

// At returns the eased value at now and whether the window has elapsed.
func (tw Tween) At(now time.Time) (mgl64.Vec3, bool) {
	if tw.Duration <= 0 {
		return tw.To, true
	}
	p := float64(now.Sub(tw.Start)) / float64(tw.Duration)
	if p >= 1 {
		return tw.To, true
	}
	if p < 0 {
		p = 0
	}
	e := EaseInOutQuad(p)
	return tw.From.Add(tw.To.Sub(tw.From).Mul(e)), false
}

// Tweener keeps one tween per kind. Starting a kind replaces any tween of
// that kind still in flight.
type Tweener struct {
	active map[Kind]Tween
}

func NewTweener() *Tweener {
	return &Tweener{active: make(map[Kind]Tween)}
}

func (t *Tweener) Start(k Kind, from, to mgl64.Vec3, now time.Time, d time.Duration) {
	t.active[k] = Tween{From: from, To: to, Start: now, Duration: d}
}

// Value samples kind k. Finished tweens report their end value once and are
// dropped; ok is false when nothing of that kind is running.
func (t *Tweener) Value(k Kind, now time.Time) (v mgl64.Vec3, ok bool) {
	tw, found := t.active[k]
	if !found {
		return mgl64.Vec3{}, false
	}
	v, done := tw.At(now)
	if done {
		delete(t.active, k)
	}
	return v, true
}

func (t *Tweener) Active(k Kind) bool {
	_, ok := t.active[k]
	return ok
}

func (t *Tweener) Cancel(k Kind) { delete(t.active, k) }

func (t *Tweener) Clear() {
	for k := range t.active {
		delete(t.active, k)
	}
}
