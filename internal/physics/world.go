package physics

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrReentrantStep is returned when a collision handler calls Step.
var ErrReentrantStep = errors.New("physics: step called from inside a collision handler")

// CollisionEvent is delivered synchronously from inside Step, once per
// overlapping (dynamic, static) pair, before the contact is resolved.
type CollisionEvent struct {
	Body        *Body // the dynamic body
	Other       *Body
	Normal      mgl64.Vec3 // from Other toward Body
	Point       mgl64.Vec3
	Penetration float64
}

type CollisionHandler func(CollisionEvent)

// World is a fixed-step simulator for a handful of axis-aligned bodies.
// It is not safe for concurrent use.
type World struct {
	Gravity float64

	bodies   []*Body
	handlers []CollisionHandler
	nextID   uint64
	steps    uint64
	stepping bool
}

func NewWorld(gravity float64) *World {
	return &World{Gravity: gravity}
}

// Add creates a body from cfg and registers it.
func (w *World) Add(cfg BodyConfig) *Body {
	w.nextID++
	b := newBody(w.nextID, cfg)
	w.bodies = append(w.bodies, b)
	return b
}

// Remove unregisters b. Removing a nil or unknown body is a no-op.
func (w *World) Remove(b *Body) {
	if b == nil {
		return
	}
	for i, o := range w.bodies {
		if o == b {
			copy(w.bodies[i:], w.bodies[i+1:])
			w.bodies[len(w.bodies)-1] = nil
			w.bodies = w.bodies[:len(w.bodies)-1]
			return
		}
	}
}

func (w *World) Contains(b *Body) bool {
	for _, o := range w.bodies {
		if o == b {
			return true
		}
	}
	return false
}

func (w *World) Len() int      { return len(w.bodies) }
func (w *World) Steps() uint64 { return w.steps }

// Bodies returns a copy of the registered bodies.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// OnCollide registers a handler for every contact found during Step.
func (w *World) OnCollide(h CollisionHandler) {
	w.handlers = append(w.handlers, h)
}

// Step integrates every dynamic body by dt, then tests it against every static
// body. Handlers run before each contact is resolved and may change velocities,
// add or remove bodies; additions take effect on the next step.
func (w *World) Step(dt float64) error {
	if w.stepping {
		return ErrReentrantStep
	}
	w.stepping = true
	defer func() { w.stepping = false }()

	bodies := w.Bodies()
	for _, b := range bodies {
		if !b.Static() {
			b.integrate(w.Gravity, dt)
		}
	}

	for _, b := range bodies {
		if b.Static() {
			continue
		}
		for _, s := range bodies {
			if !s.Static() || !w.Contains(b) || !w.Contains(s) {
				continue
			}
			c, ok := detect(b, s)
			if !ok {
				continue
			}
			ev := CollisionEvent{
				Body:        b,
				Other:       s,
				Normal:      c.normal,
				Point:       c.point,
				Penetration: c.penetration,
			}
			for _, h := range w.handlers {
				h(ev)
			}
			resolve(b, c)
		}
	}

	w.steps++
	return nil
}
