package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"hop/internal/jump"
)

type ParticleKind uint8

const (
	ParticleCharge ParticleKind = iota // hovers over the platform while charging
	ParticleDust                       // kicked up by a landing
)

type Particle struct {
	Pos, Vel mgl64.Vec3
	Size     float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *jump.Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: jump.NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// ClearKind drops every particle of kind k.
func (ps *ParticleSystem) ClearKind(k ParticleKind) {
	out := ps.P[:0]
	for _, p := range ps.P {
		if p.Kind != k {
			out = append(out, p)
		}
	}
	ps.P = out
	ps.ovrIdx = 0
}

// SpawnChargeCloud scatters a loose cloud above center.
func (ps *ParticleSystem) SpawnChargeCloud(center mgl64.Vec3) {
	for i := 0; i < ChargeParticles; i++ {
		r := ChargeCloudRadius
		ps.Add(Particle{
			Pos: center.Add(mgl64.Vec3{
				ps.rng.RangeF(-r, r),
				ChargeCloudLift + ps.rng.RangeF(-r, r),
				ps.rng.RangeF(-r, r),
			}),
			Vel:     mgl64.Vec3{0, ps.rng.RangeF(0.05, 0.25), 0},
			Size:    0.05,
			Life:    -ps.rng.RangeF(0, 0.4),
			MaxLife: ps.rng.RangeF(0.6, 1.2),
			Col:     Palette.Spark,
			Kind:    ParticleCharge,
		})
	}
}

// SpawnLandBurst throws a ring of dust out from a landing point.
func (ps *ParticleSystem) SpawnLandBurst(at mgl64.Vec3) {
	for i := 0; i < LandBurstCount; i++ {
		a := float64(i) / LandBurstCount * 2 * math.Pi
		speed := ps.rng.RangeF(0.8, 1.6)
		ps.Add(Particle{
			Pos:     at,
			Vel:     mgl64.Vec3{math.Cos(a) * speed, ps.rng.RangeF(0.5, 1.5), math.Sin(a) * speed},
			Size:    0.07,
			MaxLife: ps.rng.RangeF(0.3, 0.5),
			Col:     Palette.Dust,
			Kind:    ParticleDust,
		})
	}
}

// Update ages particles and drops the expired ones. Charge particles loop
// until cleared.
func (ps *ParticleSystem) Update(dt, gravity float64) {
	out := ps.P[:0]
	for _, p := range ps.P {
		p.Life += dt
		if p.Life < 0 {
			out = append(out, p)
			continue
		}
		if p.Life >= p.MaxLife {
			if p.Kind != ParticleCharge {
				continue
			}
			p.Life = 0
			p.Pos[1] -= p.Vel.Y() * p.MaxLife
		}
		if p.Kind == ParticleDust {
			p.Vel[1] += gravity * 0.2 * dt
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		out = append(out, p)
	}
	ps.P = out
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// RenderData appends live particles as [x, y, z, size, r, g, b, a] sprites.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		t := clampF(p.Life/p.MaxLife, 0, 1)
		a := 1 - t
		if p.Kind == ParticleCharge {
			// Fade in and out so looping is invisible.
			a = math.Sin(t*math.Pi) * 0.8
		}
		if a <= 0 {
			continue
		}
		r, g, b := p.Col.F32()
		buf = append(buf,
			float32(p.Pos.X()), float32(p.Pos.Y()), float32(p.Pos.Z()), float32(p.Size),
			r, g, b, float32(a),
		)
	}
	return buf
}
