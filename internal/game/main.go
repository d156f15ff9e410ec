package game

import (
	"fmt"
	"math/bits"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"hop/internal/config"
	"hop/internal/fx"
	"hop/internal/jump"
)

// frontend holds the cosmetic state fed by game events.
type frontend struct {
	log       zerolog.Logger
	cam       *Camera
	hud       *HUD
	particles *ParticleSystem
	squash    *Squash
	clock     time.Time

	// Set by event handlers, applied after the tick from a fresh snapshot.
	refocus bool
	snap    bool
}

func (f *frontend) subscribe(bus *jump.EventBus, agentHalfY float64) {
	bus.Subscribe(jump.EventRoundStarted, func(e jump.Event) {
		f.particles.Clear()
		f.hud.Reset()
		f.squash.Reset()
		f.cam.Reset(e.Position)
		f.refocus, f.snap = true, true
		PlaySound(SoundStart)
	})
	bus.Subscribe(jump.EventChargeStarted, func(e jump.Event) {
		f.particles.SpawnChargeCloud(e.Position.Sub(mgl64.Vec3{0, agentHalfY, 0}))
	})
	bus.Subscribe(jump.EventJumped, func(jump.Event) {
		f.particles.ClearKind(ParticleCharge)
		f.squash.Release(f.clock)
		PlaySound(SoundJump)
	})
	bus.Subscribe(jump.EventLanded, func(e jump.Event) {
		foot := e.Position.Sub(mgl64.Vec3{0, agentHalfY, 0})
		f.particles.SpawnLandBurst(foot)
		f.hud.AddPopup(e.Reward, e.Precise, e.Position.Add(mgl64.Vec3{0, agentHalfY, 0}))
		PlayLand(e.Precise, bits.TrailingZeros(uint(e.Reward)))
		f.refocus = true
	})
	bus.Subscribe(jump.EventGameOver, func(e jump.Event) {
		f.particles.ClearKind(ParticleCharge)
		f.cam.AddShake(0.15, 0.35)
		f.hud.RecordScore(e.Score)
		PlaySound(SoundGameOver)
		f.log.Info().Int("score", e.Score).Int("best", f.hud.Best).Msg("round over")
	})
}

// focus frames the midpoint of the current and next platforms.
func focus(snap jump.Snapshot) (mgl64.Vec3, bool) {
	var cur, next *jump.PlatformView
	for i := range snap.Platforms {
		switch snap.Platforms[i].Role {
		case jump.RoleCurrent:
			cur = &snap.Platforms[i]
		case jump.RoleNext:
			next = &snap.Platforms[i]
		}
	}
	if cur == nil {
		return mgl64.Vec3{}, false
	}
	if next == nil {
		return cur.Center, true
	}
	return cur.Center.Add(next.Center).Mul(0.5), true
}

// chargeRatio is the hold as a fraction of the longest useful press.
func chargeRatio(hold float64, cfg jump.Config) float64 {
	return clampF(hold/cfg.MaxPressTime, 0, 1)
}

func RunDesktop(s config.Settings) {
	runtime.LockOSThread()
	log := s.Log.With().Str("frontend", "desktop").Logger()

	window, err := initWindow(WindowWidth, WindowHeight, WindowTitle)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		log.Warn().Err(err).Msg("audio init failed, continuing without sound")
	}
	SetSFXVolume(s.Volume)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	bus := jump.NewEventBus()
	g, err := jump.NewGame(s.Tuning, s.Seed, jump.WithLogger(s.Log), jump.WithEventBus(bus))
	if err != nil {
		panic(fmt.Errorf("game: %w", err))
	}

	tweens := fx.NewTweener()
	f := &frontend{
		log:       log,
		cam:       NewCamera(tweens, s.Seed^0xCA3E),
		hud:       &HUD{},
		particles: NewParticleSystem(MaxParticles, s.Seed^0xBEAD),
		squash:    NewSquash(tweens),
	}
	f.subscribe(bus, s.Tuning.AgentHalfExtents().Y())

	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		t := glfw.GetTime()
		dt := t - last
		last = t
		if dt > 0.1 {
			dt = 0.1
		}
		now := time.Now()
		f.clock = now

		glfw.PollEvents()
		ctl := input.Poll(window)
		if ctl.Quit {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch g.State() {
		case jump.StateIdle, jump.StateGameOver:
			if ctl.Start || ctl.ChargeDown {
				g.Start()
			}
		case jump.StatePlaying:
			if ctl.Start {
				g.Restart()
				break
			}
			if ctl.ChargeDown {
				g.Press(now)
			}
			if ctl.ChargeUp {
				g.Release(now)
			}
		}

		// One fixed world step per frame; vsync holds the frame rate.
		if err := g.Tick(now); err != nil {
			log.Error().Err(err).Msg("tick")
		}

		snap := g.Snapshot()
		if f.refocus {
			if target, ok := focus(snap); ok {
				if f.snap {
					f.cam.Reset(target)
				} else {
					f.cam.Follow(target, now)
				}
			}
			f.refocus, f.snap = false, false
		}

		var hold float64
		if h, ok := g.Charge(now); ok {
			hold = h
		}
		f.squash.Update(snap.Charging, hold, now)
		f.cam.Update(now, dt)
		f.particles.Update(dt, s.Tuning.Gravity)
		f.hud.Update(dt)

		rend.BeginFrame(f.cam, fbW, fbH)
		rend.DrawScene(snap, f.squash.Amount, f.particles)
		RenderHUD(rend, f.hud, f.cam, snap, chargeRatio(hold, s.Tuning), fbW, fbH)

		window.SwapBuffers()
	}
}
