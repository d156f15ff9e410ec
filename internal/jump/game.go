package jump

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hop/internal/physics"
)

type State int

const (
	StateIdle State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	}
	return "idle"
}

// Round is everything that lives for one attempt. It is replaced wholesale
// on every start.
type Round struct {
	ID        uuid.UUID
	Score     Score
	Agent     *Agent
	Current   *Platform
	Next      *Platform
	Platforms []*Platform
	Direction Direction // heading used to place Next

	Jumps    int
	Landings int

	charging bool
	charge   ChargeSession
	preview  []mgl64.Vec3
}

type Option func(*Game)

func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

func WithEventBus(b *EventBus) Option {
	return func(g *Game) { g.bus = b }
}

// Game owns the physics world and drives rounds through
// Idle -> Playing -> GameOver -> Playing. It is not safe for concurrent use;
// front-ends call it from their tick loop only.
type Game struct {
	cfg       Config
	log       zerolog.Logger
	bus       *EventBus
	world     *physics.World
	floor     *physics.Body
	gen       *StageGenerator
	jumper    *JumpController
	classify  Classifier
	predictor Predictor

	state State
	round *Round
	final int
}

func NewGame(cfg Config, seed uint64, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		cfg:       cfg,
		log:       zerolog.Nop(),
		world:     physics.NewWorld(cfg.Gravity),
		gen:       NewStageGenerator(cfg, NewRand(seed)),
		jumper:    NewJumpController(cfg),
		classify:  Classifier{FootNormalMin: cfg.FootNormalMin},
		predictor: NewPredictor(cfg),
	}
	for _, o := range opts {
		o(g)
	}
	if g.bus == nil {
		g.bus = NewEventBus()
	}
	g.floor = g.world.Add(physics.BodyConfig{
		Shape:    physics.Plane(),
		Position: mgl64.Vec3{0, cfg.VoidFloorY, 0},
		Tag:      physics.TagVoidFloor,
	})
	g.world.OnCollide(g.handleCollision)
	return g, nil
}

func (g *Game) Config() Config   { return g.cfg }
func (g *Game) Events() *EventBus { return g.bus }
func (g *Game) State() State      { return g.state }

func (g *Game) Score() int {
	if g.round == nil {
		return 0
	}
	return g.round.Score.Total
}

func (g *Game) Multiplier() int {
	if g.round == nil {
		return 1
	}
	return g.round.Score.Multiplier
}

// GameOver reports whether the last round ended and its final score.
func (g *Game) GameOver() (bool, int) {
	return g.state == StateGameOver, g.final
}

// Start begins a fresh round from any state.
func (g *Game) Start() {
	g.teardown()
	g.round = g.newRound()
	g.state = StatePlaying
	g.final = 0

	g.log.Info().Str("round", g.round.ID.String()).Msg("round started")
	g.bus.Emit(Event{Type: EventRoundStarted, Position: g.round.Agent.Position()})
}

// Restart is Start; both commands share one transition.
func (g *Game) Restart() { g.Start() }

// teardown removes every body the round registered. It is safe without a
// round and safe to repeat.
func (g *Game) teardown() {
	r := g.round
	if r == nil {
		return
	}
	for _, p := range r.Platforms {
		g.world.Remove(p.Body)
	}
	if r.Agent != nil {
		g.world.Remove(r.Agent.Body)
	}
	g.round = nil
}

func (g *Game) newRound() *Round {
	r := &Round{
		ID:        uuid.New(),
		Score:     NewScore(),
		Direction: DirPosX,
	}
	r.Current = g.spawn(r, g.gen.First(), RoleCurrent)
	r.Agent = newAgent(g.world, g.cfg)
	g.spawnNext(r)
	r.Agent.Face(r.Next.Center())
	return r
}

func (g *Game) spawn(r *Round, plan StagePlan, role Role) *Platform {
	b := g.world.Add(physics.BodyConfig{
		Shape:    plan.Collider(g.cfg.StageHeight),
		Position: plan.Position,
		Tag:      physics.TagPlatform,
	})
	p := &Platform{Body: b, Shape: plan.Shape, Size: plan.Size, Role: role}
	r.Platforms = append(r.Platforms, p)
	return p
}

func (g *Game) spawnNext(r *Round) {
	plan, dir := g.gen.Next(r.Current.Center(), r.Direction)
	r.Next = g.spawn(r, plan, RoleNext)
	r.Direction = dir

	g.log.Debug().
		Str("round", r.ID.String()).
		Stringer("dir", dir).
		Stringer("shape", plan.Shape).
		Float64("distance", plan.Distance).
		Float64("size", plan.Size).
		Msg("platform spawned")
	g.bus.Emit(Event{Type: EventPlatformSpawned, Position: plan.Position})
}

// Press starts a charge. It is ignored outside a round, while a charge is
// already running, and while the agent is in flight.
func (g *Game) Press(now time.Time) bool {
	r := g.round
	if g.state != StatePlaying || r == nil || r.charging || r.Agent.airborne {
		return false
	}
	r.charging = true
	r.charge = ChargeSession{Start: now}
	g.bus.Emit(Event{Type: EventChargeStarted, Position: r.Agent.Position()})
	return true
}

// Release launches the agent with the power of the running charge.
func (g *Game) Release(now time.Time) bool {
	r := g.round
	if g.state != StatePlaying || r == nil || !r.charging {
		return false
	}
	d := r.charge.Duration(now)
	r.charging = false
	r.preview = nil

	vel := g.jumper.Apply(r.Agent, d, r.Next, r.Direction)
	r.Agent.airborne = true
	r.Jumps++

	g.log.Debug().
		Str("round", r.ID.String()).
		Float64("hold", d).
		Float64("ratio", g.jumper.Ratio(d)).
		Msg("jump")
	g.bus.Emit(Event{Type: EventJumped, Position: r.Agent.Position(), Velocity: vel})
	return true
}

// Charge returns the raw hold time of the running charge.
func (g *Game) Charge(now time.Time) (float64, bool) {
	r := g.round
	if r == nil || !r.charging {
		return 0, false
	}
	return r.charge.Duration(now), true
}

// Preview returns the predicted flight path while charging, nil otherwise.
func (g *Game) Preview() []mgl64.Vec3 {
	if g.round == nil || g.round.preview == nil {
		return nil
	}
	out := make([]mgl64.Vec3, len(g.round.preview))
	copy(out, g.round.preview)
	return out
}

// Tick advances the world by one fixed step, then runs the fall check, the
// landing cooldown and the preview refresh. Collisions are classified inside
// the step.
func (g *Game) Tick(now time.Time) error {
	if g.round == nil {
		return nil
	}
	if err := g.world.Step(g.cfg.TickDT()); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	if g.state != StatePlaying {
		return nil
	}
	r := g.round
	if r.Agent.Position().Y() < g.cfg.FallThreshold {
		g.gameOver("fell through")
		return nil
	}
	r.Agent.tickGuard()
	if r.charging {
		r.preview = g.predict(r, r.charge.Duration(now))
	}
	return nil
}

// predict previews the jump a release now would make, from the agent's feet.
func (g *Game) predict(r *Round, d float64) []mgl64.Vec3 {
	a := r.Agent
	aim := g.jumper.Aim(a.Position(), r.Next, r.Direction)
	vel := g.jumper.Velocity(d, aim)
	start := a.Position()
	start[1] += g.cfg.JumpLift - a.Body.Shape().HalfExtents.Y()
	return g.predictor.Predict(start, vel, g.jumper.Ratio(d))
}

func (g *Game) handleCollision(ev physics.CollisionEvent) {
	r := g.round
	if r == nil || r.Agent == nil || ev.Body != r.Agent.Body {
		return
	}
	g.handleContact(g.contact(r, ev))
}

// contact matches the other body of a collision to a game object.
func (g *Game) contact(r *Round, ev physics.CollisionEvent) Contact {
	ct := Contact{Normal: ev.Normal, Point: ev.Point}
	switch ev.Other.Tag() {
	case physics.TagVoidFloor:
		ct.Kind = ContactVoidFloor
	case physics.TagPlatform:
		for _, p := range r.Platforms {
			if p.Body == ev.Other {
				ct.Kind = ContactPlatform
				ct.Platform = p
				break
			}
		}
	}
	return ct
}

func (g *Game) handleContact(ct Contact) {
	r := g.round
	if r == nil {
		return
	}
	switch g.classify.Classify(ct, r.Next, r.Agent.Landing(), g.state == StatePlaying) {
	case OutcomeVoid:
		g.gameOver("void floor")
	case OutcomeSideHit:
		g.gameOver("side hit")
	case OutcomeLanded:
		g.land(r, ct)
	case OutcomeRest:
		r.Agent.airborne = false
	}
}

func (g *Game) land(r *Round, ct Contact) {
	a := r.Agent
	a.armGuard(g.cfg.GraceTicks())
	a.absorb(g.cfg.LandingAbsorb)
	a.airborne = false

	r.Current.Role = RoleNone
	r.Current = r.Next
	r.Current.Role = RoleCurrent
	g.spawnNext(r)

	precision := r.Current.PlanarDistance(ct.Point)
	reward, precise := r.Score.Land(precision, g.cfg.PreciseRadius)
	r.Landings++
	a.Face(r.Next.Center())

	g.log.Debug().
		Str("round", r.ID.String()).
		Float64("precision", precision).
		Bool("precise", precise).
		Int("reward", reward).
		Int("total", r.Score.Total).
		Msg("landed")
	g.bus.Emit(Event{
		Type:      EventLanded,
		Position:  a.Position(),
		Score:     r.Score.Total,
		Reward:    reward,
		Precise:   precise,
		Precision: precision,
	})
}

func (g *Game) gameOver(reason string) {
	r := g.round
	g.state = StateGameOver
	g.final = r.Score.Total
	r.charging = false
	r.preview = nil

	g.log.Info().
		Str("round", r.ID.String()).
		Str("reason", reason).
		Int("score", g.final).
		Int("jumps", r.Jumps).
		Msg("game over")
	g.bus.Emit(Event{Type: EventGameOver, Position: r.Agent.Position(), Score: g.final, Reason: reason})
}
