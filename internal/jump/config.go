package jump

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid tuning")

// Config holds every gameplay constant. Zero values are never valid; start
// from DefaultConfig and override.
type Config struct {
	// Simulation.
	TickRate float64 `yaml:"tickRate"`
	Gravity  float64 `yaml:"gravity"`

	// Stage layout.
	MinDistance    float64 `yaml:"minDistance"`
	MaxDistance    float64 `yaml:"maxDistance"`
	MinStageSize   float64 `yaml:"minStageSize"`
	MaxStageSize   float64 `yaml:"maxStageSize"`
	FirstStageSize float64 `yaml:"firstStageSize"`
	StageHeight    float64 `yaml:"stageHeight"`

	// Agent body.
	AgentSize      float64 `yaml:"agentSize"`
	AgentMass      float64 `yaml:"agentMass"`
	LinearDamping  float64 `yaml:"linearDamping"`
	AngularDamping float64 `yaml:"angularDamping"`
	AgentStartY    float64 `yaml:"agentStartY"`

	// Charge and launch.
	MinPressTime    float64 `yaml:"minPressTime"`
	MaxPressTime    float64 `yaml:"maxPressTime"`
	HorizontalForce float64 `yaml:"horizontalForce"`
	VerticalForce   float64 `yaml:"verticalForce"`
	JumpLift        float64 `yaml:"jumpLift"`

	// Landing and scoring.
	LandingGrace  time.Duration `yaml:"landingGrace"`
	LandingAbsorb float64       `yaml:"landingAbsorb"`
	FootNormalMin float64       `yaml:"footNormalMin"`
	PreciseRadius float64       `yaml:"preciseRadius"`

	// Falling.
	FallThreshold float64 `yaml:"fallThreshold"`
	VoidFloorY    float64 `yaml:"voidFloorY"`

	// Flight preview.
	PreviewSteps    int     `yaml:"previewSteps"`
	CompensationMax float64 `yaml:"compensationMax"`
}

func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		Gravity:  -30,

		MinDistance:    1.5,
		MaxDistance:    5,
		MinStageSize:   0.8,
		MaxStageSize:   1.3,
		FirstStageSize: 1.5,
		StageHeight:    0.5,

		AgentSize:      0.5,
		AgentMass:      1,
		LinearDamping:  0.3,
		AngularDamping: 0.9,
		AgentStartY:    1,

		MinPressTime:    0.1,
		MaxPressTime:    1.5,
		HorizontalForce: 8,
		VerticalForce:   12,
		JumpLift:        0.05,

		LandingGrace:  100 * time.Millisecond,
		LandingAbsorb: 0.3,
		FootNormalMin: 0.9,
		PreciseRadius: 0.2,

		FallThreshold: -2,
		VoidFloorY:    -5,

		PreviewSteps:    90,
		CompensationMax: 0.06,
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("tuning %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tickRate must be positive", ErrInvalidConfig)
	case c.Gravity >= 0:
		return fmt.Errorf("%w: gravity must pull down", ErrInvalidConfig)
	case c.MinDistance <= 0 || c.MaxDistance < c.MinDistance:
		return fmt.Errorf("%w: distance range [%g, %g]", ErrInvalidConfig, c.MinDistance, c.MaxDistance)
	case c.MinStageSize <= 0 || c.MaxStageSize < c.MinStageSize:
		return fmt.Errorf("%w: stage size range [%g, %g]", ErrInvalidConfig, c.MinStageSize, c.MaxStageSize)
	case c.FirstStageSize <= 0 || c.StageHeight <= 0:
		return fmt.Errorf("%w: first stage size and stage height must be positive", ErrInvalidConfig)
	case c.AgentSize <= 0 || c.AgentMass <= 0:
		return fmt.Errorf("%w: agent size and mass must be positive", ErrInvalidConfig)
	case c.LinearDamping < 0 || c.AngularDamping < 0:
		return fmt.Errorf("%w: damping must not be negative", ErrInvalidConfig)
	case c.MinPressTime <= 0 || c.MaxPressTime < c.MinPressTime:
		return fmt.Errorf("%w: press range [%g, %g]", ErrInvalidConfig, c.MinPressTime, c.MaxPressTime)
	case c.HorizontalForce <= 0 || c.VerticalForce <= 0:
		return fmt.Errorf("%w: forces must be positive", ErrInvalidConfig)
	case c.LandingGrace < 0:
		return fmt.Errorf("%w: landingGrace must not be negative", ErrInvalidConfig)
	case c.LandingAbsorb < 0 || c.LandingAbsorb > 1:
		return fmt.Errorf("%w: landingAbsorb outside [0, 1]", ErrInvalidConfig)
	case c.FootNormalMin <= 0 || c.FootNormalMin >= 1:
		return fmt.Errorf("%w: footNormalMin outside (0, 1)", ErrInvalidConfig)
	case c.PreciseRadius <= 0:
		return fmt.Errorf("%w: preciseRadius must be positive", ErrInvalidConfig)
	case c.VoidFloorY >= c.FallThreshold:
		return fmt.Errorf("%w: voidFloorY must lie below fallThreshold", ErrInvalidConfig)
	case c.PreviewSteps <= 0:
		return fmt.Errorf("%w: previewSteps must be positive", ErrInvalidConfig)
	case c.CompensationMax < 0 || c.CompensationMax >= 1:
		return fmt.Errorf("%w: compensationMax outside [0, 1)", ErrInvalidConfig)
	}
	return nil
}

// TickDT is the fixed simulation step in seconds.
func (c Config) TickDT() float64 { return 1 / c.TickRate }

// GraceTicks converts LandingGrace into whole simulation ticks, at least one.
func (c Config) GraceTicks() int {
	n := int(math.Round(c.LandingGrace.Seconds() * c.TickRate))
	if n < 1 {
		n = 1
	}
	return n
}

// AgentHalfExtents is the agent's box: AgentSize wide and deep, twice as tall.
func (c Config) AgentHalfExtents() mgl64.Vec3 {
	return mgl64.Vec3{c.AgentSize / 2, c.AgentSize, c.AgentSize / 2}
}

func (c Config) AgentStart() mgl64.Vec3 {
	return mgl64.Vec3{0, c.AgentStartY, 0}
}
