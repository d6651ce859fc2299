package sim

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/gap-rings/internal/config"
)

var errNonFinite = errors.New("must be a finite number")

// Config is the externally settable state. Changing any field means building
// a new Simulation.
type Config struct {
	Mode         Mode
	Gravity      float64 // units/s², along +y
	BallRadius   float64
	WallCount    int
	RemoveOnPass bool
	FadeStrength float64 // trail fade in [0, 1]; 1 hides the trail

	BallColor color.Color
	WallColor color.Color
	AltColor  color.Color

	CanvasSize float64 // square canvas edge length

	ShatterCount  int
	FireworkCount int
	SpawnCap      int

	// MaxDT clamps a single frame's step. Zero leaves dt untouched.
	MaxDT float64

	// RestNudge perturbs a ball that has stopped dead.
	RestNudge bool

	// Seed for the simulation's random source. Zero picks a time-based seed.
	Seed int64
}

// DefaultConfig returns the configuration used at startup.
func DefaultConfig() Config {
	return Config{
		Mode:          Alternate,
		Gravity:       config.DefaultGravity,
		BallRadius:    config.DefaultBallRadius,
		WallCount:     config.DefaultWallCount,
		RemoveOnPass:  config.DefaultRemoveOnPass,
		FadeStrength:  config.DefaultFade,
		CanvasSize:    config.MaxCanvasSize,
		ShatterCount:  config.ShatterCount,
		FireworkCount: config.FireworkCount,
		SpawnCap:      config.SpawnCap,
		RestNudge:     true,
	}
}

// WithDefaults fills unset or out-of-range numeric fields.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.BallRadius <= 0 {
		c.BallRadius = d.BallRadius
	}
	if c.CanvasSize <= 0 {
		c.CanvasSize = d.CanvasSize
	}
	if c.ShatterCount <= 0 {
		c.ShatterCount = d.ShatterCount
	}
	if c.FireworkCount <= 0 {
		c.FireworkCount = d.FireworkCount
	}
	if c.SpawnCap <= 0 {
		c.SpawnCap = d.SpawnCap
	}
	c.FadeStrength = math.Max(0, math.Min(1, c.FadeStrength))
	return c
}

// Validate rejects settings a caller should not pass at all. Ranges the
// simulation can live with (wall counts past the UI bounds, zero gravity)
// are accepted.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"gravity", c.Gravity},
		{"ball radius", c.BallRadius},
		{"fade strength", c.FadeStrength},
		{"canvas size", c.CanvasSize},
		{"max dt", c.MaxDT},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s: %w", f.name, errNonFinite)
		}
	}
	if c.BallRadius <= 0 {
		return fmt.Errorf("ball radius %v must be positive", c.BallRadius)
	}
	if c.WallCount < 0 {
		return fmt.Errorf("wall count %d must not be negative", c.WallCount)
	}
	if c.FadeStrength < 0 || c.FadeStrength > 1 {
		return fmt.Errorf("fade strength %v outside [0, 1]", c.FadeStrength)
	}
	if c.CanvasSize <= 2*config.CanvasMargin {
		return fmt.Errorf("canvas size %v too small for margin %d", c.CanvasSize, config.CanvasMargin)
	}
	if c.MaxDT < 0 {
		return fmt.Errorf("max dt %v must not be negative", c.MaxDT)
	}
	if !c.Mode.valid() {
		return fmt.Errorf("unknown mode %d", c.Mode)
	}
	return nil
}

// Layout is the canvas geometry derived from the canvas size.
type Layout struct {
	Width, Height  float64
	CX, CY         float64
	LargestRadius  float64
	SmallestRadius float64
}

// NewLayout centres the rings horizontally and pushes them below the margin.
func NewLayout(size float64) Layout {
	largest := (size - config.CanvasMargin) / 2
	return Layout{
		Width:          size,
		Height:         size,
		CX:             size / 2,
		CY:             largest + config.CanvasMargin,
		LargestRadius:  largest,
		SmallestRadius: largest * config.SmallestRadiusRatio,
	}
}

// celebrationSeconds is the celebration length in simulation seconds.
var celebrationSeconds = config.CelebrationDuration.Seconds()

// durationSeconds converts a frame delta for callers holding a time.Duration.
func durationSeconds(d time.Duration) float64 { return d.Seconds() }
