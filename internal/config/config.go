package config

import (
	"math"
	"time"
)

const (
	WindowWidth  = 900
	WindowHeight = 640

	// Canvas layout
	MaxCanvasSize       = 600
	CanvasMargin        = 40 // room above the outer ring for the status line
	SmallestRadiusRatio = 0.23
	StatusOffset        = 10

	MinWalls = 1
	MaxWalls = 20
)

// Keyboard control ranges.
const (
	MinGravity    = 0
	MaxGravity    = 1000
	GravityStep   = 10
	MinBallRadius = 5
	MaxBallRadius = 40
	FadeStep      = 0.05

	// Held keys repeat every KeyRepeatInterval ticks after KeyRepeatDelay.
	KeyRepeatDelay    = 15
	KeyRepeatInterval = 4
)

// Ring geometry and collision tuning.
const (
	TwoPi    = 2 * math.Pi
	GapAngle = 36 * math.Pi / 180

	// CapLength is the full length of the radial line drawn at each gap edge,
	// centred on the ring radius.
	CapLength = 5.0
	HalfCap   = CapLength / 2

	// CollisionPad widens the contact band so hits register slightly before
	// tangency; without it a 60fps step can skip the band entirely.
	CollisionPad = 2

	// PostCollisionOffset moves the ball off the boundary after a reflection
	// so the same contact does not fire on the next frame.
	PostCollisionOffset = 0.5

	// RotationFrameRate converts per-frame rotation speeds to per-second.
	RotationFrameRate = 60

	// DirectionEpsilon is the length below which a vector has no usable direction.
	DirectionEpsilon = 1e-9
)

// Wall generation speeds, radians per 60fps frame.
const (
	UniformBaseSpeed   = 0.003
	UniformSpeedOffset = 0.002
	SingleWallSpeed    = 0.005
	AlternateSpeed     = 0.01
)

// Ball behaviour.
const (
	LaunchVX = 100
	LaunchVY = -50

	SpawnSpeed        = 150
	SpawnGravityScale = 0.05
	SpawnCap          = 2000

	RestSpeed = 1e-4
	RestNudge = 0.2

	GrowthStep        = 2
	GrowthSpeedScale  = 1.05
	GrowthResetMargin = 1
	GrowthResetOffset = 10
)

// Particle effects.
const (
	ShatterCount        = 20
	ShatterMinSpeed     = 50
	ShatterSpeedRange   = 50
	ShatterJitter       = 50 // full width, centred on zero
	FireworkCount       = 50
	FireworkBursts      = 3
	FireworkMinSpeed    = 50
	FireworkSpeedRange  = 150
	ParticleMinRadius   = 1
	ParticleRadiusRange = 2
	ParticleMinLife     = 0.5
	ParticleLifeRange   = 0.5

	CelebrationDuration = 3 * time.Second

	TrailLength    = 30
	TrailBaseAlpha = 0.5
)

// Runtime defaults.
const (
	DefaultGravity      = 400
	DefaultBallRadius   = 10
	DefaultWallCount    = 10
	DefaultRemoveOnPass = true
	DefaultFade         = 0.75
	DefaultMode         = "alternate"
	DefaultBallColor    = "#ffa500"
	DefaultWallColor    = "#ffffff"
	DefaultAltColor     = "#ff0000"
)

// Audio.
const (
	SampleRate      = 44100
	SoundCooldown   = 30 * time.Millisecond
	DefaultVolume   = -1.5
	BounceFreq      = 660
	ShatterFreq     = 220
	FireworkFreq    = 880
	BounceDuration  = 60 * time.Millisecond
	ShatterDuration = 180 * time.Millisecond
	FireworkLength  = 400 * time.Millisecond
)
