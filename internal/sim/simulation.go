// Package sim is the ball-in-rings physics core: integration, swept ring
// collisions, particle effects and the per-mode frame rules. It draws
// nothing; a renderer reads the state after each Advance.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/gap-rings/internal/config"
)

// Simulation owns all mutable frame state for one configuration.
type Simulation struct {
	cfg     Config
	layout  Layout
	handler modeHandler
	rng     *rand.Rand

	balls     []Ball
	walls     []Wall
	particles []Particle // shatter bursts
	fireworks []Particle
	trail     *trail

	celebrating     bool
	celebrationTime float64 // seconds since the celebration started

	frames  uint64
	elapsed float64
}

// New builds a simulation for cfg. Fields left zero take their defaults.
func New(cfg Config) *Simulation {
	cfg = cfg.WithDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Simulation{
		cfg:     cfg,
		layout:  NewLayout(cfg.CanvasSize),
		handler: handlerFor(cfg.Mode),
		rng:     rand.New(rand.NewSource(seed)),
		trail:   newTrail(config.TrailLength),
	}
	s.walls = s.handler.walls(cfg, s.layout)
	if cfg.Mode == Spawn {
		s.balls = []Ball{s.launchBall()}
	} else {
		s.balls = []Ball{{
			X: s.layout.CX, Y: s.layout.CY,
			VX: config.LaunchVX, VY: config.LaunchVY,
			Radius: cfg.BallRadius,
		}}
	}
	return s
}

// launchBall makes a randomly coloured ball at the centre with a random heading.
func (s *Simulation) launchBall() Ball {
	angle := s.rng.Float64() * config.TwoPi
	return Ball{
		X: s.layout.CX, Y: s.layout.CY,
		VX:     config.SpawnSpeed * math.Cos(angle),
		VY:     config.SpawnSpeed * math.Sin(angle),
		Radius: s.cfg.BallRadius,
		Color:  RandomHue(s.rng),
	}
}

// Advance runs one frame of dt seconds and returns its side effects.
func (s *Simulation) Advance(dt float64) []Event {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	if s.cfg.MaxDT > 0 && dt > s.cfg.MaxDT {
		dt = s.cfg.MaxDT
	}
	s.frames++
	s.elapsed += dt

	if s.handler.rotates() {
		for i := range s.walls {
			s.walls[i].Advance(dt)
		}
	}

	wasCelebrating := s.celebrating
	events := s.handler.resolve(s, dt)

	s.particles = AdvanceParticles(s.particles, dt)
	if s.celebrating {
		s.fireworks = AdvanceParticles(s.fireworks, dt)
		// the timer starts on the frame after the escape
		if wasCelebrating {
			s.celebrationTime += dt
		}
		if s.celebrationTime > celebrationSeconds {
			events = append(events, s.endCelebration())
		}
	}
	return events
}

// removePassedWalls drops every wall whose gap the ball is passing through
// and shatters it.
func (s *Simulation) removePassedWalls(b *Ball) []Event {
	var events []Event
	cx, cy := s.layout.CX, s.layout.CY
	kept := s.walls[:0]
	for i := range s.walls {
		w := s.walls[i]
		if !passingGap(b, cx, cy, &w) {
			kept = append(kept, w)
			continue
		}
		s.particles = append(s.particles, ShatterBurst(s.rng, &w, cx, cy, s.cfg.ShatterCount)...)
		events = append(events, Event{Kind: EventWallRemoved, WallID: w.ID, X: b.X, Y: b.Y, Speed: b.Speed()})
	}
	s.walls = kept
	return events
}

func (s *Simulation) startCelebration(x, y float64) Event {
	s.celebrating = true
	s.celebrationTime = 0
	s.fireworks = s.fireworks[:0]
	s.fireworks = append(s.fireworks, FireworkBurst(s.rng, x, y, s.cfg.FireworkCount)...)
	for i := 1; i < config.FireworkBursts; i++ {
		px := s.rng.Float64() * s.layout.Width
		py := s.rng.Float64() * s.layout.Height
		s.fireworks = append(s.fireworks, FireworkBurst(s.rng, px, py, s.cfg.FireworkCount)...)
	}
	return Event{Kind: EventCelebrationStarted, WallID: -1, X: x, Y: y, Speed: s.balls[0].Speed()}
}

// endCelebration rebuilds the rings and relaunches the ball from the centre.
func (s *Simulation) endCelebration() Event {
	s.celebrating = false
	s.celebrationTime = 0
	s.fireworks = s.fireworks[:0]
	s.trail.reset()
	s.walls = s.handler.walls(s.cfg, s.layout)
	b := &s.balls[0]
	b.Reset(s.layout.CX, s.layout.CY, config.LaunchVX, config.LaunchVY, s.cfg.BallRadius)
	return Event{Kind: EventCelebrationEnded, WallID: -1, X: b.X, Y: b.Y, Speed: b.Speed()}
}

func (s *Simulation) Config() Config { return s.cfg }

func (s *Simulation) Layout() Layout { return s.layout }

func (s *Simulation) Mode() Mode { return s.cfg.Mode }

// Center is the common centre of all rings.
func (s *Simulation) Center() (float64, float64) { return s.layout.CX, s.layout.CY }

// Walls returns the live rings. The slice is owned by the simulation and
// valid until the next Advance.
func (s *Simulation) Walls() []Wall { return s.walls }

// Balls returns every live ball; only spawn mode has more than one.
func (s *Simulation) Balls() []Ball { return s.balls }

// Ball returns the primary ball.
func (s *Simulation) Ball() *Ball { return &s.balls[0] }

// BallVisible reports whether the primary ball should be drawn.
func (s *Simulation) BallVisible() bool { return !s.celebrating }

// Particles returns shatter fragments followed by fireworks.
func (s *Simulation) Particles() []Particle {
	if len(s.fireworks) == 0 {
		return s.particles
	}
	out := make([]Particle, 0, len(s.particles)+len(s.fireworks))
	out = append(out, s.particles...)
	return append(out, s.fireworks...)
}

// Trail returns the ghost images behind the primary ball, oldest first.
func (s *Simulation) Trail() []TrailPoint {
	if s.celebrating || s.cfg.Mode == Spawn {
		return nil
	}
	return s.trail.snapshot(config.TrailBaseAlpha, s.cfg.FadeStrength)
}

func (s *Simulation) Celebrating() bool { return s.celebrating }

// Status returns the counter text and the point its baseline is centred on.
func (s *Simulation) Status() (text string, x, y float64) {
	return s.handler.status(s), s.layout.CX, s.layout.CY - s.layout.LargestRadius - config.StatusOffset
}

// Frames is the number of Advance calls so far.
func (s *Simulation) Frames() uint64 { return s.frames }

// Elapsed is the total simulated time in seconds.
func (s *Simulation) Elapsed() float64 { return s.elapsed }
