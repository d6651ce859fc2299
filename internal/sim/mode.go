package sim

import (
	"fmt"
	"math"
	"strings"

	"github.com/iburimskiy/gap-rings/internal/config"
	"github.com/iburimskiy/gap-rings/internal/geom"
)

// Mode selects wall generation and per-frame rules.
type Mode uint8

const (
	Normal Mode = iota
	Alternate
	Growth
	Spawn
)

var modeNames = [...]string{"normal", "alternate", "growth", "spawn"}

func (m Mode) String() string {
	if m.valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

func (m Mode) valid() bool { return int(m) < len(modeNames) }

// Next cycles through the modes in declaration order.
func (m Mode) Next() Mode { return Mode((int(m) + 1) % len(modeNames)) }

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want one of %s)", s, strings.Join(modeNames[:], ", "))
}

// modeHandler implements one mode's frame rules. The driver rotates walls
// when rotates() is true, then hands the frame to resolve.
type modeHandler interface {
	rotates() bool
	walls(c Config, l Layout) []Wall
	resolve(s *Simulation, dt float64) []Event
	status(s *Simulation) string
}

func handlerFor(m Mode) modeHandler {
	switch m {
	case Growth:
		return growthHandler{}
	case Spawn:
		return spawnHandler{}
	case Normal:
		return ringsHandler{alternate: false}
	default:
		return ringsHandler{alternate: true}
	}
}

// ringsHandler drives the normal and alternate modes: one ball inside
// rotating gapped rings, ring removal, and the celebration on escape.
type ringsHandler struct {
	alternate bool
}

func (ringsHandler) rotates() bool { return true }

func (h ringsHandler) walls(c Config, l Layout) []Wall {
	if h.alternate {
		return GenerateAlternateWalls(c.WallCount, l.LargestRadius, l.SmallestRadius, c.WallColor, c.AltColor)
	}
	return GenerateUniformWalls(c.WallCount, l.LargestRadius, l.SmallestRadius, c.WallColor)
}

func (h ringsHandler) resolve(s *Simulation, dt float64) []Event {
	if s.celebrating {
		return nil
	}
	var events []Event
	b := &s.balls[0]
	cx, cy := s.layout.CX, s.layout.CY
	prevX, prevY := b.X, b.Y
	b.Integrate(dt, s.cfg.Gravity)
	s.trail.push(b.X, b.Y)

	if c, ok := FirstContact(b, prevX, prevY, cx, cy, s.walls); ok {
		Resolve(b, prevX, prevY, c)
		events = append(events, Event{Kind: EventBounce, Contact: c.Kind, WallID: c.WallID, X: b.X, Y: b.Y, Speed: b.Speed()})
	} else if s.cfg.RemoveOnPass {
		events = append(events, s.removePassedWalls(b)...)
	}

	if s.cfg.RestNudge {
		b.NudgeIfResting(s.rng)
	}

	if math.Hypot(b.X-cx, b.Y-cy) > s.layout.LargestRadius+b.Radius {
		events = append(events, s.startCelebration(b.X, b.Y))
	}
	return events
}

func (ringsHandler) status(s *Simulation) string {
	return fmt.Sprintf("Circles Left: %d", len(s.walls))
}

// growthHandler bounces one ball inside a closed ring, growing it on every bounce.
type growthHandler struct{}

func (growthHandler) rotates() bool { return false }

func (growthHandler) walls(c Config, l Layout) []Wall {
	return []Wall{ClosedWall(l.LargestRadius, c.WallColor)}
}

func (growthHandler) resolve(s *Simulation, dt float64) []Event {
	if len(s.walls) == 0 {
		return nil
	}
	b := &s.balls[0]
	w := &s.walls[0]
	cx, cy := s.layout.CX, s.layout.CY
	b.Integrate(dt, s.cfg.Gravity)
	s.trail.push(b.X, b.Y)

	dx, dy := b.X-cx, b.Y-cy
	if math.Hypot(dx, dy)+b.Radius <= w.Radius {
		return nil
	}
	rx, ry := geom.Direction(dx, dy, 1, 0)
	// Only a ball heading outward bounces; one already reflected is on its way back.
	if b.VX*rx+b.VY*ry <= 0 {
		return nil
	}

	b.Radius += config.GrowthStep
	b.X = cx + (w.Radius-b.Radius)*rx
	b.Y = cy + (w.Radius-b.Radius)*ry
	b.Reflect(-rx, -ry)
	b.VX *= config.GrowthSpeedScale
	b.VY *= config.GrowthSpeedScale
	events := []Event{{Kind: EventBounce, Contact: ContactArc, WallID: w.ID, X: b.X, Y: b.Y, Speed: b.Speed()}}

	if b.Radius >= w.Radius-config.GrowthResetMargin {
		b.Reset(cx+config.GrowthResetOffset, cy, config.LaunchVX, config.LaunchVY, s.cfg.BallRadius)
		s.trail.reset()
		events = append(events, Event{Kind: EventBallReset, WallID: -1, X: b.X, Y: b.Y, Speed: b.Speed()})
	}
	return events
}

func (growthHandler) status(s *Simulation) string {
	return fmt.Sprintf("Ball Size: %d", int(math.Round(s.balls[0].Radius)))
}

// spawnHandler bounces a growing population of balls inside a closed ring.
type spawnHandler struct{}

func (spawnHandler) rotates() bool { return false }

func (spawnHandler) walls(c Config, l Layout) []Wall {
	return []Wall{ClosedWall(l.LargestRadius, c.WallColor)}
}

func (spawnHandler) resolve(s *Simulation, dt float64) []Event {
	if len(s.walls) == 0 {
		return nil
	}
	var events []Event
	w := &s.walls[0]
	cx, cy := s.layout.CX, s.layout.CY
	gravity := s.cfg.Gravity * config.SpawnGravityScale

	// Balls appended this frame start moving next frame.
	n := len(s.balls)
	for i := 0; i < n; i++ {
		b := &s.balls[i]
		prevX, prevY := b.X, b.Y
		b.Integrate(dt, gravity)
		prevDist := math.Hypot(prevX-cx, prevY-cy)
		currDist := math.Hypot(b.X-cx, b.Y-cy)
		if prevDist+b.Radius >= w.Radius || currDist+b.Radius < w.Radius {
			continue
		}
		rx, ry := geom.Direction(b.X-cx, b.Y-cy, 1, 0)
		b.X = cx + (w.Radius-b.Radius)*rx
		b.Y = cy + (w.Radius-b.Radius)*ry
		b.Reflect(-rx, -ry)
		events = append(events, Event{Kind: EventBounce, Contact: ContactArc, WallID: w.ID, X: b.X, Y: b.Y, Speed: b.Speed()})

		if len(s.balls) < s.cfg.SpawnCap {
			s.balls = append(s.balls, s.launchBall())
			nb := &s.balls[len(s.balls)-1]
			events = append(events, Event{Kind: EventBallSpawned, WallID: -1, X: nb.X, Y: nb.Y, Speed: nb.Speed()})
		}
	}
	return events
}

func (spawnHandler) status(s *Simulation) string {
	return fmt.Sprintf("Balls: %d", len(s.balls))
}
