package sim

import (
	"image/color"
	"math"

	"github.com/iburimskiy/gap-rings/internal/config"
	"github.com/iburimskiy/gap-rings/internal/geom"
)

var (
	defaultWallColor = color.Color(color.White)
	defaultAltColor  = color.Color(color.RGBA{R: 255, A: 255})
)

// Wall is one concentric ring. Its gap is [Rotation, Rotation+GapAngle).
type Wall struct {
	ID            int
	Radius        float64
	Rotation      float64 // always in [0, 2π)
	RotationSpeed float64 // radians per 60fps frame, signed
	Color         color.Color

	// Closed rings have no gap and no caps.
	Closed bool
}

// Segment is a straight line from (SX, SY) to (EX, EY).
type Segment struct {
	SX, SY float64
	EX, EY float64
}

// Advance rotates the wall by its speed over dt seconds.
func (w *Wall) Advance(dt float64) {
	w.Rotation = geom.NormalizeAngle(w.Rotation + w.RotationSpeed*dt*config.RotationFrameRate)
}

func (w *Wall) GapStart() float64 { return w.Rotation }

func (w *Wall) GapEnd() float64 { return w.Rotation + config.GapAngle }

// InGap reports whether a contact at angle passes through the opening.
func (w *Wall) InGap(angle float64) bool {
	if w.Closed {
		return false
	}
	return geom.IsAngleInGap(angle, w.Rotation)
}

// Cap returns the radial segment through the ring at angle, spanning HalfCap
// on either side of the radius, for a ring centred at (cx, cy).
func (w *Wall) Cap(cx, cy, angle float64) Segment {
	cos, sin := math.Cos(angle), math.Sin(angle)
	inner := w.Radius - config.HalfCap
	outer := w.Radius + config.HalfCap
	return Segment{
		SX: cx + inner*cos, SY: cy + inner*sin,
		EX: cx + outer*cos, EY: cy + outer*sin,
	}
}

// Caps returns the start and end gap caps.
func (w *Wall) Caps(cx, cy float64) [2]Segment {
	return [2]Segment{w.Cap(cx, cy, w.GapStart()), w.Cap(cx, cy, w.GapEnd())}
}

func colorOr(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}

// GenerateUniformWalls builds count rings between smallest and largest radius.
// Every ring turns at the same magnitude; the sign follows index parity.
func GenerateUniformWalls(count int, largest, smallest float64, clr color.Color) []Wall {
	if count <= 0 {
		return nil
	}
	clr = colorOr(clr, defaultWallColor)
	if count == 1 {
		return []Wall{{ID: 0, Radius: largest, RotationSpeed: config.SingleWallSpeed, Color: clr}}
	}
	walls := make([]Wall, 0, count)
	step := (largest - smallest) / float64(count-1)
	for i := 0; i < count; i++ {
		sign := 1.0
		if i%2 != 0 {
			sign = -1
		}
		walls = append(walls, Wall{
			ID:            i,
			Radius:        smallest + step*float64(i),
			RotationSpeed: config.UniformBaseSpeed + config.UniformSpeedOffset*sign,
			Color:         clr,
		})
	}
	return walls
}

// GenerateAlternateWalls builds counter-rotating rings: even rings turn
// forward in c1, odd rings backward in c2.
func GenerateAlternateWalls(count int, largest, smallest float64, c1, c2 color.Color) []Wall {
	if count <= 0 {
		return nil
	}
	c1 = colorOr(c1, defaultWallColor)
	c2 = colorOr(c2, defaultAltColor)
	if count == 1 {
		return []Wall{{ID: 0, Radius: largest, RotationSpeed: config.AlternateSpeed, Color: c1}}
	}
	walls := make([]Wall, 0, count)
	step := (largest - smallest) / float64(count-1)
	for i := 0; i < count; i++ {
		w := Wall{
			ID:            i,
			Radius:        smallest + step*float64(i),
			RotationSpeed: config.AlternateSpeed,
			Color:         c1,
		}
		if i%2 != 0 {
			w.RotationSpeed = -config.AlternateSpeed
			w.Color = c2
		}
		walls = append(walls, w)
	}
	return walls
}

// ClosedWall is the static gapless ring used by growth and spawn modes.
func ClosedWall(radius float64, clr color.Color) Wall {
	return Wall{ID: 0, Radius: radius, Color: colorOr(clr, defaultWallColor), Closed: true}
}
