// Package geom holds the angle and segment math shared by the collision code.
package geom

import (
	"math"

	"github.com/iburimskiy/gap-rings/internal/config"
)

// NormalizeAngle maps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, config.TwoPi)
	if a < 0 {
		a += config.TwoPi
	}
	// -tiny + 2π rounds to 2π
	if a >= config.TwoPi {
		a = 0
	}
	return a
}

// IsAngleInGap reports whether angle lies in the half-open interval
// [gapStart, gapStart+GapAngle), wrapping past zero when needed.
func IsAngleInGap(angle, gapStart float64) bool {
	a := NormalizeAngle(angle)
	start := NormalizeAngle(gapStart)
	end := NormalizeAngle(gapStart + config.GapAngle)
	if start < end {
		return a >= start && a < end
	}
	return a >= start || a < end
}

// ClosestPointOnSegment projects (px, py) onto the segment s→e with the
// parameter clamped to [0, 1]. A zero-length segment yields its start point.
func ClosestPointOnSegment(px, py, sx, sy, ex, ey float64) (float64, float64) {
	dx := ex - sx
	dy := ey - sy
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return sx, sy
	}
	t := ((px-sx)*dx + (py-sy)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return sx + t*dx, sy + t*dy
}

// PointToSegmentDistance returns the distance from (px, py) to the segment s→e.
func PointToSegmentDistance(px, py, sx, sy, ex, ey float64) float64 {
	cx, cy := ClosestPointOnSegment(px, py, sx, sy, ex, ey)
	return math.Hypot(px-cx, py-cy)
}

// Direction returns the unit vector of (dx, dy), or the fallback when the
// vector is too short to have a direction.
func Direction(dx, dy, fallbackX, fallbackY float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l < config.DirectionEpsilon {
		return fallbackX, fallbackY
	}
	return dx / l, dy / l
}
