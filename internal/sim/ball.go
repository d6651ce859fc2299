package sim

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/gap-rings/internal/config"
)

// Ball is a point mass with a radius. The simulation owns its balls and
// overwrites them in place on resets.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.Color // nil means the configured ball colour
}

// Integrate advances the ball by dt seconds with semi-implicit Euler.
// Gravity accelerates along +y.
func (b *Ball) Integrate(dt, gravity float64) {
	b.VY += gravity * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Move advances the position without applying gravity.
func (b *Ball) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Reflect mirrors the velocity about the unit normal (nx, ny) and nudges the
// ball along it. The normal must point away from the obstacle, toward the
// side the ball is on.
func (b *Ball) Reflect(nx, ny float64) {
	dot := b.VX*nx + b.VY*ny
	b.VX -= 2 * dot * nx
	b.VY -= 2 * dot * ny
	b.X += nx * config.PostCollisionOffset
	b.Y += ny * config.PostCollisionOffset
}

func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// NudgeIfResting perturbs a ball that has come to a near standstill so it
// cannot stay parked on a degenerate contact. Reports whether it nudged.
func (b *Ball) NudgeIfResting(rng *rand.Rand) bool {
	if b.Speed() >= config.RestSpeed {
		return false
	}
	b.VX += (rng.Float64() - 0.5) * config.RestNudge
	b.VY += (rng.Float64() - 0.5) * config.RestNudge
	return true
}

// Reset overwrites position, velocity and radius.
func (b *Ball) Reset(x, y, vx, vy, radius float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = vx, vy
	b.Radius = radius
}
