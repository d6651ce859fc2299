package sim

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/gap-rings/internal/config"
)

// Particle is a short-lived decorative point. Life counts down in seconds.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Life    float64
	MaxLife float64
	Color   color.Color
}

// Alpha fades linearly with the remaining life.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, p.Life/p.MaxLife))
}

func randomLife(rng *rand.Rand) float64 {
	return rng.Float64()*config.ParticleLifeRange + config.ParticleMinLife
}

func randomParticleRadius(rng *rand.Rand) float64 {
	return rng.Float64()*config.ParticleRadiusRange + config.ParticleMinRadius
}

// RandomHue returns a fully saturated colour of random hue.
func RandomHue(rng *rand.Rand) color.Color {
	return colorful.Hsl(float64(rng.Intn(360)), 1, 0.5)
}

// ShatterBurst scatters count particles along w's circumference, flying
// outward with some jitter, in the wall's colour.
func ShatterBurst(rng *rand.Rand, w *Wall, cx, cy float64, count int) []Particle {
	clr := colorOr(w.Color, defaultWallColor)
	ps := make([]Particle, 0, max(count, 0))
	for i := 0; i < count; i++ {
		angle := rng.Float64() * config.TwoPi
		cos, sin := math.Cos(angle), math.Sin(angle)
		speed := rng.Float64()*config.ShatterSpeedRange + config.ShatterMinSpeed
		life := randomLife(rng)
		ps = append(ps, Particle{
			X:       cx + w.Radius*cos,
			Y:       cy + w.Radius*sin,
			VX:      cos*speed + (rng.Float64()-0.5)*config.ShatterJitter,
			VY:      sin*speed + (rng.Float64()-0.5)*config.ShatterJitter,
			Radius:  randomParticleRadius(rng),
			Life:    life,
			MaxLife: life,
			Color:   clr,
		})
	}
	return ps
}

// FireworkBurst emits count particles from (x, y) in random directions and hues.
func FireworkBurst(rng *rand.Rand, x, y float64, count int) []Particle {
	ps := make([]Particle, 0, max(count, 0))
	for i := 0; i < count; i++ {
		angle := rng.Float64() * config.TwoPi
		speed := rng.Float64()*config.FireworkSpeedRange + config.FireworkMinSpeed
		life := randomLife(rng)
		ps = append(ps, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Radius:  randomParticleRadius(rng),
			Life:    life,
			MaxLife: life,
			Color:   RandomHue(rng),
		})
	}
	return ps
}

// AdvanceParticles moves and ages ps over dt, dropping expired particles.
// The returned slice reuses ps's backing array.
func AdvanceParticles(ps []Particle, dt float64) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		live = append(live, p)
	}
	clear(ps[len(live):])
	return live
}
