package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/gap-rings/internal/config"
	"github.com/iburimskiy/gap-rings/internal/sim"
)

const (
	wallStroke   = 2
	capStroke    = 2
	arcSegments  = 96 // per full turn
	debugLineGap = 16
)

var (
	defaultBall = color.Color(color.RGBA{R: 255, G: 165, A: 255})
	defaultWall = color.Color(color.White)
	defaultAlt  = color.Color(color.RGBA{R: 255, A: 255})
)

func colorOr(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.drawWalls(screen)
	g.drawTrail(screen)
	g.drawBalls(screen)
	g.drawParticles(screen)
	g.drawStatus(screen)
	if g.debug || g.paused || g.lastErr != nil {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawWalls(screen *ebiten.Image) {
	cx, cy := g.sim.Center()
	for _, w := range g.sim.Walls() {
		clr := colorOr(w.Color, defaultWall)
		if w.Closed {
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(w.Radius), wallStroke, clr, true)
			continue
		}
		// the solid part runs from the end of the gap round to its start
		drawArc(screen, cx, cy, w.Radius, w.GapEnd(), w.GapStart()+config.TwoPi, clr)
		for _, seg := range w.Caps(cx, cy) {
			vector.StrokeLine(screen, float32(seg.SX), float32(seg.SY), float32(seg.EX), float32(seg.EY), capStroke, clr, true)
		}
	}
}

// drawArc strokes the arc from angle `from` to `to` (radians, to > from) as
// a polyline.
func drawArc(screen *ebiten.Image, cx, cy, r, from, to float64, clr color.Color) {
	n := int(math.Ceil((to - from) / config.TwoPi * arcSegments))
	if n < 1 {
		return
	}
	step := (to - from) / float64(n)
	px, py := cx+r*math.Cos(from), cy+r*math.Sin(from)
	for i := 1; i <= n; i++ {
		a := from + step*float64(i)
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), wallStroke, clr, true)
		px, py = x, y
	}
}

func (g *Game) ballColor(b *sim.Ball) color.Color {
	if b.Color != nil {
		return b.Color
	}
	return colorOr(g.cfg.BallColor, defaultBall)
}

func (g *Game) drawTrail(screen *ebiten.Image) {
	b := g.sim.Ball()
	clr := g.ballColor(b)
	for _, p := range g.sim.Trail() {
		if p.Alpha <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(b.Radius), withAlpha(clr, p.Alpha), true)
	}
}

func (g *Game) drawBalls(screen *ebiten.Image) {
	if !g.sim.BallVisible() {
		return
	}
	balls := g.sim.Balls()
	for i := range balls {
		b := &balls[i]
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), g.ballColor(b), true)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	for _, p := range g.sim.Particles() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), withAlpha(p.Color, p.Alpha()), true)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	msg, x, y := g.sim.Status()
	bounds := text.BoundString(basicfont.Face7x13, msg)
	text.Draw(screen, msg, basicfont.Face7x13, int(x)-bounds.Dx()/2, int(y), color.White)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	var lines []string
	if g.paused {
		lines = append(lines, "Paused - Space to resume")
	}
	if g.debug {
		lines = append(lines,
			fmt.Sprintf("sim %d  %v  t=%s  TPS %.0f", g.gen, g.cfg.Mode, formatElapsed(g.sim.Elapsed()), ebiten.ActualTPS()),
			fmt.Sprintf("walls %d  balls %d  particles %d  g=%.0f r=%.0f fade=%.2f remove=%v",
				len(g.sim.Walls()), len(g.sim.Balls()), len(g.sim.Particles()),
				g.cfg.Gravity, g.cfg.BallRadius, g.cfg.FadeStrength, g.cfg.RemoveOnPass),
			"1-4/M mode  Up/Down walls  G/H gravity  [/] size  F/V fade  R remove  C/B/N colours",
		)
	}
	if g.lastErr != nil {
		lines = append(lines, "Error: "+g.lastErr.Error())
	}
	y := g.canvas - debugLineGap*len(lines) - 4
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 4, y)
		y += debugLineGap
	}
}
