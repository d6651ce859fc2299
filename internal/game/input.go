package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/gap-rings/internal/config"
	"github.com/iburimskiy/gap-rings/internal/sim"
)

var modeKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// controls is one frame of settings input.
type controls struct {
	mode      int // index into the modes, -1 for none
	cycleMode bool

	wallsDelta   int
	gravityDelta int
	radiusDelta  int
	fadeDelta    int

	toggleRemove bool
	restart      bool
}

// repeating is true on the first tick of a press and periodically while held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= config.KeyRepeatDelay && (d-config.KeyRepeatDelay)%config.KeyRepeatInterval == 0
}

func axis(down, up ebiten.Key) int {
	n := 0
	if repeating(down) {
		n--
	}
	if repeating(up) {
		n++
	}
	return n
}

func readControls() controls {
	c := controls{mode: -1}
	for i, k := range modeKeys {
		if inpututil.IsKeyJustPressed(k) {
			c.mode = i
		}
	}
	c.cycleMode = inpututil.IsKeyJustPressed(ebiten.KeyM)
	c.wallsDelta = axis(ebiten.KeyArrowDown, ebiten.KeyArrowUp)
	c.gravityDelta = axis(ebiten.KeyG, ebiten.KeyH)
	c.radiusDelta = axis(ebiten.KeyBracketLeft, ebiten.KeyBracketRight)
	c.fadeDelta = axis(ebiten.KeyF, ebiten.KeyV)
	c.toggleRemove = inpututil.IsKeyJustPressed(ebiten.KeyR)
	c.restart = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	return c
}

// apply returns cfg updated by c and whether anything changed.
func (c controls) apply(cfg sim.Config) (sim.Config, bool) {
	before := cfg
	if c.mode >= 0 {
		cfg.Mode = sim.Mode(c.mode)
	}
	if c.cycleMode {
		cfg.Mode = cfg.Mode.Next()
	}
	if c.wallsDelta != 0 {
		cfg.WallCount = min(max(cfg.WallCount+c.wallsDelta, config.MinWalls), config.MaxWalls)
	}
	if c.gravityDelta != 0 {
		cfg.Gravity = clamp(cfg.Gravity+float64(c.gravityDelta*config.GravityStep), config.MinGravity, config.MaxGravity)
	}
	if c.radiusDelta != 0 {
		cfg.BallRadius = clamp(cfg.BallRadius+float64(c.radiusDelta), config.MinBallRadius, config.MaxBallRadius)
	}
	if c.fadeDelta != 0 {
		f := clamp01(cfg.FadeStrength + float64(c.fadeDelta)*config.FadeStep)
		cfg.FadeStrength = math.Round(f*100) / 100
	}
	if c.toggleRemove {
		cfg.RemoveOnPass = !cfg.RemoveOnPass
	}
	changed := cfg.Mode != before.Mode ||
		cfg.WallCount != before.WallCount ||
		cfg.Gravity != before.Gravity ||
		cfg.BallRadius != before.BallRadius ||
		cfg.FadeStrength != before.FadeStrength ||
		cfg.RemoveOnPass != before.RemoveOnPass
	return cfg, changed || c.restart
}

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.pickColor(ballTarget)
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.pickColor(wallTarget)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.pickColor(altTarget)
	}

	if next, changed := readControls().apply(g.cfg); changed {
		g.cfg = next
		g.rebuild("settings")
	}
	return nil
}
