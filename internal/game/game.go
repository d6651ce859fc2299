// Package game is the ebiten front end: it owns one simulation, rebuilds it
// whenever a setting changes, and draws its state each frame.
package game

import (
	"errors"
	"image/color"
	"log"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/gap-rings/internal/audio"
	"github.com/iburimskiy/gap-rings/internal/config"
	"github.com/iburimskiy/gap-rings/internal/sim"
)

const defaultTPS = 60.0

// Options configures a Game.
type Options struct {
	Sim       sim.Config
	Player    *audio.Player // nil plays nothing
	Debug     bool
	MaxCanvas int // upper bound on the canvas edge; zero means config.MaxCanvasSize
}

// Game implements ebiten.Game.
type Game struct {
	cfg    sim.Config
	sim    *sim.Simulation
	gen    int
	player *audio.Player

	maxCanvas int
	canvas    int

	paused   bool
	debug    bool
	lastTick time.Time
	lastErr  error

	// colour dialogs run off the update goroutine and report here
	picks   chan colorPick
	picking bool
}

func New(opts Options) *Game {
	g := &Game{
		cfg:       opts.Sim.WithDefaults(),
		player:    opts.Player,
		debug:     opts.Debug,
		maxCanvas: opts.MaxCanvas,
		picks:     make(chan colorPick, 1),
	}
	if g.maxCanvas <= 0 {
		g.maxCanvas = config.MaxCanvasSize
	}
	g.canvas = canvasSize(int(g.cfg.CanvasSize), int(g.cfg.CanvasSize), g.maxCanvas)
	g.cfg.CanvasSize = float64(g.canvas)
	g.rebuild("start")
	return g
}

// canvasSize is the square canvas edge for a w×h window.
func canvasSize(w, h, limit int) int {
	return max(min(w, h, limit), 2*config.CanvasMargin+1)
}

// rebuild replaces the simulation with a fresh one for the current settings.
func (g *Game) rebuild(reason string) {
	g.gen++
	g.sim = sim.New(g.cfg)
	g.lastTick = time.Time{}
	log.Printf("simulation %d (%s): mode=%v walls=%d gravity=%.0f radius=%.0f remove=%v fade=%.2f size=%.0f ball=%s wall=%s alt=%s",
		g.gen, reason, g.cfg.Mode, g.cfg.WallCount, g.cfg.Gravity, g.cfg.BallRadius, g.cfg.RemoveOnPass,
		g.cfg.FadeStrength, g.cfg.CanvasSize, hexColor(g.cfg.BallColor), hexColor(g.cfg.WallColor), hexColor(g.cfg.AltColor))
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.collectPick()
	if float64(g.canvas) != g.cfg.CanvasSize {
		g.cfg.CanvasSize = float64(g.canvas)
		g.rebuild("resize")
	}

	dt := g.frameDelta(time.Now())
	if g.paused {
		return nil
	}
	g.handleEvents(g.sim.Advance(dt))
	return nil
}

// frameDelta returns the seconds since the previous update, falling back to
// one nominal tick on the first frame or a non-positive clock delta.
func (g *Game) frameDelta(now time.Time) float64 {
	if g.lastTick.IsZero() {
		g.lastTick = now
		return 1 / defaultTPS
	}
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now
	if dt <= 0 {
		dt = 1 / defaultTPS
	}
	return dt
}

func (g *Game) handleEvents(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventCelebrationStarted, sim.EventCelebrationEnded, sim.EventBallReset:
			log.Printf("simulation %d: %v", g.gen, e)
		default:
			if g.debug {
				log.Printf("simulation %d frame %d: %v contact=%v", g.gen, g.sim.Frames(), e, e.Contact)
			}
		}
	}
	if g.player != nil {
		g.player.PlayEvents(events)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas = canvasSize(outsideWidth, outsideHeight, g.maxCanvas)
	return g.canvas, g.canvas
}

type colorTarget uint8

const (
	ballTarget colorTarget = iota
	wallTarget
	altTarget
)

func (t colorTarget) title() string {
	switch t {
	case wallTarget:
		return "Ring colour"
	case altTarget:
		return "Alternate ring colour"
	}
	return "Ball colour"
}

type colorPick struct {
	target colorTarget
	color  color.Color
	err    error
}

func (g *Game) color(t colorTarget) color.Color {
	switch t {
	case wallTarget:
		return colorOr(g.cfg.WallColor, defaultWall)
	case altTarget:
		return colorOr(g.cfg.AltColor, defaultAlt)
	}
	return colorOr(g.cfg.BallColor, defaultBall)
}

func (g *Game) setColor(t colorTarget, c color.Color) {
	switch t {
	case wallTarget:
		g.cfg.WallColor = c
	case altTarget:
		g.cfg.AltColor = c
	default:
		g.cfg.BallColor = c
	}
}

// pickColor opens a colour dialog unless one is already showing.
func (g *Game) pickColor(t colorTarget) {
	if g.picking {
		return
	}
	g.picking = true
	current := g.color(t)
	go func() {
		c, err := zenity.SelectColor(zenity.Title(t.title()), zenity.Color(current))
		g.picks <- colorPick{target: t, color: c, err: err}
	}()
}

func (g *Game) collectPick() {
	select {
	case p := <-g.picks:
		g.applyPick(p)
	default:
	}
}

func (g *Game) applyPick(p colorPick) {
	g.picking = false
	if p.err != nil {
		if errors.Is(p.err, zenity.ErrCanceled) {
			return
		}
		g.lastErr = p.err
		log.Printf("colour dialog: %v", p.err)
		return
	}
	if p.color == nil {
		return
	}
	g.setColor(p.target, p.color)
	g.rebuild("colour")
}
