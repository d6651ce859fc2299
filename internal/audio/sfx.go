// Package audio synthesises the short sound effects played on simulation
// events and routes them to the speaker.
package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/gap-rings/internal/config"
	"github.com/iburimskiy/gap-rings/internal/sim"
)

// Effect is one synthesised sound.
type Effect uint8

const (
	Bounce Effect = iota
	Shatter
	Firework
)

var effectNames = [...]string{"bounce", "shatter", "firework"}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("Effect(%d)", uint8(e))
}

// voice is the sweep a given effect plays.
type voice struct {
	from, to float64 // Hz
	length   time.Duration
}

var voices = [...]voice{
	Bounce:   {from: config.BounceFreq, to: config.BounceFreq, length: config.BounceDuration},
	Shatter:  {from: config.ShatterFreq * 2, to: config.ShatterFreq / 2, length: config.ShatterDuration},
	Firework: {from: config.FireworkFreq / 2, to: config.FireworkFreq * 2, length: config.FireworkLength},
}

// ForEvent maps a simulation event to its effect. Spawns stay silent; with
// thousands of balls they would only add noise.
func ForEvent(k sim.EventKind) (Effect, bool) {
	switch k {
	case sim.EventBounce:
		return Bounce, true
	case sim.EventWallRemoved, sim.EventBallReset:
		return Shatter, true
	case sim.EventCelebrationStarted:
		return Firework, true
	}
	return 0, false
}

// Sweep is a sine gliding linearly from one frequency to another over d with
// a quadratic decay envelope. Samples stay within [-1, 1].
func Sweep(sr beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			progress := float64(pos) / float64(total)
			freq := from + (to-from)*progress
			env := (1 - progress) * (1 - progress)
			v := math.Sin(phase) * env
			samples[i][0], samples[i][1] = v, v
			phase += 2 * math.Pi * freq / float64(sr)
			pos++
			n++
		}
		return n, true
	})
}

// Synth returns a fresh stream for e.
func Synth(sr beep.SampleRate, e Effect) beep.Streamer {
	v := voices[Bounce]
	if int(e) < len(voices) {
		v = voices[e]
	}
	return Sweep(sr, v.from, v.to, v.length)
}

// Player plays effects, dropping repeats of the same effect that arrive
// within the cooldown.
type Player struct {
	sr       beep.SampleRate
	volume   float64
	cooldown time.Duration

	mu   sync.Mutex
	last map[Effect]time.Time
	now  func() time.Time
	out  func(beep.Streamer)

	ownsSpeaker bool
}

// NewPlayer initialises the speaker. volume is in beep's base-2 exponent
// units; 0 is unity gain.
func NewPlayer(volume float64) (*Player, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := newPlayer(sr, volume, func(s beep.Streamer) { speaker.Play(s) })
	p.ownsSpeaker = true
	return p, nil
}

func newPlayer(sr beep.SampleRate, volume float64, out func(beep.Streamer)) *Player {
	return &Player{
		sr:       sr,
		volume:   volume,
		cooldown: config.SoundCooldown,
		last:     make(map[Effect]time.Time),
		now:      time.Now,
		out:      out,
	}
}

// Play starts e unless it played within the cooldown. Reports whether it
// was started.
func (p *Player) Play(e Effect) bool {
	now := p.now()
	p.mu.Lock()
	if last, ok := p.last[e]; ok && now.Sub(last) < p.cooldown {
		p.mu.Unlock()
		return false
	}
	p.last[e] = now
	p.mu.Unlock()

	p.out(&effects.Volume{Streamer: Synth(p.sr, e), Base: 2, Volume: p.volume})
	return true
}

// PlayEvents plays the effect of every event that has one.
func (p *Player) PlayEvents(events []sim.Event) {
	for _, ev := range events {
		if e, ok := ForEvent(ev.Kind); ok {
			p.Play(e)
		}
	}
}

// Close stops anything still playing.
func (p *Player) Close() {
	if !p.ownsSpeaker {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// ExportWAV writes every effect to dir as <name>.wav and returns the paths.
func ExportWAV(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	sr := beep.SampleRate(config.SampleRate)
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	paths := make([]string, 0, len(effectNames))
	for i, name := range effectNames {
		path := filepath.Join(dir, name+".wav")
		if err := writeWAV(path, Synth(sr, Effect(i)), format); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeWAV(path string, s beep.Streamer, format beep.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := wav.Encode(f, s, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
