package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/gap-rings/internal/audio"
	"github.com/iburimskiy/gap-rings/internal/config"
	"github.com/iburimskiy/gap-rings/internal/game"
	"github.com/iburimskiy/gap-rings/internal/sim"
)

func main() {
	flag.Parse()

	logFile, err := setupLogging(*logFlag)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if *exportSFXFlag != "" {
		paths, err := audio.ExportWAV(*exportSFXFlag)
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		log.Printf("wrote %s", strings.Join(paths, ", "))
		return
	}

	cfg, err := simConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *headlessFlag {
		if err := runHeadless(cfg, *durationFlag); err != nil {
			log.Fatalf("headless: %v", err)
		}
		return
	}

	var player *audio.Player
	if *soundFlag {
		if player, err = audio.NewPlayer(*volumeFlag); err != nil {
			log.Printf("sound disabled: %v", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Gap Rings - 1-4: mode, Space: pause, D: debug, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(game.Options{Sim: cfg, Player: player, Debug: *debugFlag, MaxCanvas: *sizeFlag})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %v", err)
	}
}

// simConfig builds the simulation settings from the flags.
func simConfig() (sim.Config, error) {
	mode, err := sim.ParseMode(*modeFlag)
	if err != nil {
		return sim.Config{}, err
	}
	cfg := sim.DefaultConfig()
	cfg.Mode = mode
	cfg.Gravity = *gravityFlag
	cfg.BallRadius = *ballRadiusFlag
	cfg.WallCount = *wallsFlag
	cfg.RemoveOnPass = *removeOnPassFlag
	cfg.FadeStrength = *fadeFlag
	cfg.CanvasSize = float64(*sizeFlag)
	cfg.MaxDT = *maxDTFlag
	cfg.Seed = *seedFlag

	for _, c := range []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"ball-color", *ballColorFlag, &cfg.BallColor},
		{"wall-color", *wallColorFlag, &cfg.WallColor},
		{"alt-color", *altColorFlag, &cfg.AltColor},
	} {
		parsed, err := game.ParseColor(c.hex)
		if err != nil {
			return sim.Config{}, fmt.Errorf("-%s: %w", c.name, err)
		}
		*c.dst = parsed
	}

	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

// runHeadless steps a simulation at 60Hz for d, logging its events.
func runHeadless(cfg sim.Config, d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	s := sim.New(cfg)
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	counts := make(map[sim.EventKind]int)
	err := sim.Run(ctx, s, ticker.C, func(events []sim.Event) {
		for _, e := range events {
			counts[e.Kind]++
			if *debugFlag || e.Kind == sim.EventCelebrationStarted || e.Kind == sim.EventCelebrationEnded {
				log.Printf("frame %d: %v", s.Frames(), e)
			}
		}
	})
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	status, _, _ := s.Status()
	log.Printf("%v: %d frames, %.1fs simulated, %s, bounces=%d removed=%d celebrations=%d spawned=%d",
		cfg.Mode, s.Frames(), s.Elapsed(), status,
		counts[sim.EventBounce], counts[sim.EventWallRemoved], counts[sim.EventCelebrationStarted], counts[sim.EventBallSpawned])
	return nil
}
