package main

import (
	"testing"
	"time"

	"github.com/iburimskiy/gap-rings/internal/sim"
)

func TestSimConfigFromFlags(t *testing.T) {
	defer func(m, c string) { *modeFlag, *wallColorFlag = m, c }(*modeFlag, *wallColorFlag)

	*modeFlag = "growth"
	cfg, err := simConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Mode != sim.Growth || cfg.WallCount != *wallsFlag || cfg.BallColor == nil {
		t.Fatalf("config = %+v", cfg)
	}

	*modeFlag = "sideways"
	if _, err := simConfig(); err == nil {
		t.Fatalf("expected unknown mode error")
	}

	*modeFlag = "normal"
	*wallColorFlag = "white"
	if _, err := simConfig(); err == nil {
		t.Fatalf("expected colour parse error")
	}
}

func TestRunHeadless(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.Seed = 1
	if err := runHeadless(cfg, 100*time.Millisecond); err != nil {
		t.Fatalf("headless: %v", err)
	}
}
