package sim

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestRunStepsOncePerTickGap(t *testing.T) {
	s := New(Config{Mode: Normal, CanvasSize: 240, WallCount: 2, Seed: 1})
	ticks := make(chan time.Time, 3)
	start := time.Unix(1000, 0)
	ticks <- start
	ticks <- start.Add(20 * time.Millisecond)
	ticks <- start.Add(50 * time.Millisecond)
	close(ticks)

	calls := 0
	if err := Run(context.Background(), s, ticks, func([]Event) { calls++ }); err != nil {
		t.Fatalf("run: %v", err)
	}
	if s.Frames() != 2 || calls != 2 {
		t.Fatalf("frames = %d calls = %d, want 2", s.Frames(), calls)
	}
	if math.Abs(s.Elapsed()-0.05) > 1e-12 {
		t.Fatalf("elapsed = %v, want 0.05", s.Elapsed())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := New(Config{Seed: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, s, make(chan time.Time), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
