package geom

import (
	"math"
	"testing"

	"github.com/iburimskiy/gap-rings/internal/config"
)

func TestNormalizeAngleRange(t *testing.T) {
	cases := []float64{
		0, 1, -1, math.Pi, -math.Pi, config.TwoPi, -config.TwoPi,
		7 * config.TwoPi, -7*config.TwoPi - 0.25, -1e-17, 1e9, -1e9,
	}
	for _, in := range cases {
		got := NormalizeAngle(in)
		if got < 0 || got >= config.TwoPi {
			t.Fatalf("NormalizeAngle(%v) = %v, outside [0, 2π)", in, got)
		}
	}
}

func TestNormalizeAngleValues(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{config.TwoPi + 0.5, 0.5},
		{config.TwoPi, 0},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsAngleInGapBoundaries(t *testing.T) {
	starts := []float64{
		0,
		1.0,
		math.Pi,
		config.TwoPi - config.GapAngle/2, // wraps past zero
		config.TwoPi - 0.01,
	}
	for _, start := range starts {
		if !IsAngleInGap(start, start) {
			t.Fatalf("gap start %v should be inside its own gap", start)
		}
		if IsAngleInGap(start+config.GapAngle, start) {
			t.Fatalf("gap end %v should be outside gap starting at %v", start+config.GapAngle, start)
		}
		if !IsAngleInGap(start+config.GapAngle/2, start) {
			t.Fatalf("gap midpoint should be inside gap starting at %v", start)
		}
		if IsAngleInGap(start+math.Pi, start) {
			t.Fatalf("opposite angle should be outside gap starting at %v", start)
		}
		if IsAngleInGap(start-0.01, start) {
			t.Fatalf("angle just before %v should be outside", start)
		}
	}
}

func TestIsAngleInGapWrapsNegativeAngles(t *testing.T) {
	start := config.TwoPi - config.GapAngle/2
	// -0.1 rad is 2π-0.1, inside a gap straddling zero
	if !IsAngleInGap(-0.1, start) {
		t.Fatalf("expected -0.1 inside wrapped gap")
	}
	if !IsAngleInGap(0.1, start) {
		t.Fatalf("expected 0.1 inside wrapped gap")
	}
}

func TestPointToSegmentDistance(t *testing.T) {
	cases := []struct {
		name                   string
		px, py, sx, sy, ex, ey float64
		want                   float64
	}{
		{"perpendicular", 5, 3, 0, 0, 10, 0, 3},
		{"before start", -3, 4, 0, 0, 10, 0, 5},
		{"past end", 13, 4, 0, 0, 10, 0, 5},
		{"on segment", 4, 0, 0, 0, 10, 0, 0},
		{"degenerate", 3, 4, 0, 0, 0, 0, 5},
	}
	for _, c := range cases {
		got := PointToSegmentDistance(c.px, c.py, c.sx, c.sy, c.ex, c.ey)
		if math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestClosestPointOnSegmentClamps(t *testing.T) {
	x, y := ClosestPointOnSegment(20, 5, 0, 0, 10, 0)
	if x != 10 || y != 0 {
		t.Fatalf("expected clamp to end (10,0), got (%v,%v)", x, y)
	}
	x, y = ClosestPointOnSegment(-20, 5, 0, 0, 10, 0)
	if x != 0 || y != 0 {
		t.Fatalf("expected clamp to start (0,0), got (%v,%v)", x, y)
	}
}

func TestDirectionFallback(t *testing.T) {
	x, y := Direction(0, 0, 1, 0)
	if x != 1 || y != 0 {
		t.Fatalf("zero vector should use fallback, got (%v,%v)", x, y)
	}
	x, y = Direction(3, 4, 1, 0)
	if math.Abs(x-0.6) > 1e-12 || math.Abs(y-0.8) > 1e-12 {
		t.Fatalf("Direction(3,4) = (%v,%v), want (0.6,0.8)", x, y)
	}
}
