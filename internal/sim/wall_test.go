package sim

import (
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/gap-rings/internal/config"
)

func TestWallRotationStaysNormalized(t *testing.T) {
	speeds := []float64{0.01, -0.01, 0.005, -0.003, 0.5, -0.5, 7}
	dts := []float64{1.0 / 60, 1.0 / 144, 0.25, 1.7}
	for _, speed := range speeds {
		for _, dt := range dts {
			w := Wall{Radius: 100, RotationSpeed: speed}
			for i := 0; i < 5000; i++ {
				w.Advance(dt)
				if w.Rotation < 0 || w.Rotation >= config.TwoPi {
					t.Fatalf("speed=%v dt=%v step=%d: rotation %v outside [0, 2π)", speed, dt, i, w.Rotation)
				}
			}
		}
	}
}

func TestWallAdvanceScalesByFrameRate(t *testing.T) {
	w := Wall{RotationSpeed: 0.01}
	w.Advance(1.0 / 60)
	if math.Abs(w.Rotation-0.01) > 1e-12 {
		t.Fatalf("one 60fps frame should rotate by the per-frame speed, got %v", w.Rotation)
	}
}

func TestGenerateUniformWalls(t *testing.T) {
	walls := GenerateUniformWalls(4, 280, 70, nil)
	if len(walls) != 4 {
		t.Fatalf("len = %d, want 4", len(walls))
	}
	wantRadius := []float64{70, 140, 210, 280}
	wantSpeed := []float64{0.005, 0.001, 0.005, 0.001}
	for i, w := range walls {
		if w.ID != i {
			t.Fatalf("wall %d has id %d", i, w.ID)
		}
		if math.Abs(w.Radius-wantRadius[i]) > 1e-9 {
			t.Fatalf("wall %d radius = %v, want %v", i, w.Radius, wantRadius[i])
		}
		if math.Abs(w.RotationSpeed-wantSpeed[i]) > 1e-12 {
			t.Fatalf("wall %d speed = %v, want %v", i, w.RotationSpeed, wantSpeed[i])
		}
		if w.Color != defaultWallColor {
			t.Fatalf("wall %d should default to white", i)
		}
		if w.Rotation != 0 || w.Closed {
			t.Fatalf("wall %d should start open at rotation 0", i)
		}
	}
}

func TestGenerateUniformWallsEdgeCounts(t *testing.T) {
	if got := GenerateUniformWalls(0, 280, 70, nil); len(got) != 0 {
		t.Fatalf("count 0 should be empty, got %d", len(got))
	}
	if got := GenerateUniformWalls(-3, 280, 70, nil); len(got) != 0 {
		t.Fatalf("negative count should be empty, got %d", len(got))
	}
	single := GenerateUniformWalls(1, 280, 70, nil)
	if len(single) != 1 || single[0].Radius != 280 || single[0].RotationSpeed != config.SingleWallSpeed {
		t.Fatalf("single wall: %+v", single)
	}
}

func TestGenerateAlternateWalls(t *testing.T) {
	c1 := color.RGBA{R: 1, A: 255}
	c2 := color.RGBA{G: 2, A: 255}
	walls := GenerateAlternateWalls(5, 200, 40, c1, c2)
	if len(walls) != 5 {
		t.Fatalf("len = %d", len(walls))
	}
	for i, w := range walls {
		wantSpeed, wantColor := config.AlternateSpeed, color.Color(c1)
		if i%2 != 0 {
			wantSpeed, wantColor = -config.AlternateSpeed, c2
		}
		if w.RotationSpeed != wantSpeed {
			t.Fatalf("wall %d speed = %v, want %v", i, w.RotationSpeed, wantSpeed)
		}
		if w.Color != wantColor {
			t.Fatalf("wall %d color = %v, want %v", i, w.Color, wantColor)
		}
	}
	if walls[0].Radius != 40 || walls[4].Radius != 200 {
		t.Fatalf("radii should span [40, 200], got %v..%v", walls[0].Radius, walls[4].Radius)
	}

	single := GenerateAlternateWalls(1, 200, 40, nil, nil)
	if len(single) != 1 || single[0].Radius != 200 || single[0].RotationSpeed != config.AlternateSpeed || single[0].Color != defaultWallColor {
		t.Fatalf("single alternate wall: %+v", single)
	}
	if got := GenerateAlternateWalls(2, 200, 40, nil, nil); got[1].Color != defaultAltColor {
		t.Fatalf("second colour should default to red, got %v", got[1].Color)
	}
}

func TestClosedWallHasNoGap(t *testing.T) {
	w := ClosedWall(100, nil)
	for a := 0.0; a < config.TwoPi; a += 0.05 {
		if w.InGap(a) {
			t.Fatalf("closed wall reported gap at %v", a)
		}
	}
	if w.RotationSpeed != 0 {
		t.Fatalf("closed wall should not rotate")
	}
}

func TestCapsSpanRingRadius(t *testing.T) {
	w := Wall{Radius: 100, Rotation: 1.2}
	for i, seg := range w.Caps(50, 60) {
		inner := math.Hypot(seg.SX-50, seg.SY-60)
		outer := math.Hypot(seg.EX-50, seg.EY-60)
		if math.Abs(inner-(100-config.HalfCap)) > 1e-9 || math.Abs(outer-(100+config.HalfCap)) > 1e-9 {
			t.Fatalf("cap %d spans [%v, %v]", i, inner, outer)
		}
	}
	end := w.Caps(0, 0)[1]
	if got := math.Atan2(end.SY, end.SX); math.Abs(got-(1.2+config.GapAngle)) > 1e-9 {
		t.Fatalf("end cap angle = %v, want %v", got, 1.2+config.GapAngle)
	}
}
