package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// withAlpha returns c at opacity a, ignoring c's own alpha.
func withAlpha(c color.Color, a float64) color.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return color.Transparent
	}
	r, g, b := cf.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(a) * 255))}
}

// ParseColor reads a "#rrggbb" colour.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %w", s, err)
	}
	return c, nil
}

// hexColor formats c as "#rrggbb" for logs.
func hexColor(c color.Color) string {
	if c == nil {
		return "default"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "transparent"
	}
	return cf.Clamped().Hex()
}

// formatElapsed formats simulated seconds as MM:SS.
func formatElapsed(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
