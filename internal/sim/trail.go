package sim

// TrailPoint is one ghost image behind the ball.
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}

// trail records the last N ball positions in a ring buffer.
type trail struct {
	buffer    [][2]float64
	nextIndex int
	count     int
}

func newTrail(size int) *trail {
	return &trail{buffer: make([][2]float64, size)}
}

func (t *trail) push(x, y float64) {
	if len(t.buffer) == 0 {
		return
	}
	t.buffer[t.nextIndex] = [2]float64{x, y}
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.count < len(t.buffer) {
		t.count++
	}
}

func (t *trail) reset() {
	t.nextIndex = 0
	t.count = 0
}

// snapshot returns the recorded positions oldest first, with the newest
// ghost at baseAlpha*(1-fade) and older ones fading toward zero.
func (t *trail) snapshot(baseAlpha, fade float64) []TrailPoint {
	if t.count == 0 {
		return nil
	}
	out := make([]TrailPoint, t.count)
	idx := t.nextIndex - t.count
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := 0; i < t.count; i++ {
		p := t.buffer[idx]
		relativeAge := float64(i+1) / float64(t.count)
		out[i] = TrailPoint{X: p[0], Y: p[1], Alpha: baseAlpha * (1 - fade) * relativeAge}
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
