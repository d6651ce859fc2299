package sim

import (
	"math"

	"github.com/iburimskiy/gap-rings/internal/config"
	"github.com/iburimskiy/gap-rings/internal/geom"
)

// ContactKind identifies which part of a ring was hit.
type ContactKind uint8

const (
	ContactArc ContactKind = iota
	ContactCapStart
	ContactCapEnd
)

func (k ContactKind) String() string {
	switch k {
	case ContactArc:
		return "arc"
	case ContactCapStart:
		return "cap-start"
	case ContactCapEnd:
		return "cap-end"
	}
	return "unknown"
}

// Contact is a detected collision. (NX, NY) is the unit reflection normal,
// pointing from the obstacle toward the ball.
type Contact struct {
	Kind   ContactKind
	WallID int
	NX, NY float64
}

// bandZone classifies a centre distance against a ring's contact band:
// -1 inside it, 0 within it, +1 outside it.
func bandZone(dist, radius, ballRadius float64) int {
	half := ballRadius + config.CollisionPad
	switch {
	case dist < radius-half:
		return -1
	case dist > radius+half:
		return 1
	}
	return 0
}

// CheckArc tests the move prev→ball against the solid part of wall's arc.
// A hit needs the centre to have entered the contact band from either side,
// or to have crossed the ring line (which also catches a step that jumps the
// whole band), at an angle outside the gap.
func CheckArc(b *Ball, prevX, prevY, cx, cy float64, w *Wall) (Contact, bool) {
	if w.Closed {
		return Contact{}, false
	}
	currDist := math.Hypot(b.X-cx, b.Y-cy)
	prevDist := math.Hypot(prevX-cx, prevY-cy)

	prevZone := bandZone(prevDist, w.Radius, b.Radius)
	currZone := bandZone(currDist, w.Radius, b.Radius)
	entered := prevZone != 0 && currZone == 0
	crossed := (prevDist < w.Radius) != (currDist < w.Radius)
	if !entered && !crossed {
		return Contact{}, false
	}

	angle := math.Atan2(b.Y-cy, b.X-cx)
	if w.InGap(angle) {
		return Contact{}, false
	}

	nx, ny := geom.Direction(b.X-cx, b.Y-cy, 1, 0)
	if prevDist < w.Radius {
		nx, ny = -nx, -ny
	}
	return Contact{Kind: ContactArc, WallID: w.ID, NX: nx, NY: ny}, true
}

// CheckCap tests the post-move ball against the radial cap at capAngle. Only
// a ball moving toward the cap collides, so a ball that was just reflected
// off it cannot fire again while still within reach.
func CheckCap(b *Ball, cx, cy float64, w *Wall, capAngle float64, kind ContactKind) (Contact, bool) {
	if w.Closed {
		return Contact{}, false
	}
	seg := w.Cap(cx, cy, capAngle)
	px, py := geom.ClosestPointOnSegment(b.X, b.Y, seg.SX, seg.SY, seg.EX, seg.EY)
	if math.Hypot(b.X-px, b.Y-py) > b.Radius+config.CollisionPad {
		return Contact{}, false
	}

	rx, ry := geom.Direction(b.X-cx, b.Y-cy, 1, 0)
	nx, ny := geom.Direction(b.X-px, b.Y-py, rx, ry)
	if b.VX*nx+b.VY*ny >= 0 {
		return Contact{}, false
	}
	return Contact{Kind: kind, WallID: w.ID, NX: nx, NY: ny}, true
}

// FirstContact returns the first collision for this frame. Arcs of every
// wall are tested in order before any caps; the first hit wins.
func FirstContact(b *Ball, prevX, prevY, cx, cy float64, walls []Wall) (Contact, bool) {
	for i := range walls {
		if c, ok := CheckArc(b, prevX, prevY, cx, cy, &walls[i]); ok {
			return c, true
		}
	}
	for i := range walls {
		w := &walls[i]
		if c, ok := CheckCap(b, cx, cy, w, w.GapStart(), ContactCapStart); ok {
			return c, true
		}
		if c, ok := CheckCap(b, cx, cy, w, w.GapEnd(), ContactCapEnd); ok {
			return c, true
		}
	}
	return Contact{}, false
}

// Resolve puts the ball back at its pre-integration position and reflects
// it about the contact normal.
func Resolve(b *Ball, prevX, prevY float64, c Contact) {
	b.X, b.Y = prevX, prevY
	b.Reflect(c.NX, c.NY)
}

// passingGap reports whether the ball currently straddles w's line inside
// the gap.
func passingGap(b *Ball, cx, cy float64, w *Wall) bool {
	dist := math.Hypot(b.X-cx, b.Y-cy)
	if math.Abs(dist-w.Radius) >= b.Radius {
		return false
	}
	return w.InGap(math.Atan2(b.Y-cy, b.X-cx))
}
