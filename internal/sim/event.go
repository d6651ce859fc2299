package sim

import "fmt"

// EventKind names a side effect produced by a frame.
type EventKind uint8

const (
	EventBounce EventKind = iota
	EventWallRemoved
	EventCelebrationStarted
	EventCelebrationEnded
	EventBallSpawned
	EventBallReset
)

func (k EventKind) String() string {
	switch k {
	case EventBounce:
		return "bounce"
	case EventWallRemoved:
		return "wall-removed"
	case EventCelebrationStarted:
		return "celebration-started"
	case EventCelebrationEnded:
		return "celebration-ended"
	case EventBallSpawned:
		return "ball-spawned"
	case EventBallReset:
		return "ball-reset"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event records one side effect for sound playback and logging.
type Event struct {
	Kind    EventKind
	Contact ContactKind // bounces off rings only
	WallID  int         // -1 when no wall is involved
	X, Y    float64
	Speed   float64 // ball speed at the time of the event
}

func (e Event) String() string {
	return fmt.Sprintf("%s wall=%d at (%.1f, %.1f) speed=%.1f", e.Kind, e.WallID, e.X, e.Y, e.Speed)
}
