package breakout

import "fmt"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventBrickDestroyed EventKind = iota // Brick logically removed, emitted by Step
	EventBrickHidden                     // Destroyed brick leaves the screen, emitted by the session after the hide delay
	EventRoundWon                        // Last brick destroyed; a session holds it back for the win delay
	EventRoundLost                       // Ball reached the bottom edge
)

// Event is a declarative side effect of the simulation.
// BrickID is -1 for round-level events.
type Event struct {
	Kind    EventKind
	BrickID int
	Points  int
}

// String returns a compact description, used in logs and tests.
func (e Event) String() string {
	switch e.Kind {
	case EventBrickDestroyed:
		return fmt.Sprintf("brick-destroyed(%d,+%d)", e.BrickID, e.Points)
	case EventBrickHidden:
		return fmt.Sprintf("brick-hidden(%d)", e.BrickID)
	case EventRoundWon:
		return "round-won"
	case EventRoundLost:
		return "round-lost"
	default:
		return "unknown"
	}
}
