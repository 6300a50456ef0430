package game

import "github.com/pthm-cable/rubble/components"

// EventType identifies lifecycle events the shell may consume for audio
// or stats.
type EventType uint8

const (
	EventAsteroidDestroyed EventType = iota
	EventBulletFired
	EventShipReset
)

// String returns a human-readable event name.
func (t EventType) String() string {
	switch t {
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventBulletFired:
		return "bullet_fired"
	case EventShipReset:
		return "ship_reset"
	}
	return "unknown"
}

// Event is a transient lifecycle notification. Position and class are
// filled where they apply.
type Event struct {
	Type  EventType
	X, Y  float32
	Class components.SizeClass
}

func (g *Game) pushEvent(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns the events emitted since the last drain and
// clears the queue. The returned slice is reused; consume it before the
// next Advance.
func (g *Game) DrainEvents() []Event {
	out := g.events
	g.events = g.events[:0]
	return out
}
