// Package components defines ECS components for the simulation.
package components

// Kind identifies what an entity is.
type Kind uint8

const (
	KindShip Kind = iota
	KindAsteroid
	KindBullet
	KindParticle
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindParticle:
		return "particle"
	}
	return "unknown"
}

// SizeClass is the discrete asteroid size tier.
type SizeClass uint8

const (
	SizeLarge SizeClass = iota
	SizeMedium
	SizeSmall
)

// String returns a human-readable size class name.
func (s SizeClass) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	}
	return "unknown"
}

// Split returns the successor class and true, or false for Small.
func (s SizeClass) Split() (SizeClass, bool) {
	switch s {
	case SizeLarge:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	}
	return 0, false
}

// Position is an entity's physical position after the last fixed tick.
// Coordinates are centered on the playfield, Y up.
type Position struct {
	X, Y float32
}

// PrevPosition is the position at the previous fixed tick, kept for
// render interpolation.
type PrevPosition struct {
	X, Y float32
}

// Velocity in units per second.
type Velocity struct {
	X, Y float32
}

// Rotation holds the physical angle in radians (unbounded, no modulo),
// the previous-tick angle for interpolation, and angular velocity.
type Rotation struct {
	Angle float32
	Prev  float32
	Spin  float32 // radians per second, asteroids only
}

// Ship marks the player entity and carries its movement input
// accumulator. Input is summed across variable-rate gathers and consumed
// once per fixed tick.
type Ship struct {
	ID             uint32
	InputX, InputY float32
}

// Accumulate folds one input snapshot into the accumulator.
func (s *Ship) Accumulate(x, y float32) {
	s.InputX += x
	s.InputY += y
}

// ResetInput clears the accumulator.
func (s *Ship) ResetInput() {
	s.InputX = 0
	s.InputY = 0
}

// Asteroid marks an asteroid entity.
type Asteroid struct {
	ID    uint32
	Class SizeClass
}

// Bullet marks a bullet entity. Life counts down to destruction.
type Bullet struct {
	ID   uint32
	Life float32 // seconds remaining
}

// RGBA is a normalized color.
type RGBA struct {
	R, G, B, A float32
}

// Particle is a short-lived cosmetic entity. Age runs from 0 to MaxLife;
// scale and alpha are derived from the age fraction at render time.
type Particle struct {
	ID      uint32
	Age     float32
	MaxLife float32
	Drag    float32
	Size    float32
	Color   RGBA
}
