package systems

import (
	"math"

	"github.com/pthm-cable/rubble/components"
)

// Forward returns the unit vector along the ship's nose for a rotation
// angle. Zero rotation points up; positive rotation turns left.
func Forward(angle float32) (fx, fy float32) {
	s, c := math.Sincos(float64(angle))
	return float32(-s), float32(c)
}

// ApplyThrust integrates one fixed tick of the thrust model: accelerate
// along the nose, damp exponentially, clamp speed. The accumulated input
// is clamped to [-1, 1] so thrust does not scale with render rate.
func ApplyThrust(vel *components.Velocity, angle, inputY, thrustForce, damping, maxVelocity, dt float32) {
	fx, fy := Forward(angle)
	a := clampFloat(inputY, -1, 1) * thrustForce * dt
	vel.X += fx * a
	vel.Y += fy * a

	// Component-wise exponential decay, damping is velocity retained per second.
	decay := float32(math.Pow(float64(damping), float64(dt)))
	vel.X *= decay
	vel.Y *= decay

	speed := velocityMagnitude(vel.X, vel.Y)
	if speed > maxVelocity {
		scale := maxVelocity / speed
		vel.X *= scale
		vel.Y *= scale
	}
}

// DirectVelocity sets velocity straight from the accumulated input: the
// input vector is rotated into the ship frame, normalized, and scaled.
// This is the legacy alternate movement mode.
func DirectVelocity(vel *components.Velocity, angle, inputX, inputY, speed float32) {
	s64, c64 := math.Sincos(float64(angle))
	sin, cos := float32(s64), float32(c64)

	rx := inputX*cos - inputY*sin
	ry := inputX*sin + inputY*cos

	mag := velocityMagnitude(rx, ry)
	if mag == 0 {
		vel.X = 0
		vel.Y = 0
		return
	}
	vel.X = rx / mag * speed
	vel.Y = ry / mag * speed
}

// IntegrateRotation saves the previous angle and turns the ship by held
// input over real frame time. Radians are unbounded; per-frame deltas are
// small enough for linear render interpolation.
func IntegrateRotation(rot *components.Rotation, turnLeft, turnRight bool, rotationSpeed, dt float32) {
	rot.Prev = rot.Angle
	if turnLeft {
		rot.Angle += rotationSpeed * dt
	}
	if turnRight {
		rot.Angle -= rotationSpeed * dt
	}
}

// Wrap teleports a coordinate pair back inside the playfield's overshoot
// band and returns the applied offset, so callers can shift the
// previous-tick position by the same amount and keep interpolation from
// streaking across the screen. Wrapping an already-wrapped position is
// the identity.
func Wrap(pos *components.Position, halfW, halfH, margin float32) (dx, dy float32) {
	oldX, oldY := pos.X, pos.Y
	if pos.X > halfW+margin {
		pos.X = -(halfW + margin)
	} else if pos.X < -(halfW + margin) {
		pos.X = halfW + margin
	}
	if pos.Y > halfH+margin {
		pos.Y = -(halfH + margin)
	} else if pos.Y < -(halfH + margin) {
		pos.Y = halfH + margin
	}
	return pos.X - oldX, pos.Y - oldY
}
