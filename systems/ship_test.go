package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/rubble/components"
)

// TestForward verifies the nose vector convention: zero rotation points
// up, positive rotation turns left.
func TestForward(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		wantX float32
		wantY float32
	}{
		{name: "zero points up", angle: 0, wantX: 0, wantY: 1},
		{name: "quarter turn left", angle: math.Pi / 2, wantX: -1, wantY: 0},
		{name: "half turn points down", angle: math.Pi, wantX: 0, wantY: -1},
		{name: "quarter turn right", angle: -math.Pi / 2, wantX: 1, wantY: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fx, fy := Forward(tc.angle)
			if math.Abs(float64(fx-tc.wantX)) > 1e-5 || math.Abs(float64(fy-tc.wantY)) > 1e-5 {
				t.Errorf("Forward(%f) = (%f, %f), want (%f, %f)", tc.angle, fx, fy, tc.wantX, tc.wantY)
			}
		})
	}
}

// TestApplyThrust verifies acceleration, damping, and the speed clamp
// over a single whole-second step.
func TestApplyThrust(t *testing.T) {
	vel := components.Velocity{}
	ApplyThrust(&vel, 0, 1, 800, 0.98, 600, 1)

	// 800 accelerated, damped to 784, clamped to 600, all along +Y.
	if math.Abs(float64(vel.X)) > 1e-3 {
		t.Errorf("vel.X = %f, want 0", vel.X)
	}
	if math.Abs(float64(vel.Y-600)) > 1e-3 {
		t.Errorf("vel.Y = %f, want 600", vel.Y)
	}
}

// TestApplyThrustInputClamp verifies accumulated input beyond one unit
// does not produce extra acceleration.
func TestApplyThrustInputClamp(t *testing.T) {
	a := components.Velocity{}
	b := components.Velocity{}
	ApplyThrust(&a, 0, 1, 800, 0.98, 600, 0.015625)
	ApplyThrust(&b, 0, 5, 800, 0.98, 600, 0.015625)

	if a.Y != b.Y {
		t.Errorf("clamped input differs: inputY=1 gives %f, inputY=5 gives %f", a.Y, b.Y)
	}
}

// TestApplyThrustDampingCoasts verifies velocity decays with no input.
func TestApplyThrustDampingCoasts(t *testing.T) {
	vel := components.Velocity{X: 100, Y: 0}
	for i := 0; i < 64; i++ {
		ApplyThrust(&vel, 0, 0, 800, 0.98, 600, 1.0/64.0)
	}
	// One second of 0.98/s damping.
	if math.Abs(float64(vel.X-98)) > 0.1 {
		t.Errorf("vel.X after 1s coast = %f, want ~98", vel.X)
	}
	if vel.Y != 0 {
		t.Errorf("vel.Y = %f, want 0", vel.Y)
	}
}

// TestDirectVelocity verifies the legacy movement mode normalizes and
// rotates the input into the ship frame.
func TestDirectVelocity(t *testing.T) {
	tests := []struct {
		name           string
		angle          float32
		inputX, inputY float32
		wantX, wantY   float32
	}{
		{name: "forward at zero angle", angle: 0, inputY: 1, wantX: 0, wantY: 500},
		{name: "forward rotated left", angle: math.Pi / 2, inputY: 1, wantX: -500, wantY: 0},
		{name: "zero input zeroes velocity", angle: 0, wantX: 0, wantY: 0},
		{name: "diagonal normalized", angle: 0, inputX: 1, inputY: 1, wantX: 500 / float32(math.Sqrt2), wantY: 500 / float32(math.Sqrt2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vel := components.Velocity{X: 42, Y: -17}
			DirectVelocity(&vel, tc.angle, tc.inputX, tc.inputY, 500)
			if math.Abs(float64(vel.X-tc.wantX)) > 1e-2 || math.Abs(float64(vel.Y-tc.wantY)) > 1e-2 {
				t.Errorf("DirectVelocity = (%f, %f), want (%f, %f)", vel.X, vel.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

// TestIntegrateRotation verifies turn direction and previous-angle capture.
func TestIntegrateRotation(t *testing.T) {
	rot := components.Rotation{Angle: 1}
	IntegrateRotation(&rot, true, false, 4.5, 0.1)
	if rot.Prev != 1 {
		t.Errorf("Prev = %f, want 1", rot.Prev)
	}
	if math.Abs(float64(rot.Angle-1.45)) > 1e-5 {
		t.Errorf("left turn Angle = %f, want 1.45", rot.Angle)
	}

	IntegrateRotation(&rot, false, true, 4.5, 0.1)
	if math.Abs(float64(rot.Angle-1.0)) > 1e-5 {
		t.Errorf("right turn Angle = %f, want 1.0", rot.Angle)
	}

	// Both held cancels out.
	before := rot.Angle
	IntegrateRotation(&rot, true, true, 4.5, 0.1)
	if rot.Angle != before {
		t.Errorf("both turns held changed angle: %f -> %f", before, rot.Angle)
	}
}

// TestWrap verifies overshoot teleportation and idempotence.
func TestWrap(t *testing.T) {
	const (
		halfW  = 640
		halfH  = 360
		margin = 100
	)

	tests := []struct {
		name         string
		x, y         float32
		wantX, wantY float32
	}{
		{name: "inside untouched", x: 100, y: -200, wantX: 100, wantY: -200},
		{name: "on band edge untouched", x: halfW + margin, y: 0, wantX: halfW + margin, wantY: 0},
		{name: "past right wraps left", x: halfW + margin + 1, y: 0, wantX: -(halfW + margin), wantY: 0},
		{name: "past top wraps bottom", x: 0, y: halfH + margin + 5, wantX: 0, wantY: -(halfH + margin)},
		{name: "corner wraps both axes", x: -(halfW + margin + 1), y: -(halfH + margin + 1), wantX: halfW + margin, wantY: halfH + margin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := components.Position{X: tc.x, Y: tc.y}
			dx, dy := Wrap(&pos, halfW, halfH, margin)
			if pos.X != tc.wantX || pos.Y != tc.wantY {
				t.Errorf("Wrap(%f, %f) = (%f, %f), want (%f, %f)", tc.x, tc.y, pos.X, pos.Y, tc.wantX, tc.wantY)
			}
			if dx != pos.X-tc.x || dy != pos.Y-tc.y {
				t.Errorf("offsets (%f, %f) disagree with movement (%f, %f)", dx, dy, pos.X-tc.x, pos.Y-tc.y)
			}

			// Wrapping again must be the identity.
			dx2, dy2 := Wrap(&pos, halfW, halfH, margin)
			if dx2 != 0 || dy2 != 0 {
				t.Errorf("second Wrap moved position by (%f, %f)", dx2, dy2)
			}
		})
	}
}
