// Package renderer draws the core's render list with raylib. The core
// works in centered, Y-up world coordinates; this package owns the
// conversion to screen space.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rubble/components"
	"github.com/pthm-cable/rubble/game"
)

// Ship silhouette dimensions in world units.
const (
	shipNoseLen  = 20.0
	shipBackLen  = 10.0
	shipHalfBeam = 12.0
)

// Renderer draws render entities. Wireframe switches filled shapes to
// outlines.
type Renderer struct {
	Wireframe bool
}

// New creates a renderer.
func New() *Renderer {
	return &Renderer{}
}

// toScreen converts a world position to raylib screen coordinates.
func toScreen(x, y, screenW, screenH float32) rl.Vector2 {
	return rl.Vector2{X: screenW/2 + x, Y: screenH/2 - y}
}

// toColor converts a normalized color to raylib's 8-bit color.
func toColor(c components.RGBA) rl.Color {
	return rl.Color{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// Draw renders one frame of entities onto the current drawing target.
func (r *Renderer) Draw(entities []game.RenderEntity, screenW, screenH float32) {
	for _, e := range entities {
		switch e.Kind {
		case components.KindShip:
			r.drawShip(e, screenW, screenH)
		case components.KindAsteroid, components.KindBullet, components.KindParticle:
			center := toScreen(e.X, e.Y, screenW, screenH)
			if r.Wireframe && e.Kind != components.KindParticle {
				rl.DrawCircleLines(int32(center.X), int32(center.Y), e.Scale, toColor(e.Color))
			} else {
				rl.DrawCircleV(center, e.Scale, toColor(e.Color))
			}
		}
	}
}

// drawShip draws the oriented triangle for the player. The nose points
// along the forward vector (-sin, cos) of the rendered rotation.
func (r *Renderer) drawShip(e game.RenderEntity, screenW, screenH float32) {
	s64, c64 := math.Sincos(float64(e.Rotation))
	fx, fy := float32(-s64), float32(c64) // forward
	rx, ry := float32(c64), float32(s64)  // right

	nose := toScreen(e.X+fx*shipNoseLen, e.Y+fy*shipNoseLen, screenW, screenH)
	backLeft := toScreen(e.X-fx*shipBackLen-rx*shipHalfBeam, e.Y-fy*shipBackLen-ry*shipHalfBeam, screenW, screenH)
	backRight := toScreen(e.X-fx*shipBackLen+rx*shipHalfBeam, e.Y-fy*shipBackLen+ry*shipHalfBeam, screenW, screenH)

	color := toColor(e.Color)
	if !r.Wireframe {
		// DrawTriangle requires counter-clockwise winding
		rl.DrawTriangle(nose, backLeft, backRight, color)
	}
	rl.DrawTriangleLines(nose, backLeft, backRight, rl.White)
}
