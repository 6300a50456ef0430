package systems

import (
	"math/rand"

	"github.com/pthm-cable/rubble/components"
)

// AsteroidSeed is a rolled spawn: position, motion, and class for a new
// asteroid entity.
type AsteroidSeed struct {
	X, Y       float32
	VelX, VelY float32
	Spin       float32
	Class      components.SizeClass
}

// EdgeSpawnParams bounds the random rolls for a timer-driven edge spawn.
type EdgeSpawnParams struct {
	Width, Height float32 // playfield dimensions
	Radius        float32
	SpawnMargin   float32 // extra offset beyond the radius
	MaxSpeed      float32 // velocity components uniform in +-MaxSpeed
	MaxSpin       float32 // angular velocity uniform in +-MaxSpin
}

// RollEdgeSpawn places a Large asteroid just outside one of the four
// playfield edges, chosen uniformly, with a uniform tangential coordinate
// over the edge plus margin.
func RollEdgeSpawn(rng *rand.Rand, p EdgeSpawnParams) AsteroidSeed {
	margin := p.Radius + p.SpawnMargin
	halfW := p.Width / 2
	halfH := p.Height / 2

	var x, y float32
	switch rng.Intn(4) {
	case 0: // top
		x = uniform(rng, -halfW-margin, halfW+margin)
		y = halfH + margin
	case 1: // right
		x = halfW + margin
		y = uniform(rng, -halfH-margin, halfH+margin)
	case 2: // bottom
		x = uniform(rng, -halfW-margin, halfW+margin)
		y = -halfH - margin
	default: // left
		x = -halfW - margin
		y = uniform(rng, -halfH-margin, halfH+margin)
	}

	return AsteroidSeed{
		X:     x,
		Y:     y,
		VelX:  uniform(rng, -p.MaxSpeed, p.MaxSpeed),
		VelY:  uniform(rng, -p.MaxSpeed, p.MaxSpeed),
		Spin:  uniform(rng, -p.MaxSpin, p.MaxSpin),
		Class: components.SizeLarge,
	}
}

// RollFragment rolls one fragment of the given class at the destroyed
// asteroid's position.
func RollFragment(rng *rand.Rand, x, y float32, class components.SizeClass, maxSpeed, maxSpin float32) AsteroidSeed {
	return AsteroidSeed{
		X:     x,
		Y:     y,
		VelX:  uniform(rng, -maxSpeed, maxSpeed),
		VelY:  uniform(rng, -maxSpeed, maxSpeed),
		Spin:  uniform(rng, -maxSpin, maxSpin),
		Class: class,
	}
}
