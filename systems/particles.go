package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/rubble/components"
	"github.com/pthm-cable/rubble/config"
)

// Base colors for destruction bursts and the engine trail.
var (
	explosionColor = components.RGBA{R: 0.9, G: 0.6, B: 0.2, A: 1}
	sparkColor     = components.RGBA{R: 1.0, G: 1.0, B: 0.8, A: 1}
	thrustColor    = components.RGBA{R: 1.0, G: 0.5, B: 0.0, A: 1}
)

// ParticleSeed is a rolled particle spawn.
type ParticleSeed struct {
	X, Y       float32
	VelX, VelY float32
	Life       float32
	Size       float32
	Color      components.RGBA
}

// BurstCounts returns the number of explosion and spark particles for a
// destroyed asteroid of the given radius.
func BurstCounts(radius float32, cfg *config.ParticlesConfig) (explosion, spark int) {
	explosion = int(radius / 10 * float32(cfg.ExplosionPerRadius))
	spark = int(radius / 15 * float32(cfg.SparkPerRadius))
	return explosion, spark
}

// RollBurst rolls the full destruction burst for an asteroid of the
// given radius: explosion particles on the orange base color plus
// near-white sparks, each with a random radial velocity and a small
// positional scatter.
func RollBurst(rng *rand.Rand, x, y, radius float32, cfg *config.ParticlesConfig) []ParticleSeed {
	explosion, spark := BurstCounts(radius, cfg)
	seeds := make([]ParticleSeed, 0, explosion+spark)
	for i := 0; i < explosion; i++ {
		seeds = append(seeds, rollBurstParticle(rng, x, y, explosionColor, cfg))
	}
	for i := 0; i < spark; i++ {
		seeds = append(seeds, rollBurstParticle(rng, x, y, sparkColor, cfg))
	}
	return seeds
}

func rollBurstParticle(rng *rand.Rand, x, y float32, base components.RGBA, cfg *config.ParticlesConfig) ParticleSeed {
	size := uniform(rng, float32(cfg.BurstSizeMin), float32(cfg.BurstSizeMax))
	life := uniform(rng, float32(cfg.BurstLifeMin), float32(cfg.BurstLifeMax))

	angle := uniform(rng, 0, 2*math.Pi)
	speed := uniform(rng, float32(cfg.BurstSpeedMin), float32(cfg.BurstSpeedMax))
	s, c := math.Sincos(float64(angle))

	jitter := uniform(rng, 0.8, 1.2)
	color := components.RGBA{
		R: clamp01(base.R * jitter),
		G: clamp01(base.G * jitter),
		B: clamp01(base.B * jitter),
		A: 1,
	}

	return ParticleSeed{
		X:     x + uniform(rng, -5, 5),
		Y:     y + uniform(rng, -5, 5),
		VelX:  float32(c) * speed,
		VelY:  float32(s) * speed,
		Life:  life,
		Size:  size,
		Color: color,
	}
}

// RollThrustParticle rolls one engine trail particle behind the ship:
// spawned a fixed distance behind the nose, pushed backwards with a
// small directional jitter.
func RollThrustParticle(rng *rand.Rand, shipX, shipY, angle float32, cfg *config.ParticlesConfig) ParticleSeed {
	fx, fy := Forward(angle)
	offset := float32(cfg.ThrustOffset)

	jitter := float32(cfg.ThrustJitter)
	dx := -fx + uniform(rng, -jitter, jitter)
	dy := -fy + uniform(rng, -jitter, jitter)
	speed := uniform(rng, float32(cfg.ThrustSpeedMin), float32(cfg.ThrustSpeedMax))

	return ParticleSeed{
		X:     shipX - fx*offset,
		Y:     shipY - fy*offset,
		VelX:  dx * speed,
		VelY:  dy * speed,
		Life:  uniform(rng, float32(cfg.ThrustLifeMin), float32(cfg.ThrustLifeMax)),
		Size:  uniform(rng, float32(cfg.ThrustSizeMin), float32(cfg.ThrustSizeMax)),
		Color: thrustColor,
	}
}

// StepParticle advances one particle by real frame time and reports
// whether it expired. Position integrates with the current velocity,
// then velocity decays multiplicatively by the drag factor.
func StepParticle(p *components.Particle, pos *components.Position, vel *components.Velocity, dt float32) (expired bool) {
	p.Age += dt
	if p.Age >= p.MaxLife {
		return true
	}

	pos.X += vel.X * dt
	pos.Y += vel.Y * dt

	decay := 1 - p.Drag*dt
	if decay < 0 {
		decay = 0
	}
	vel.X *= decay
	vel.Y *= decay
	return false
}

// LifeFraction returns the particle's age as a fraction of its lifetime,
// clamped to [0, 1].
func LifeFraction(p *components.Particle) float32 {
	if p.MaxLife <= 0 {
		return 1
	}
	return clamp01(p.Age / p.MaxLife)
}

// DecayScale returns the render scale for a life fraction: shrinks to
// half size, floored at 0.1.
func DecayScale(frac float32) float32 {
	s := 1 - 0.5*frac
	if s < 0.1 {
		s = 0.1
	}
	return s
}

// DecayAlpha returns the render alpha for a life fraction.
func DecayAlpha(frac float32) float32 {
	a := 1 - frac
	if a < 0 {
		a = 0
	}
	return a
}
