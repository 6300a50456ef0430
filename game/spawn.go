package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rubble/components"
	"github.com/pthm-cable/rubble/config"
	"github.com/pthm-cable/rubble/systems"
)

// spawnAsteroid creates an asteroid entity from a rolled seed and
// increments the population counter.
func (g *Game) spawnAsteroid(seed systems.AsteroidSeed) ecs.Entity {
	id := g.nextID
	g.nextID++

	pos := components.Position{X: seed.X, Y: seed.Y}
	prev := components.PrevPosition{X: seed.X, Y: seed.Y}
	vel := components.Velocity{X: seed.VelX, Y: seed.VelY}
	rot := components.Rotation{Spin: seed.Spin}
	ast := components.Asteroid{ID: id, Class: seed.Class}

	e := g.asteroidMapper.NewEntity(&pos, &prev, &vel, &rot, &ast)
	g.asteroidCount++
	return e
}

// spawnBullet creates a bullet entity at the muzzle.
func (g *Game) spawnBullet(seed systems.BulletSeed, lifetime float32) ecs.Entity {
	id := g.nextID
	g.nextID++

	pos := components.Position{X: seed.X, Y: seed.Y}
	prev := components.PrevPosition{X: seed.X, Y: seed.Y}
	vel := components.Velocity{X: seed.VelX, Y: seed.VelY}
	rot := components.Rotation{}
	bullet := components.Bullet{ID: id, Life: lifetime}

	e := g.bulletMapper.NewEntity(&pos, &prev, &vel, &rot, &bullet)
	g.numBullets++
	return e
}

// spawnParticle creates one particle entity from a rolled seed.
func (g *Game) spawnParticle(seed systems.ParticleSeed, drag float32) {
	id := g.nextID
	g.nextID++

	pos := components.Position{X: seed.X, Y: seed.Y}
	vel := components.Velocity{X: seed.VelX, Y: seed.VelY}
	p := components.Particle{
		ID:      id,
		MaxLife: seed.Life,
		Drag:    drag,
		Size:    seed.Size,
		Color:   seed.Color,
	}

	g.particleMapper.NewEntity(&pos, &vel, &p)
	g.numParticles++
}

// spawnBurst emits the destruction burst for an asteroid of the given
// radius at its last position.
func (g *Game) spawnBurst(cfg *config.Config, x, y, radius float32) {
	seeds := systems.RollBurst(g.rng, x, y, radius, &cfg.Particles)
	drag := float32(cfg.Particles.Drag)
	for _, s := range seeds {
		g.spawnParticle(s, drag)
	}
	if g.collector != nil {
		g.collector.RecordParticles(len(seeds))
	}
}

// ClearAsteroids removes every asteroid from the store and zeroes the
// population counter. Exposed for the shell's debug controls.
func (g *Game) ClearAsteroids() {
	var all []ecs.Entity
	query := g.asteroidFilter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		g.asteroidMapper.Remove(e)
	}
	g.asteroidCount = 0
}
