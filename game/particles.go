package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rubble/config"
	"github.com/pthm-cable/rubble/systems"
)

// updateParticles advances all particles by real frame time: age, drag,
// and integration. Particles are cosmetic and run entirely at variable
// rate. Expired entities are collected first and removed after the
// query completes.
func (g *Game) updateParticles(dt float32) {
	var expired []ecs.Entity

	query := g.particleFilter.Query()
	for query.Next() {
		pos, vel, p := query.Get()
		if systems.StepParticle(p, pos, vel, dt) {
			expired = append(expired, query.Entity())
		}
	}

	for _, e := range expired {
		g.particleMapper.Remove(e)
		g.numParticles--
	}
}

// emitThrustParticle spawns one engine trail particle behind the ship
// when this frame's gathered input included forward thrust.
func (g *Game) emitThrustParticle(cfg *config.Config) {
	if !g.thrusting {
		return
	}

	pos := g.posMap.Get(g.ship)
	rot := g.rotMap.Get(g.ship)

	seed := systems.RollThrustParticle(g.rng, pos.X, pos.Y, rot.Angle, &cfg.Particles)
	g.spawnParticle(seed, float32(cfg.Particles.Drag))
	if g.collector != nil {
		g.collector.RecordParticles(1)
	}
}
