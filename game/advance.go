package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rubble/components"
	"github.com/pthm-cable/rubble/config"
	"github.com/pthm-cable/rubble/systems"
)

// Advance runs one render frame of simulation: the variable-rate
// pre-tick phase, zero or more fixed physics ticks as scheduled by the
// pacer, and the variable-rate post-tick phase. Call once per frame with
// the wall-clock delta.
func (g *Game) Advance(wallDT float32, in InputSnapshot, field Playfield) {
	g.field = field
	cfg := config.Cfg()

	// Pre-tick phase (variable rate)
	g.gatherInput(in)
	g.applyRotationInput(in, wallDT)
	g.handleReset(in)
	g.shootCooldown.Tick(wallDT)
	g.tryFire(in)

	// Fixed-rate phase
	n := g.pacer.Advance(wallDT)
	for i := 0; i < n; i++ {
		g.fixedTick(cfg)
	}

	// Post-tick phase (variable rate)
	g.updateParticles(wallDT)
	g.emitThrustParticle(cfg)
	g.project(cfg)
}

// fixedTick executes one deterministic physics step in the mandated
// order: ship, asteroids, bullets, wrap, collisions, input reset, spawn
// timer. Entities spawned inside the tick are never integrated or
// collided-against within it.
func (g *Game) fixedTick(cfg *config.Config) {
	dt := cfg.Derived.FixedDT32

	g.stepShip(cfg, dt)
	g.stepAsteroids(dt)
	g.stepBullets(dt)
	g.wrapPositions(cfg)
	g.resolveCollisions(cfg)
	g.shipMap.Get(g.ship).ResetInput()
	g.tickSpawnTimer(cfg, dt)

	g.tick++
}

// stepShip consumes the accumulated movement input and integrates the
// ship's translation for one tick.
func (g *Game) stepShip(cfg *config.Config, dt float32) {
	pos := g.posMap.Get(g.ship)
	prev := g.prevMap.Get(g.ship)
	vel := g.velMap.Get(g.ship)
	rot := g.rotMap.Get(g.ship)
	ship := g.shipMap.Get(g.ship)

	prev.X, prev.Y = pos.X, pos.Y

	if cfg.Ship.MovementMode == "direct" {
		systems.DirectVelocity(vel, rot.Angle, ship.InputX, ship.InputY, float32(cfg.Ship.Speed))
	} else {
		systems.ApplyThrust(vel, rot.Angle, ship.InputY,
			float32(cfg.Ship.ThrustForce),
			float32(cfg.Ship.Damping),
			float32(cfg.Ship.MaxVelocity),
			dt)
	}

	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}

// stepAsteroids integrates asteroid translation and rotation.
func (g *Game) stepAsteroids(dt float32) {
	query := g.asteroidFilter.Query()
	for query.Next() {
		pos, prev, vel, rot, _ := query.Get()

		prev.X, prev.Y = pos.X, pos.Y
		rot.Prev = rot.Angle

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		rot.Angle += rot.Spin * dt
	}
}

// stepBullets integrates bullets ballistically and expires them on
// lifetime. Expired bullets are collected first and removed after the
// query completes.
func (g *Game) stepBullets(dt float32) {
	var expired []ecs.Entity

	query := g.bulletFilter.Query()
	for query.Next() {
		pos, prev, vel, _, bullet := query.Get()

		prev.X, prev.Y = pos.X, pos.Y
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		bullet.Life -= dt
		if bullet.Life <= 0 {
			expired = append(expired, query.Entity())
		}
	}

	for _, e := range expired {
		g.bulletMapper.Remove(e)
		g.numBullets--
	}
}

// wrapPositions teleports the ship and asteroids back inside the
// playfield's overshoot band. Skipped while no playfield is known.
func (g *Game) wrapPositions(cfg *config.Config) {
	if !g.field.Valid() {
		return
	}
	halfW := g.field.Width / 2
	halfH := g.field.Height / 2

	pos := g.posMap.Get(g.ship)
	prev := g.prevMap.Get(g.ship)
	dx, dy := systems.Wrap(pos, halfW, halfH, float32(cfg.Ship.WrapMargin))
	prev.X += dx
	prev.Y += dy

	margin := float32(cfg.Asteroids.WrapMargin)
	query := g.asteroidFilter.Query()
	for query.Next() {
		apos, aprev, _, _, _ := query.Get()
		dx, dy := systems.Wrap(apos, halfW, halfH, margin)
		aprev.X += dx
		aprev.Y += dy
	}
}

// bulletRef and asteroidRef snapshot entity state for collision
// resolution, so removals never invalidate a live query.
type bulletRef struct {
	entity ecs.Entity
	circle systems.Circle
}

type asteroidRef struct {
	entity ecs.Entity
	x, y   float32
	class  components.SizeClass
	circle systems.Circle
}

// resolveCollisions detects bullet-asteroid hits, removes both sides,
// emits destruction events, bursts particles, and spawns fragments. A
// bullet consumes at most one asteroid per tick and vice versa.
func (g *Game) resolveCollisions(cfg *config.Config) {
	if g.numBullets == 0 || g.asteroidCount == 0 {
		return
	}

	bulletRadius := float32(cfg.Bullets.Radius)
	var bullets []bulletRef
	bq := g.bulletFilter.Query()
	for bq.Next() {
		pos, _, _, _, _ := bq.Get()
		bullets = append(bullets, bulletRef{
			entity: bq.Entity(),
			circle: systems.Circle{X: pos.X, Y: pos.Y, R: bulletRadius},
		})
	}

	var asteroids []asteroidRef
	aq := g.asteroidFilter.Query()
	for aq.Next() {
		pos, _, _, _, ast := aq.Get()
		asteroids = append(asteroids, asteroidRef{
			entity: aq.Entity(),
			x:      pos.X,
			y:      pos.Y,
			class:  ast.Class,
			circle: systems.Circle{X: pos.X, Y: pos.Y, R: cfg.Derived.Radius(ast.Class)},
		})
	}

	bc := make([]systems.Circle, len(bullets))
	for i, b := range bullets {
		bc[i] = b.circle
	}
	ac := make([]systems.Circle, len(asteroids))
	for i, a := range asteroids {
		ac[i] = a.circle
	}

	for _, hit := range systems.ResolveBulletHits(bc, ac) {
		ast := asteroids[hit.Asteroid]

		g.bulletMapper.Remove(bullets[hit.Bullet].entity)
		g.numBullets--
		g.asteroidMapper.Remove(ast.entity)
		g.decAsteroidCount()

		g.pushEvent(Event{Type: EventAsteroidDestroyed, X: ast.x, Y: ast.y, Class: ast.class})
		if g.collector != nil {
			g.collector.RecordDestroyed(ast.class)
		}

		g.spawnBurst(cfg, ast.x, ast.y, cfg.Derived.Radius(ast.class))

		if child, ok := ast.class.Split(); ok {
			for i := 0; i < cfg.Asteroids.FragmentsPerHit; i++ {
				seed := systems.RollFragment(g.rng, ast.x, ast.y, child,
					float32(cfg.Asteroids.FragmentSpeed),
					float32(cfg.Asteroids.FragmentSpin))
				g.spawnAsteroid(seed)
				if g.collector != nil {
					g.collector.RecordFragmentSpawn()
				}
			}
		}
	}
}

// tickSpawnTimer drives timer-based edge spawning of Large asteroids up
// to the population cap. The timer keeps ticking at the cap; it just
// stops producing.
func (g *Game) tickSpawnTimer(cfg *config.Config, dt float32) {
	if !g.spawnTimer.Tick(dt) {
		return
	}
	if !g.field.Valid() || g.asteroidCount >= cfg.Asteroids.MaxCount {
		return
	}

	seed := systems.RollEdgeSpawn(g.rng, systems.EdgeSpawnParams{
		Width:       g.field.Width,
		Height:      g.field.Height,
		Radius:      cfg.Derived.Radius(components.SizeLarge),
		SpawnMargin: float32(cfg.Asteroids.SpawnMargin),
		MaxSpeed:    float32(cfg.Asteroids.EdgeSpeed),
		MaxSpin:     float32(cfg.Asteroids.EdgeSpin),
	})
	g.spawnAsteroid(seed)
	if g.collector != nil {
		g.collector.RecordEdgeSpawn()
	}
}

// decAsteroidCount decrements the population counter, saturating at
// zero. Underflow means the count invariant was broken upstream; repair
// and log rather than crash.
func (g *Game) decAsteroidCount() {
	if g.asteroidCount == 0 {
		slog.Warn("asteroid count underflow, saturating at zero")
		return
	}
	g.asteroidCount--
}
