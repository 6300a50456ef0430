// Package game implements the core simulation: a deterministic,
// fixed-timestep Asteroids world. The package is renderer-free; a shell
// feeds it input snapshots and wall-clock time and consumes interpolated
// transforms and lifecycle events.
package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rubble/components"
	"github.com/pthm-cable/rubble/config"
	"github.com/pthm-cable/rubble/systems"
	"github.com/pthm-cable/rubble/telemetry"
)

// Playfield is the current drawable area in world units.
type Playfield struct {
	Width, Height float32
}

// Valid reports whether the playfield has a usable size. With an invalid
// playfield the simulation skips spawning and wrapping for the frame.
func (p Playfield) Valid() bool {
	return p.Width > 0 && p.Height > 0
}

// Options configures a new Game.
type Options struct {
	Seed      int64
	Collector *telemetry.Collector // optional
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// Archetype mappers and filters
	shipMapper *ecs.Map5[
		components.Position,
		components.PrevPosition,
		components.Velocity,
		components.Rotation,
		components.Ship,
	]
	asteroidMapper *ecs.Map5[
		components.Position,
		components.PrevPosition,
		components.Velocity,
		components.Rotation,
		components.Asteroid,
	]
	asteroidFilter *ecs.Filter5[
		components.Position,
		components.PrevPosition,
		components.Velocity,
		components.Rotation,
		components.Asteroid,
	]
	bulletMapper *ecs.Map5[
		components.Position,
		components.PrevPosition,
		components.Velocity,
		components.Rotation,
		components.Bullet,
	]
	bulletFilter *ecs.Filter5[
		components.Position,
		components.PrevPosition,
		components.Velocity,
		components.Rotation,
		components.Bullet,
	]
	particleMapper *ecs.Map3[
		components.Position,
		components.Velocity,
		components.Particle,
	]
	particleFilter *ecs.Filter3[
		components.Position,
		components.Velocity,
		components.Particle,
	]

	// Individual component mappers for ship lookups
	posMap  *ecs.Map1[components.Position]
	prevMap *ecs.Map1[components.PrevPosition]
	velMap  *ecs.Map1[components.Velocity]
	rotMap  *ecs.Map1[components.Rotation]
	shipMap *ecs.Map1[components.Ship]

	ship ecs.Entity

	// Pacing and simulation timers
	pacer         *systems.Pacer
	spawnTimer    systems.RepeatTimer
	shootCooldown systems.Cooldown

	// Population bookkeeping
	asteroidCount int
	numBullets    int
	numParticles  int
	nextID        uint32

	// Frame-transient state
	field     Playfield
	thrusting bool
	prevReset bool

	tick      int64
	seed      int64
	events    []Event
	renderBuf []RenderEntity

	collector *telemetry.Collector
}

// NewGame creates a simulation with the given seed. Configuration must
// be initialized first (config.Init).
func NewGame(seed int64) *Game {
	return NewGameWithOptions(Options{Seed: seed})
}

// NewGameWithOptions creates a simulation from full options.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		seed:  opts.Seed,
		shipMapper: ecs.NewMap5[
			components.Position,
			components.PrevPosition,
			components.Velocity,
			components.Rotation,
			components.Ship,
		](world),
		asteroidMapper: ecs.NewMap5[
			components.Position,
			components.PrevPosition,
			components.Velocity,
			components.Rotation,
			components.Asteroid,
		](world),
		asteroidFilter: ecs.NewFilter5[
			components.Position,
			components.PrevPosition,
			components.Velocity,
			components.Rotation,
			components.Asteroid,
		](world),
		bulletMapper: ecs.NewMap5[
			components.Position,
			components.PrevPosition,
			components.Velocity,
			components.Rotation,
			components.Bullet,
		](world),
		bulletFilter: ecs.NewFilter5[
			components.Position,
			components.PrevPosition,
			components.Velocity,
			components.Rotation,
			components.Bullet,
		](world),
		particleMapper: ecs.NewMap3[
			components.Position,
			components.Velocity,
			components.Particle,
		](world),
		particleFilter: ecs.NewFilter3[
			components.Position,
			components.Velocity,
			components.Particle,
		](world),
		posMap:  ecs.NewMap1[components.Position](world),
		prevMap: ecs.NewMap1[components.PrevPosition](world),
		velMap:  ecs.NewMap1[components.Velocity](world),
		rotMap:  ecs.NewMap1[components.Rotation](world),
		shipMap: ecs.NewMap1[components.Ship](world),

		pacer:      systems.NewPacer(cfg.Derived.FixedDT32, float32(cfg.Physics.MaxFrameDT)),
		spawnTimer: systems.NewRepeatTimer(float32(cfg.Asteroids.SpawnPeriod)),
		collector:  opts.Collector,
	}

	g.ship = g.spawnShip()

	return g
}

// spawnShip creates the single player entity at the origin.
func (g *Game) spawnShip() ecs.Entity {
	id := g.nextID
	g.nextID++

	pos := components.Position{}
	prev := components.PrevPosition{}
	vel := components.Velocity{}
	rot := components.Rotation{}
	ship := components.Ship{ID: id}
	return g.shipMapper.NewEntity(&pos, &prev, &vel, &rot, &ship)
}

// Tick returns the number of completed fixed ticks.
func (g *Game) Tick() int64 {
	return g.tick
}

// SimTime returns elapsed simulation time in seconds.
func (g *Game) SimTime() float64 {
	return float64(g.tick) * float64(g.pacer.FixedDT())
}

// Seed returns the RNG seed the simulation was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// AsteroidCount returns the tracked asteroid population.
func (g *Game) AsteroidCount() int {
	return g.asteroidCount
}

// BulletCount returns the live bullet population.
func (g *Game) BulletCount() int {
	return g.numBullets
}

// ParticleCount returns the live particle population.
func (g *Game) ParticleCount() int {
	return g.numParticles
}

// ShipState returns the ship's physical position, velocity, and rotation.
func (g *Game) ShipState() (pos components.Position, vel components.Velocity, rot components.Rotation) {
	return *g.posMap.Get(g.ship), *g.velMap.Get(g.ship), *g.rotMap.Get(g.ship)
}

// SpawnPeriod returns the current seconds between edge spawns.
func (g *Game) SpawnPeriod() float32 {
	return g.spawnTimer.Period()
}

// SetSpawnPeriod changes the edge-spawn period. Exposed for the shell's
// debug controls.
func (g *Game) SetSpawnPeriod(period float32) {
	g.spawnTimer.SetPeriod(period)
}

// StoredAsteroids counts asteroid entities in the store by iteration.
// The count invariant says this always equals AsteroidCount.
func (g *Game) StoredAsteroids() int {
	n := 0
	query := g.asteroidFilter.Query()
	for query.Next() {
		n++
	}
	return n
}
