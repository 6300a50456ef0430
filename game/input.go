package game

import (
	"github.com/pthm-cable/rubble/components"
	"github.com/pthm-cable/rubble/config"
	"github.com/pthm-cable/rubble/systems"
)

// InputSnapshot is the button state sampled by the shell once per render
// frame. The core never polls devices.
type InputSnapshot struct {
	Forward   bool
	Reverse   bool
	TurnLeft  bool
	TurnRight bool
	Fire      bool
	Reset     bool
}

// gatherInput folds the snapshot into the ship's movement accumulator.
// Movement is accumulated across frames and consumed once per fixed
// tick; turning is handled separately at variable rate.
func (g *Game) gatherInput(in InputSnapshot) {
	ship := g.shipMap.Get(g.ship)

	var y float32
	if in.Forward {
		y += 1
	}
	if in.Reverse {
		y -= 1
	}
	ship.Accumulate(0, y)

	g.thrusting = ship.InputY > 0
}

// applyRotationInput turns the ship over real frame time so turning
// stays responsive regardless of tick alignment.
func (g *Game) applyRotationInput(in InputSnapshot, dt float32) {
	cfg := config.Cfg()
	rot := g.rotMap.Get(g.ship)
	systems.IntegrateRotation(rot, in.TurnLeft, in.TurnRight, float32(cfg.Ship.RotationSpeed), dt)
}

// handleReset resets the ship on the reset key's rising edge.
func (g *Game) handleReset(in InputSnapshot) {
	pressed := in.Reset && !g.prevReset
	g.prevReset = in.Reset
	if pressed {
		g.Reset()
	}
}

// Reset returns the ship to the origin at rest with a cleared input
// accumulator. Asteroids, bullets, and particles are untouched.
func (g *Game) Reset() {
	pos := g.posMap.Get(g.ship)
	prev := g.prevMap.Get(g.ship)
	vel := g.velMap.Get(g.ship)
	rot := g.rotMap.Get(g.ship)
	ship := g.shipMap.Get(g.ship)

	*pos = components.Position{}
	*prev = components.PrevPosition{}
	*vel = components.Velocity{}
	rot.Angle = 0
	rot.Prev = 0
	ship.ResetInput()

	g.pushEvent(Event{Type: EventShipReset})
	if g.collector != nil {
		g.collector.RecordReset()
	}
}

// tryFire spawns a bullet when the trigger is held and the cooldown has
// expired. The cooldown itself advances on wall time in the pre-tick
// phase.
func (g *Game) tryFire(in InputSnapshot) {
	if !in.Fire || !g.shootCooldown.Ready() {
		return
	}
	cfg := config.Cfg()

	pos := g.posMap.Get(g.ship)
	rot := g.rotMap.Get(g.ship)

	seed := systems.MuzzleSpawn(pos.X, pos.Y, rot.Angle,
		float32(cfg.Bullets.MuzzleOffset), float32(cfg.Bullets.Speed))
	g.spawnBullet(seed, float32(cfg.Bullets.Lifetime))

	g.shootCooldown.Arm(float32(cfg.Bullets.Cooldown))
	g.pushEvent(Event{Type: EventBulletFired, X: seed.X, Y: seed.Y})
	if g.collector != nil {
		g.collector.RecordShot()
	}
}
