package game

import (
	"github.com/pthm-cable/rubble/components"
	"github.com/pthm-cable/rubble/config"
	"github.com/pthm-cable/rubble/systems"
)

// Entity colors as the shell renders them.
var (
	shipColor   = components.RGBA{R: 0, G: 0, B: 1, A: 1}
	rockColor   = components.RGBA{R: 0.7, G: 0.7, B: 0.7, A: 1}
	bulletColor = components.RGBA{R: 1, G: 1, B: 0, A: 1}
)

// RenderEntity is one render-ready transform: the interpolated position
// and rotation of an entity for the current frame. Scale is in world
// units (the asteroid radius, the particle size after decay).
type RenderEntity struct {
	Kind     components.Kind
	ID       uint32
	X, Y     float32
	Rotation float32
	Scale    float32
	Color    components.RGBA
}

// project fills the render buffer with interpolated transforms. Tickable
// entities blend previous and current physical state by the pacer's
// overstep fraction; particles render from their live position.
func (g *Game) project(cfg *config.Config) {
	alpha := g.pacer.Overstep()
	g.renderBuf = g.renderBuf[:0]

	// Ship
	{
		pos := g.posMap.Get(g.ship)
		prev := g.prevMap.Get(g.ship)
		rot := g.rotMap.Get(g.ship)
		ship := g.shipMap.Get(g.ship)

		g.renderBuf = append(g.renderBuf, RenderEntity{
			Kind:     components.KindShip,
			ID:       ship.ID,
			X:        systems.Lerp(prev.X, pos.X, alpha),
			Y:        systems.Lerp(prev.Y, pos.Y, alpha),
			Rotation: systems.Lerp(rot.Prev, rot.Angle, alpha),
			Scale:    1,
			Color:    shipColor,
		})
	}

	aq := g.asteroidFilter.Query()
	for aq.Next() {
		pos, prev, _, rot, ast := aq.Get()
		g.renderBuf = append(g.renderBuf, RenderEntity{
			Kind:     components.KindAsteroid,
			ID:       ast.ID,
			X:        systems.Lerp(prev.X, pos.X, alpha),
			Y:        systems.Lerp(prev.Y, pos.Y, alpha),
			Rotation: systems.Lerp(rot.Prev, rot.Angle, alpha),
			Scale:    cfg.Derived.Radius(ast.Class),
			Color:    rockColor,
		})
	}

	bq := g.bulletFilter.Query()
	for bq.Next() {
		pos, prev, _, _, bullet := bq.Get()
		g.renderBuf = append(g.renderBuf, RenderEntity{
			Kind:  components.KindBullet,
			ID:    bullet.ID,
			X:     systems.Lerp(prev.X, pos.X, alpha),
			Y:     systems.Lerp(prev.Y, pos.Y, alpha),
			Scale: float32(cfg.Bullets.Radius),
			Color: bulletColor,
		})
	}

	pq := g.particleFilter.Query()
	for pq.Next() {
		pos, _, p := pq.Get()
		frac := systems.LifeFraction(p)
		color := p.Color
		color.A = systems.DecayAlpha(frac)
		g.renderBuf = append(g.renderBuf, RenderEntity{
			Kind:  components.KindParticle,
			ID:    p.ID,
			X:     pos.X,
			Y:     pos.Y,
			Scale: p.Size * systems.DecayScale(frac),
			Color: color,
		})
	}
}

// RenderList returns the transforms computed by the last Advance. The
// slice is reused across frames.
func (g *Game) RenderList() []RenderEntity {
	return g.renderBuf
}
