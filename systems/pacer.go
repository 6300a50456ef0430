// Package systems contains the simulation systems: fixed-timestep pacing,
// ship dynamics, asteroid population, bullets, collision, and particles.
package systems

// Pacer converts variable wall-clock frame time into a whole number of
// fixed physics ticks plus a fractional overstep used for render
// interpolation.
type Pacer struct {
	fixedDT    float32
	maxFrameDT float32
	accum      float32
}

// NewPacer creates a pacer with the given fixed timestep and frame-time
// clamp. The clamp avoids tick storms after a long stall (window drag,
// debugger pause).
func NewPacer(fixedDT, maxFrameDT float32) *Pacer {
	return &Pacer{fixedDT: fixedDT, maxFrameDT: maxFrameDT}
}

// Advance folds dt into the accumulator and returns the number of fixed
// ticks that must now execute. After the call the residual is strictly
// less than the fixed timestep.
func (p *Pacer) Advance(dt float32) int {
	if dt < 0 {
		dt = 0
	}
	if dt > p.maxFrameDT {
		dt = p.maxFrameDT
	}
	p.accum += dt

	n := 0
	for p.accum >= p.fixedDT {
		p.accum -= p.fixedDT
		n++
	}
	return n
}

// Overstep returns the fraction of a fixed tick accumulated since the
// last tick, in [0, 1).
func (p *Pacer) Overstep() float32 {
	return p.accum / p.fixedDT
}

// FixedDT returns the fixed timestep in seconds.
func (p *Pacer) FixedDT() float32 {
	return p.fixedDT
}
