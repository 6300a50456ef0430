// Package telemetry provides windowed simulation stats, frame-time
// summaries, and CSV export.
package telemetry

import "github.com/pthm-cable/rubble/components"

// WindowStats is one stats window's worth of simulation counters,
// written as a CSV row.
type WindowStats struct {
	WindowEnd        float64 `csv:"window_end_sec"`
	ShotsFired       int     `csv:"shots_fired"`
	EdgeSpawns       int     `csv:"edge_spawns"`
	FragmentSpawns   int     `csv:"fragment_spawns"`
	DestroyedLarge   int     `csv:"destroyed_large"`
	DestroyedMedium  int     `csv:"destroyed_medium"`
	DestroyedSmall   int     `csv:"destroyed_small"`
	ParticlesSpawned int     `csv:"particles_spawned"`
	ShipResets       int     `csv:"ship_resets"`
}

// Collector accumulates simulation events within fixed windows of
// simulation time and produces WindowStats.
type Collector struct {
	windowSec   float64
	windowStart float64
	current     WindowStats
}

// NewCollector creates a collector with the given window length in
// simulation seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5
	}
	return &Collector{windowSec: windowSec}
}

// RecordShot records a fired bullet.
func (c *Collector) RecordShot() {
	c.current.ShotsFired++
}

// RecordEdgeSpawn records a timer-driven asteroid spawn.
func (c *Collector) RecordEdgeSpawn() {
	c.current.EdgeSpawns++
}

// RecordFragmentSpawn records one fragment spawned by a split.
func (c *Collector) RecordFragmentSpawn() {
	c.current.FragmentSpawns++
}

// RecordDestroyed records an asteroid destruction by size class.
func (c *Collector) RecordDestroyed(class components.SizeClass) {
	switch class {
	case components.SizeLarge:
		c.current.DestroyedLarge++
	case components.SizeMedium:
		c.current.DestroyedMedium++
	case components.SizeSmall:
		c.current.DestroyedSmall++
	}
}

// RecordParticles records n spawned particles.
func (c *Collector) RecordParticles(n int) {
	c.current.ParticlesSpawned += n
}

// RecordReset records a ship reset.
func (c *Collector) RecordReset() {
	c.current.ShipResets++
}

// FlushIfDue returns the finished window's stats once simTime passes
// the window boundary, and starts the next window.
func (c *Collector) FlushIfDue(simTime float64) (WindowStats, bool) {
	if simTime < c.windowStart+c.windowSec {
		return WindowStats{}, false
	}
	stats := c.current
	stats.WindowEnd = simTime
	c.current = WindowStats{}
	c.windowStart = simTime
	return stats, true
}
