package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/rubble/components"
	"github.com/pthm-cable/rubble/config"
)

func particlesConfig(t *testing.T) *config.ParticlesConfig {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return &cfg.Particles
}

// TestBurstCounts verifies the radius-scaled particle counts per class.
func TestBurstCounts(t *testing.T) {
	cfg := particlesConfig(t)

	tests := []struct {
		name          string
		radius        float32
		wantExplosion int
		wantSpark     int
	}{
		{name: "large", radius: 40, wantExplosion: 32, wantSpark: 13},
		{name: "medium", radius: 25, wantExplosion: 20, wantSpark: 8},
		{name: "small", radius: 15, wantExplosion: 12, wantSpark: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			explosion, spark := BurstCounts(tc.radius, cfg)
			if explosion != tc.wantExplosion {
				t.Errorf("explosion = %d, want %d", explosion, tc.wantExplosion)
			}
			if spark != tc.wantSpark {
				t.Errorf("spark = %d, want %d", spark, tc.wantSpark)
			}
		})
	}
}

// TestRollBurst verifies burst seeds stay inside the configured ranges.
func TestRollBurst(t *testing.T) {
	cfg := particlesConfig(t)
	rng := rand.New(rand.NewSource(3))

	seeds := RollBurst(rng, 10, 20, 40, cfg)
	if len(seeds) != 45 {
		t.Fatalf("got %d seeds for radius 40, want 45", len(seeds))
	}

	for i, s := range seeds {
		if absf(s.X-10) > 5 || absf(s.Y-20) > 5 {
			t.Errorf("seed %d: scatter (%f, %f) beyond +-5 of origin", i, s.X, s.Y)
		}
		if s.Life < float32(cfg.BurstLifeMin) || s.Life > float32(cfg.BurstLifeMax) {
			t.Errorf("seed %d: life %f out of range", i, s.Life)
		}
		if s.Size < float32(cfg.BurstSizeMin) || s.Size > float32(cfg.BurstSizeMax) {
			t.Errorf("seed %d: size %f out of range", i, s.Size)
		}
		speed := velocityMagnitude(s.VelX, s.VelY)
		if speed < float32(cfg.BurstSpeedMin)-1e-3 || speed > float32(cfg.BurstSpeedMax)+1e-3 {
			t.Errorf("seed %d: speed %f out of range", i, speed)
		}
		for _, c := range []float32{s.Color.R, s.Color.G, s.Color.B} {
			if c < 0 || c > 1 {
				t.Errorf("seed %d: color channel %f out of [0,1]", i, c)
			}
		}
		if s.Color.A != 1 {
			t.Errorf("seed %d: alpha %f, want 1", i, s.Color.A)
		}
	}
}

// TestRollThrustParticle verifies the trail spawns behind the ship and
// pushes roughly backwards.
func TestRollThrustParticle(t *testing.T) {
	cfg := particlesConfig(t)
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 50; i++ {
		s := RollThrustParticle(rng, 0, 0, 0, cfg)

		// Upright ship: emit point is a fixed distance straight below.
		if math.Abs(float64(s.X)) > 1e-3 || math.Abs(float64(s.Y+float32(cfg.ThrustOffset))) > 1e-3 {
			t.Fatalf("roll %d: spawn (%f, %f), want (0, %f)", i, s.X, s.Y, -cfg.ThrustOffset)
		}
		if s.VelY >= 0 {
			t.Errorf("roll %d: VelY = %f, want backwards (negative)", i, s.VelY)
		}
		if s.Life < float32(cfg.ThrustLifeMin) || s.Life > float32(cfg.ThrustLifeMax) {
			t.Errorf("roll %d: life %f out of range", i, s.Life)
		}
	}
}

// TestStepParticle verifies drag decay, integration, and expiry.
func TestStepParticle(t *testing.T) {
	p := components.Particle{MaxLife: 1, Drag: 2}
	pos := components.Position{}
	vel := components.Velocity{X: 100}

	if StepParticle(&p, &pos, &vel, 0.1) {
		t.Fatal("expired on first step")
	}
	if math.Abs(float64(pos.X-10)) > 1e-3 {
		t.Errorf("pos.X = %f, want 10", pos.X)
	}
	// Drag 2/s over 0.1s retains 80% of velocity.
	if math.Abs(float64(vel.X-80)) > 1e-3 {
		t.Errorf("vel.X = %f, want 80", vel.X)
	}

	// Age past MaxLife expires without further integration.
	before := pos
	if !StepParticle(&p, &pos, &vel, 1.0) {
		t.Fatal("did not expire past MaxLife")
	}
	if pos != before {
		t.Error("expired particle still moved")
	}
}

// TestDecayLaws verifies the render scale and alpha ramps.
func TestDecayLaws(t *testing.T) {
	tests := []struct {
		frac      float32
		wantScale float32
		wantAlpha float32
	}{
		{frac: 0, wantScale: 1, wantAlpha: 1},
		{frac: 0.5, wantScale: 0.75, wantAlpha: 0.5},
		{frac: 1, wantScale: 0.5, wantAlpha: 0},
	}

	for _, tc := range tests {
		if got := DecayScale(tc.frac); math.Abs(float64(got-tc.wantScale)) > 1e-5 {
			t.Errorf("DecayScale(%f) = %f, want %f", tc.frac, got, tc.wantScale)
		}
		if got := DecayAlpha(tc.frac); math.Abs(float64(got-tc.wantAlpha)) > 1e-5 {
			t.Errorf("DecayAlpha(%f) = %f, want %f", tc.frac, got, tc.wantAlpha)
		}
	}
}

// TestLifeFraction verifies clamping and the zero-lifetime edge.
func TestLifeFraction(t *testing.T) {
	p := components.Particle{Age: 0.3, MaxLife: 0.6}
	if got := LifeFraction(&p); math.Abs(float64(got-0.5)) > 1e-5 {
		t.Errorf("LifeFraction = %f, want 0.5", got)
	}

	p.Age = 2
	if got := LifeFraction(&p); got != 1 {
		t.Errorf("over-age LifeFraction = %f, want 1", got)
	}

	p.MaxLife = 0
	if got := LifeFraction(&p); got != 1 {
		t.Errorf("zero-lifetime LifeFraction = %f, want 1", got)
	}
}
