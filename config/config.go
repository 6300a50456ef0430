// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/rubble/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Ship      ShipConfig      `yaml:"ship"`
	Asteroids AsteroidsConfig `yaml:"asteroids"`
	Bullets   BulletsConfig   `yaml:"bullets"`
	Particles ParticlesConfig `yaml:"particles"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the shell.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the fixed-timestep pacing parameters.
type PhysicsConfig struct {
	FixedDT    float64 `yaml:"fixed_dt"`     // seconds per physics tick
	MaxFrameDT float64 `yaml:"max_frame_dt"` // wall dt clamp to avoid tick storms
}

// ShipConfig holds ship dynamics parameters.
type ShipConfig struct {
	MovementMode  string  `yaml:"movement_mode"`  // "thrust" (default) or "direct"
	ThrustForce   float64 `yaml:"thrust_force"`   // acceleration along the nose, units/s^2
	MaxVelocity   float64 `yaml:"max_velocity"`   // speed clamp after every fixed tick
	Damping       float64 `yaml:"damping"`        // velocity retained per second, in (0,1)
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per second
	Speed         float64 `yaml:"speed"`          // direct-velocity mode speed
	WrapMargin    float64 `yaml:"wrap_margin"`    // overshoot band for screen wrap
}

// AsteroidsConfig holds asteroid population parameters.
type AsteroidsConfig struct {
	SpawnPeriod      float64 `yaml:"spawn_period"`       // seconds between edge spawns
	MaxCount         int     `yaml:"max_count"`          // edge spawns stop at this population
	WrapMargin       float64 `yaml:"wrap_margin"`        // overshoot band for screen wrap
	SpawnMargin      float64 `yaml:"spawn_margin"`       // extra edge offset beyond the radius
	EdgeSpeed        float64 `yaml:"edge_speed"`         // velocity components uniform in +-this
	EdgeSpin         float64 `yaml:"edge_spin"`          // angular velocity uniform in +-this
	FragmentSpeed    float64 `yaml:"fragment_speed"`     // fragment velocity components uniform in +-this
	FragmentSpin     float64 `yaml:"fragment_spin"`      // fragment angular velocity uniform in +-this
	RadiusLarge      float64 `yaml:"radius_large"`
	RadiusMedium     float64 `yaml:"radius_medium"`
	RadiusSmall      float64 `yaml:"radius_small"`
	FragmentsPerHit  int     `yaml:"fragments_per_hit"` // children spawned per destroyed splittable asteroid
}

// BulletsConfig holds bullet subsystem parameters.
type BulletsConfig struct {
	Speed        float64 `yaml:"speed"`
	Lifetime     float64 `yaml:"lifetime"`      // seconds
	Radius       float64 `yaml:"radius"`        // collision radius
	Cooldown     float64 `yaml:"cooldown"`      // seconds between shots
	MuzzleOffset float64 `yaml:"muzzle_offset"` // spawn distance from ship center along the nose
}

// ParticlesConfig holds particle emission and decay parameters.
type ParticlesConfig struct {
	Drag float64 `yaml:"drag"` // velocity decay factor, 1/s

	// Destruction burst
	ExplosionPerRadius float64 `yaml:"explosion_per_radius"` // count = floor(radius/10 * this)
	SparkPerRadius     float64 `yaml:"spark_per_radius"`     // count = floor(radius/15 * this)
	BurstSpeedMin      float64 `yaml:"burst_speed_min"`
	BurstSpeedMax      float64 `yaml:"burst_speed_max"`
	BurstLifeMin       float64 `yaml:"burst_life_min"`
	BurstLifeMax       float64 `yaml:"burst_life_max"`
	BurstSizeMin       float64 `yaml:"burst_size_min"`
	BurstSizeMax       float64 `yaml:"burst_size_max"`

	// Engine thrust trail
	ThrustOffset   float64 `yaml:"thrust_offset"` // emit distance behind the ship
	ThrustSpeedMin float64 `yaml:"thrust_speed_min"`
	ThrustSpeedMax float64 `yaml:"thrust_speed_max"`
	ThrustLifeMin  float64 `yaml:"thrust_life_min"`
	ThrustLifeMax  float64 `yaml:"thrust_life_max"`
	ThrustSizeMin  float64 `yaml:"thrust_size_min"`
	ThrustSizeMax  float64 `yaml:"thrust_size_max"`
	ThrustJitter   float64 `yaml:"thrust_jitter"` // direction jitter, components uniform in +-this
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FixedDT32 float32 // Physics.FixedDT as float32
	Radii     [3]float32
}

// Radius returns the collision radius for a size class.
func (d *DerivedConfig) Radius(class components.SizeClass) float32 {
	return d.Radii[class]
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.FixedDT32 = float32(c.Physics.FixedDT)
	c.Derived.Radii = [3]float32{
		float32(c.Asteroids.RadiusLarge),
		float32(c.Asteroids.RadiusMedium),
		float32(c.Asteroids.RadiusSmall),
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
