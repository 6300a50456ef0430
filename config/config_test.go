package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/rubble/components"
)

// TestLoadDefaults verifies the embedded defaults parse and derived
// values are computed.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Physics.FixedDT != 0.015625 {
		t.Errorf("FixedDT = %f, want 0.015625", cfg.Physics.FixedDT)
	}
	if cfg.Ship.MovementMode != "thrust" {
		t.Errorf("MovementMode = %q, want thrust", cfg.Ship.MovementMode)
	}
	if cfg.Asteroids.MaxCount != 8 {
		t.Errorf("MaxCount = %d, want 8", cfg.Asteroids.MaxCount)
	}
	if cfg.Bullets.Cooldown != 0.2 {
		t.Errorf("Cooldown = %f, want 0.2", cfg.Bullets.Cooldown)
	}

	if cfg.Derived.FixedDT32 != 0.015625 {
		t.Errorf("FixedDT32 = %f, want 0.015625", cfg.Derived.FixedDT32)
	}
	if got := cfg.Derived.Radius(components.SizeLarge); got != 40 {
		t.Errorf("Radius(Large) = %f, want 40", got)
	}
	if got := cfg.Derived.Radius(components.SizeMedium); got != 25 {
		t.Errorf("Radius(Medium) = %f, want 25", got)
	}
	if got := cfg.Derived.Radius(components.SizeSmall); got != 15 {
		t.Errorf("Radius(Small) = %f, want 15", got)
	}
}

// TestLoadOverlay verifies a user file overrides only the fields it
// names, leaving the rest at defaults.
func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := []byte("asteroids:\n  max_count: 3\nship:\n  movement_mode: direct\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Asteroids.MaxCount != 3 {
		t.Errorf("overridden MaxCount = %d, want 3", cfg.Asteroids.MaxCount)
	}
	if cfg.Ship.MovementMode != "direct" {
		t.Errorf("overridden MovementMode = %q, want direct", cfg.Ship.MovementMode)
	}
	// Untouched fields keep their defaults.
	if cfg.Asteroids.SpawnPeriod != 3.0 {
		t.Errorf("SpawnPeriod = %f, want 3.0", cfg.Asteroids.SpawnPeriod)
	}
	if cfg.Bullets.Speed != 400 {
		t.Errorf("Speed = %f, want 400", cfg.Bullets.Speed)
	}
}

// TestLoadMissingFile verifies a bad path errors instead of silently
// falling back.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

// TestWriteYAMLRoundTrip verifies a saved config loads back identically.
func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Asteroids.MaxCount = 12

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot: %v", err)
	}
	if back.Asteroids.MaxCount != 12 {
		t.Errorf("round-tripped MaxCount = %d, want 12", back.Asteroids.MaxCount)
	}
}
