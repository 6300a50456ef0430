// Package ui draws the HUD and the raygui debug panel.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Info is the per-frame state the HUD displays.
type Info struct {
	Tick        int64
	Seed        int64
	FPS         int32
	Asteroids   int
	Bullets     int
	Particles   int
	Paused      bool
	Wireframe   bool
	SpawnPeriod float32 // seconds between edge spawns

	// Phase timings for the debug panel, one line per phase.
	PerfLines []string
}

// Actions carries debug panel interactions back to the shell.
type Actions struct {
	TogglePause     bool
	ToggleWireframe bool
	ClearAsteroids  bool
	SpawnPeriod     float32 // new value when SpawnPeriodSet
	SpawnPeriodSet  bool
}

// HUD renders status text and an optional debug panel.
type HUD struct {
	ShowDebug bool
}

// NewHUD creates a HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD and, when visible, the debug panel. Returns any
// panel interactions.
func (h *HUD) Draw(info Info) Actions {
	rl.DrawText(fmt.Sprintf("Tick: %d  FPS: %d", info.Tick, info.FPS), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Asteroids: %d  Bullets: %d  Particles: %d",
		info.Asteroids, info.Bullets, info.Particles), 10, 35, 20, rl.White)
	rl.DrawText("WASD move/turn  SPACE fire  R reset  T wireframe  F1 debug", 10, 60, 10, rl.Gray)
	if info.Paused {
		rl.DrawText("PAUSED", 10, 80, 20, rl.Yellow)
	}

	var actions Actions
	if !h.ShowDebug {
		return actions
	}

	height := float32(220 + 20*len(info.PerfLines))
	panel := rl.Rectangle{X: 10, Y: 110, Width: 220, Height: height}
	gui.Panel(panel, "Debug")

	y := panel.Y + 30
	gui.Label(rl.Rectangle{X: panel.X + 10, Y: y, Width: 200, Height: 20},
		fmt.Sprintf("Seed: %d", info.Seed))
	y += 30

	paused := gui.CheckBox(rl.Rectangle{X: panel.X + 10, Y: y, Width: 20, Height: 20}, "Paused", info.Paused)
	if paused != info.Paused {
		actions.TogglePause = true
	}
	y += 30

	wire := gui.CheckBox(rl.Rectangle{X: panel.X + 10, Y: y, Width: 20, Height: 20}, "Wireframe", info.Wireframe)
	if wire != info.Wireframe {
		actions.ToggleWireframe = true
	}
	y += 30

	gui.Label(rl.Rectangle{X: panel.X + 10, Y: y, Width: 200, Height: 20},
		fmt.Sprintf("Spawn period: %.1fs", info.SpawnPeriod))
	y += 20
	period := gui.SliderBar(rl.Rectangle{X: panel.X + 10, Y: y, Width: 200, Height: 20},
		"0.5", "10", info.SpawnPeriod, 0.5, 10)
	if period != info.SpawnPeriod {
		actions.SpawnPeriod = period
		actions.SpawnPeriodSet = true
	}
	y += 30

	if gui.Button(rl.Rectangle{X: panel.X + 10, Y: y, Width: 200, Height: 30}, "Clear asteroids") {
		actions.ClearAsteroids = true
	}
	y += 40

	for _, line := range info.PerfLines {
		gui.Label(rl.Rectangle{X: panel.X + 10, Y: y, Width: 200, Height: 20}, line)
		y += 20
	}

	return actions
}
