package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rubble/config"
	"github.com/pthm-cable/rubble/game"
	"github.com/pthm-cable/rubble/renderer"
	"github.com/pthm-cable/rubble/telemetry"
	"github.com/pthm-cable/rubble/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N fixed ticks (0 = unlimited)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output dir", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	collector := telemetry.NewCollector(cfg.Telemetry.StatsWindow)
	g := game.NewGameWithOptions(game.Options{Seed: rngSeed, Collector: collector})

	if *headless {
		runHeadless(g, collector, output, *logStats, *maxTicks)
		return
	}
	runWindowed(g, collector, output, *logStats, *maxTicks)
}

// runHeadless drives the simulation with a synthetic 60 Hz frame clock
// and no input. Used for soak runs and deterministic replays.
func runHeadless(g *game.Game, collector *telemetry.Collector, output *telemetry.OutputManager, logStats bool, maxTicks int64) {
	cfg := config.Cfg()
	field := game.Playfield{
		Width:  float32(cfg.Screen.Width),
		Height: float32(cfg.Screen.Height),
	}
	const frameDT = 1.0 / 60.0

	slog.Info("starting headless simulation", "seed", g.Seed(), "max_ticks", maxTicks)

	for {
		g.Advance(frameDT, game.InputSnapshot{}, field)
		drainEvents(g)
		flushStats(g, collector, output, logStats, nil)

		if maxTicks > 0 && g.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
	}
}

// runWindowed runs the raylib shell: poll input, advance the core, draw
// the projected entities and HUD.
func runWindowed(g *game.Game, collector *telemetry.Collector, output *telemetry.OutputManager, logStats bool, maxTicks int64) {
	cfg := config.Cfg()

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "rubble")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	rend := renderer.New()
	hud := ui.NewHUD()
	frames := telemetry.NewFrameClock(1024)
	perf := telemetry.NewPerfStats()
	paused := false

	for !rl.WindowShouldClose() {
		// Shell-level toggles
		if rl.IsKeyPressed(rl.KeyT) {
			rend.Wireframe = !rend.Wireframe
		}
		if rl.IsKeyPressed(rl.KeyF1) {
			hud.ShowDebug = !hud.ShowDebug
		}
		if rl.IsKeyPressed(rl.KeyP) {
			paused = !paused
		}

		field := game.Playfield{
			Width:  float32(rl.GetScreenWidth()),
			Height: float32(rl.GetScreenHeight()),
		}

		wallDT := rl.GetFrameTime()
		if !paused {
			start := time.Now()
			g.Advance(wallDT, pollInput(), field)
			d := time.Since(start)
			frames.Record(d.Seconds())
			perf.Record("advance", d)
		}

		drainEvents(g)
		flushStats(g, collector, output, logStats, frames)

		drawStart := time.Now()
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rend.Draw(g.RenderList(), field.Width, field.Height)
		actions := hud.Draw(ui.Info{
			Tick:        g.Tick(),
			Seed:        g.Seed(),
			FPS:         rl.GetFPS(),
			Asteroids:   g.AsteroidCount(),
			Bullets:     g.BulletCount(),
			Particles:   g.ParticleCount(),
			Paused:      paused,
			Wireframe:   rend.Wireframe,
			SpawnPeriod: g.SpawnPeriod(),
			PerfLines:   perfLines(perf),
		})
		rl.EndDrawing()
		perf.Record("draw", time.Since(drawStart))

		if actions.TogglePause {
			paused = !paused
		}
		if actions.ToggleWireframe {
			rend.Wireframe = !rend.Wireframe
		}
		if actions.ClearAsteroids {
			g.ClearAsteroids()
		}
		if actions.SpawnPeriodSet {
			g.SetSpawnPeriod(actions.SpawnPeriod)
		}

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
}

// perfLines formats the tracked phase averages for the debug panel,
// slowest first.
func perfLines(perf *telemetry.PerfStats) []string {
	names := perf.SortedNames()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %.2fms", name, float64(perf.Avg(name).Microseconds())/1000))
	}
	return lines
}

// pollInput samples the keyboard into the core's input snapshot.
func pollInput() game.InputSnapshot {
	return game.InputSnapshot{
		Forward:   rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Reverse:   rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		TurnLeft:  rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		TurnRight: rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Fire:      rl.IsKeyDown(rl.KeySpace),
		Reset:     rl.IsKeyDown(rl.KeyR),
	}
}

// drainEvents forwards lifecycle events to the log at debug level. A
// fuller shell would route these to audio.
func drainEvents(g *game.Game) {
	for _, e := range g.DrainEvents() {
		switch e.Type {
		case game.EventAsteroidDestroyed:
			slog.Debug("asteroid destroyed", "class", e.Class.String(), "x", e.X, "y", e.Y)
		case game.EventShipReset:
			slog.Info("ship reset")
		default:
			slog.Debug(e.Type.String())
		}
	}
}

// flushStats writes window stats to the log and CSV when a window ends.
func flushStats(g *game.Game, collector *telemetry.Collector, output *telemetry.OutputManager, logStats bool, frames *telemetry.FrameClock) {
	stats, due := collector.FlushIfDue(g.SimTime())
	if !due {
		return
	}

	if logStats {
		slog.Info("window_stats",
			"window_end_sec", stats.WindowEnd,
			"shots_fired", stats.ShotsFired,
			"edge_spawns", stats.EdgeSpawns,
			"fragment_spawns", stats.FragmentSpawns,
			"destroyed_large", stats.DestroyedLarge,
			"destroyed_medium", stats.DestroyedMedium,
			"destroyed_small", stats.DestroyedSmall,
			"particles_spawned", stats.ParticlesSpawned,
		)
	}
	if err := output.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
	if frames != nil {
		if err := output.WriteFrames(frames.Summary()); err != nil {
			slog.Error("failed to write frame summary", "error", err)
		}
	}
}
