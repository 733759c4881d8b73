package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/silt/camera"
	"github.com/pthm-cable/silt/config"
	"github.com/pthm-cable/silt/element"
	"github.com/pthm-cable/silt/phys"
	"github.com/pthm-cable/silt/renderer"
	"github.com/pthm-cable/silt/telemetry"
	"github.com/pthm-cable/silt/ui"
	"github.com/pthm-cable/silt/world"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config overriding the embedded defaults")
	logFile    = flag.String("logfile", "", "Write logs to file instead of stderr")
	perfLog    = flag.Bool("perf", false, "Log perf stats every telemetry window")
	headless   = flag.Bool("headless", false, "Run without graphics (for logging/benchmarking)")
	maxTicks   = flag.Int("max-ticks", 0, "Stop after N ticks (0 = run forever, useful with -headless)")
	outDir     = flag.String("out", "", "Write world.csv/perf.csv/config.yaml to this directory")
)

func main() {
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	logOut := os.Stderr
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, nil)))

	world.SetDims(cfg.World.Cols, cfg.World.Rows)

	atlas := element.NewAtlas(cfg.Atlas.Seed)
	wm := world.NewManager(
		[2]int{cfg.World.RangeXMin, cfg.World.RangeXMax},
		[2]int{cfg.World.RangeYMin, cfg.World.RangeYMax},
		atlas,
	)
	wm.BrushSize = cfg.Brush.Size
	wm.ReplaceAir = cfg.Brush.ReplaceAir

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	out, err := telemetry.NewOutputManager(*outDir)
	if err != nil {
		slog.Error("telemetry output", "err", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("writing config snapshot", "err", err)
	}

	pm := phys.NewManager(wm, perf)

	slog.Info("world ready",
		"chunks", cfg.Derived.ChunksX*cfg.Derived.ChunksY,
		"cols", world.Cols, "rows", world.Rows)

	if *headless {
		runHeadless(pm, wm, perf, out)
		return
	}
	runWindow(cfg, pm, wm, perf, out)
}

// runHeadless ticks the fixed-step loop as fast as it will go.
func runHeadless(pm *phys.Manager, wm *world.Manager, perf *telemetry.PerfCollector, out *telemetry.OutputManager) {
	interval := config.Cfg().Telemetry.StatsIntervalTicks
	in := world.Input{DT: phys.PhysicsUpdateDelta}

	for tick := 0; *maxTicks == 0 || tick < *maxTicks; tick++ {
		pm.Update(in)
		if interval > 0 && tick%interval == 0 {
			writeStats(pm, wm, perf, out)
		}
	}
	writeStats(pm, wm, perf, out)
}

// writeStats emits one telemetry row (and optionally a perf log line).
func writeStats(pm *phys.Manager, wm *world.Manager, perf *telemetry.PerfCollector, out *telemetry.OutputManager) {
	stats := perf.Stats()
	if *perfLog {
		stats.LogStats()
	}
	if err := out.WritePerf(stats, wm.Frame()); err != nil {
		slog.Error("perf telemetry", "err", err)
	}
	row := telemetry.WorldStats{
		Tick:         wm.Frame(),
		ActiveChunks: wm.ActiveChunks(),
		NonAirCells:  wm.NonAirCells(),
		Bodies:       pm.BodyCount(),
		TickUS:       stats.AvgTickDuration.Microseconds(),
		TicksPerSec:  stats.TicksPerSecond,
	}
	if err := out.WriteWorld(row); err != nil {
		slog.Error("world telemetry", "err", err)
	}
}

// runWindow opens the raylib window and drives the interactive loop.
func runWindow(cfg *config.Config, pm *phys.Manager, wm *world.Manager, perf *telemetry.PerfCollector, out *telemetry.OutputManager) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "silt")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	chunkW := float64(world.Cols) * world.UpscaleFactor
	chunkH := float64(world.Rows) * world.UpscaleFactor
	cam := camera.New(
		float64(cfg.Screen.Width), float64(cfg.Screen.Height),
		float64(cfg.World.RangeXMin)*chunkW, float64(cfg.World.RangeYMin)*chunkH,
		float64(cfg.World.RangeXMax+1)*chunkW, float64(cfg.World.RangeYMax+1)*chunkH,
	)

	chunkR := renderer.NewChunkRenderer()
	defer chunkR.Unload()
	bodyR := renderer.NewBodyRenderer()
	defer bodyR.Unload()

	hud := ui.NewHUD()
	hud.Visible = true
	var flags renderer.DebugFlags

	interval := cfg.Telemetry.StatsIntervalTicks
	lastStats := uint64(0)

	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())

		handleKeys(pm, hud, cam, dt)

		mouse := rl.GetMousePosition()
		wx, wy := cam.ScreenToWorld(float64(mouse.X), float64(mouse.Y))
		overHUD := hud.MouseOver()

		if rl.IsMouseButtonPressed(rl.MouseMiddleButton) && !overHUD {
			pm.SpawnBall(r2Vec(wx, wy))
		}

		in := world.Input{
			MouseWorld: r2Vec(wx, wy),
			Primary:    rl.IsMouseButtonDown(rl.MouseLeftButton) && !overHUD,
			Secondary:  rl.IsMouseButtonDown(rl.MouseRightButton) && !overHUD,
			Wheel:      float64(rl.GetMouseWheelMove()),
			DT:         dt,
		}
		pm.Update(in)
		perf.RecordFrame()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 24, 28, 255))

		chunkR.Draw(wm.Chunks(), cam)
		bodyR.Draw(pm, cam)
		renderer.DrawDebug(flags, wm.Chunks(), pm, cam)

		// Brush cursor.
		if !overHUD {
			r := float32(float64(wm.BrushSize) / 2 * world.UpscaleFactor * cam.Zoom)
			rl.DrawCircleLines(int32(mouse.X), int32(mouse.Y), r, rl.Fade(rl.RayWhite, 0.5))
		}

		hud.Draw(pm, wm, &flags, perf)
		rl.EndDrawing()

		if interval > 0 && wm.Frame()-lastStats >= uint64(interval) {
			lastStats = wm.Frame()
			writeStats(pm, wm, perf, out)
		}
	}
}

// handleKeys processes the keyboard: HUD toggle, pause, stepping, camera.
func handleKeys(pm *phys.Manager, hud *ui.HUD, cam *camera.Camera, dt float64) {
	if rl.IsKeyPressed(rl.KeyTab) {
		hud.Toggle()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		pm.Paused = !pm.Paused
	}
	if rl.IsKeyPressed(rl.KeyS) {
		pm.StepOnce()
	}

	if rl.IsKeyPressed(rl.KeyRight) {
		pm.TorqueFirstBall(2)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		pm.TorqueFirstBall(-2)
	}

	pan := 600 * dt
	if rl.IsKeyDown(rl.KeyW) {
		cam.Pan(0, -pan)
	}
	if rl.IsKeyDown(rl.KeyA) {
		cam.Pan(-pan, 0)
	}
	if rl.IsKeyDown(rl.KeyD) {
		cam.Pan(pan, 0)
	}
	// Avoid stealing S (single step); pan down on X.
	if rl.IsKeyDown(rl.KeyX) {
		cam.Pan(0, pan)
	}
	if rl.IsKeyDown(rl.KeyQ) {
		cam.ZoomBy(1 - dt)
	}
	if rl.IsKeyDown(rl.KeyE) {
		cam.ZoomBy(1 + dt)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		cam.Reset()
	}
}
