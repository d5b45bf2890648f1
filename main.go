package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ballchase/config"
	"github.com/pthm-cable/ballchase/game"
	"github.com/pthm-cable/ballchase/renderer"
	"github.com/pthm-cable/ballchase/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	opts := game.Options{
		Seed:      *seed,
		Config:    cfg,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	if *headless {
		runHeadless(opts, *maxTicks)
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	hud := ui.NewHUD()
	opts.Listeners = []game.Listener{hud}
	g, err := game.NewGame(opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	trail := renderer.NewTrailCanvas(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	defer trail.Unload()

	controls := ui.NewControls(g, hud, ui.ControlsConfig{
		GrowFactor:   cfg.Evil.GrowFactor,
		ShrinkFactor: cfg.Evil.ShrinkFactor,
		HoldRepeat:   cfg.Derived.HoldRepeat,
	}, func(d time.Duration, action func()) ui.Repeater {
		return game.NewRepeater(d, action)
	})
	input := ui.NewInput()

	slog.Info("starting simulation", "max_ticks", *maxTicks)

	for !rl.WindowShouldClose() {
		handleResize(g, trail)
		input.Poll(g, controls)
		controls.Update(time.Now())

		trail.Begin()
		g.Step(trail)
		trail.End()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		trail.Draw()
		controls.Draw()
		rl.EndDrawing()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}
}

// handleResize checks for window resize and propagates new dimensions.
func handleResize(g *game.Game, trail *renderer.TrailCanvas) {
	if !rl.IsWindowResized() {
		return
	}
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	trail.Resize(w, h)
	g.SetBounds(float64(w), float64(h))
}

// runHeadless steps the simulation without a window, for telemetry runs.
func runHeadless(opts game.Options, maxTicks int) {
	g, err := game.NewGame(opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
	)

	for g.Step(renderer.Discard{}) {
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "balls", g.Population())
			return
		}
	}
}
