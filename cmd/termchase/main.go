// Command termchase runs the ball chase simulation in a terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/ballchase/config"
	"github.com/pthm-cable/ballchase/game"
	"github.com/pthm-cable/ballchase/renderer/term"
)

// hud keeps the latest counter and FPS for the status line.
type hud struct {
	count int
	fps   int
}

func (h *hud) ReportFPS(fps int)           { h.fps = fps }
func (h *hud) ReportPopulationCount(n int) { h.count = n }

type app struct {
	screen tcell.Screen
	canvas *term.Canvas
	game   *game.Game
	hud    *hud
	sound  *eatSound
	keys   *keyHold

	cfg      *config.Config
	maxTicks int
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logPath := flag.String("log", "termchase.log", "Log file (stdout is the terminal)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	scale := flag.Float64("scale", 4, "World units per terminal pixel")
	sound := flag.Bool("sound", false, "Play a tone when a ball is eaten")

	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewJSONHandler(logFile, nil)))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp(config.Cfg(), game.Options{
		Seed:      *seed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}, *scale, *sound)
	if err != nil {
		slog.Error("failed to start", "error", err)
		fmt.Fprintf(os.Stderr, "starting: %v\n", err)
		os.Exit(1)
	}
	a.maxTicks = *maxTicks
	defer a.cleanup()

	a.run()
}

func newApp(cfg *config.Config, opts game.Options, scale float64, sound bool) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	a := &app{
		screen: screen,
		canvas: term.NewCanvas(screen, scale),
		hud:    &hud{},
		keys:   newKeyHold(keyHoldTimeout),
		cfg:    cfg,
	}

	opts.Config = cfg
	opts.Width, opts.Height = a.canvas.Bounds()
	opts.Listeners = []game.Listener{a.hud}

	if sound {
		s, err := newEatSound()
		if err != nil {
			// Non-fatal, the simulation runs without sound
			slog.Warn("audio initialization failed", "error", err)
		}
		a.sound = s
		opts.Listeners = append(opts.Listeners, s)
	}

	g, err := game.NewGame(opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	a.game = g
	return a, nil
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / time.Duration(max(a.cfg.Screen.TargetFPS, 1)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			for _, name := range a.keys.Expire(now) {
				a.game.KeyUp(name)
			}
			a.game.PollPointer()
			a.game.Step(a.canvas)
			if a.sound != nil {
				a.sound.Flush()
			}
			a.draw()

			if a.maxTicks > 0 && int(a.game.Tick()) >= a.maxTicks {
				slog.Info("max ticks reached", "tick", a.game.Tick())
				return
			}
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep running.
func (a *app) handleEvent(ev tcell.Event) bool {
	g := a.game

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if name := directionKeyName(ev); name != "" {
			if a.keys.Press(name, time.Now()) {
				g.KeyDown(name)
			}
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case ' ', 'p':
			g.SetRunning(!g.Running())
		case '1':
			g.SpawnBalls(10)
		case '2':
			g.SpawnBalls(100)
		case '+', '=':
			g.SetEvilSizeMultiplier(a.cfg.Evil.GrowFactor)
		case '-':
			g.SetEvilSizeMultiplier(a.cfg.Evil.ShrinkFactor)
		case 'c':
			g.SetCollisionDetectionEnabled(!g.CollisionDetectionEnabled())
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		wx, wy := a.canvas.ToWorld(x, y)
		switch {
		case ev.Buttons()&tcell.Button1 != 0 && !g.PointerActive():
			g.PointerDown(wx, wy)
		case ev.Buttons()&tcell.Button1 != 0:
			g.PointerMove(wx, wy)
		case g.PointerActive():
			g.PointerUp()
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			a.keys.Clear()
			g.FocusLost()
		}

	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := ev.Size()
		a.canvas.Resize(cols, rows)
		g.SetBounds(a.canvas.Bounds())
	}

	return true
}

func (a *app) draw() {
	a.canvas.Blit()

	status := "Balls: " + strconv.Itoa(a.hud.count) + "  FPS: " + strconv.Itoa(a.hud.fps)
	if !a.game.Running() {
		status += "  PAUSED"
	}
	if !a.game.CollisionDetectionEnabled() {
		status += "  collisions off"
	}
	a.drawText(0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))

	_, rows := a.screen.Size()
	help := "arrows/wasd move  mouse steer  1/2 add  +/- size  c collisions  space pause  q quit"
	a.drawText(0, rows-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack))

	a.screen.Show()
}

func (a *app) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *app) cleanup() {
	a.game.Unload()
	if a.sound != nil {
		a.sound.Close()
	}
	a.screen.Fini()
}
