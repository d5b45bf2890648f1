// Package game owns one simulation instance and drives its frame loop.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/ballchase/components"
	"github.com/pthm-cable/ballchase/config"
	"github.com/pthm-cable/ballchase/systems"
	"github.com/pthm-cable/ballchase/telemetry"
)

// Canvas is the drawing surface a step renders to.
type Canvas interface {
	// Fade darkens the whole canvas with translucent black.
	Fade(alpha float64)
	FillCircle(x, y, r float64, c components.Color)
	StrokeCircle(x, y, r float64, c components.Color)
}

// Listener receives one-way notifications from the simulation.
type Listener interface {
	ReportFPS(fps int)
	ReportPopulationCount(n int)
}

// EliminationListener is optionally implemented by a Listener that wants to
// hear about every ball the predator removes.
type EliminationListener interface {
	BallEaten(b *components.Ball)
}

// Clock supplies wall-clock time for FPS accounting and hold-to-repeat.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a new Game.
type Options struct {
	Seed      int64
	Width     float64 // canvas width (0 = config screen width)
	Height    float64 // canvas height (0 = config screen height)
	Config    *config.Config
	Clock     Clock
	Listeners []Listener
	LogStats  bool
	OutputDir string
}

// Game holds the complete simulation state.
// It is not safe for concurrent use; all calls must come from the goroutine
// that runs the frame loop.
type Game struct {
	cfg   *config.Config
	rng   *rand.Rand
	clock Clock

	bounds components.Bounds

	// Population in insertion order, and id lookup for live balls
	balls  []*components.Ball
	index  map[uint64]*components.Ball
	nextID uint64

	evil    *components.Evil
	intent  systems.Intent
	pointer pointerSession

	// State
	running            bool
	collisionDetection bool
	tick               int64

	// Cadence counters
	fadeCount  int
	spawnCount int
	fpsFrames  int
	fpsElapsed time.Duration
	lastFPS    int

	listeners []Listener

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
}

// NewGame creates a running simulation with its initial population and predator.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = cfg.Derived.ScreenW
	}
	if height == 0 {
		height = cfg.Derived.ScreenH
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}

	g := &Game{
		cfg:                cfg,
		rng:                rand.New(rand.NewSource(seed)),
		clock:              clock,
		bounds:             components.Bounds{Width: width, Height: height},
		index:              make(map[uint64]*components.Ball),
		running:            true,
		collisionDetection: true,
		listeners:          opts.Listeners,
		collector:          telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		outputManager:      om,
		logStats:           opts.LogStats,
	}

	g.SpawnBalls(g.initialBallCount())
	g.evil = g.createRandomEvil()

	slog.Info("simulation created",
		"seed", seed,
		"width", width,
		"height", height,
		"balls", len(g.balls),
		"evil_size", g.evil.Size,
		"evil_speed", g.evil.BaseSpeed,
	)

	return g, nil
}

// AddListener registers another notification target.
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// Unload flushes and closes telemetry output.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close telemetry output", "error", err)
	}
}

// Tick returns the number of steps run so far.
func (g *Game) Tick() int64 {
	return g.tick
}

// Balls returns the live population in iteration order.
// The slice is owned by the game and only valid until the next step.
func (g *Game) Balls() []*components.Ball {
	return g.balls
}

// Population returns the number of live balls.
func (g *Game) Population() int {
	return len(g.balls)
}

// Evil returns the predator.
func (g *Game) Evil() *components.Evil {
	return g.evil
}

// Intent returns the predator's direction intent.
func (g *Game) Intent() *systems.Intent {
	return &g.intent
}

// Bounds returns the current canvas size.
func (g *Game) Bounds() components.Bounds {
	return g.bounds
}

// LastFPS returns the most recently published FPS value.
func (g *Game) LastFPS() int {
	return g.lastFPS
}
