package game

import (
	"log/slog"

	"github.com/pthm-cable/ballchase/components"
	"github.com/pthm-cable/ballchase/systems"
)

// SetRunning pauses or resumes the frame loop. Resuming does not replay
// missed frames.
func (g *Game) SetRunning(running bool) {
	if g.running == running {
		return
	}
	g.running = running
	slog.Info("simulation state changed", "running", running, "tick", g.tick)
}

// Running reports whether Step advances the simulation.
func (g *Game) Running() bool {
	return g.running
}

// SetCollisionDetectionEnabled toggles the pairwise scan. Disabling it forgets
// every remembered contact so re-enabling starts clean.
func (g *Game) SetCollisionDetectionEnabled(enabled bool) {
	if g.collisionDetection == enabled {
		return
	}
	g.collisionDetection = enabled
	if !enabled {
		systems.ClearCollisions(g.balls)
	}
	slog.Info("collision detection changed", "enabled", enabled, "balls", len(g.balls))
}

// CollisionDetectionEnabled reports whether the pairwise scan runs.
func (g *Game) CollisionDetectionEnabled() bool {
	return g.collisionDetection
}

// SetEvilSizeMultiplier scales the predator. A result of zero becomes 1.
func (g *Game) SetEvilSizeMultiplier(factor float64) {
	g.evil.MultiplySize(factor)
}

// SetBounds updates the canvas size used for wall reflection.
func (g *Game) SetBounds(width, height float64) {
	g.bounds = components.Bounds{Width: width, Height: height}
}
