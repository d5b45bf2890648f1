package game

import (
	"time"

	"github.com/pthm-cable/ballchase/components"
	"github.com/pthm-cable/ballchase/systems"
	"github.com/pthm-cable/ballchase/telemetry"
)

// Step runs one frame: fade, predator, balls, elimination, FPS accounting and
// periodic spawning. It returns false without touching any state while the
// simulation is paused.
func (g *Game) Step(c Canvas) bool {
	if !g.running {
		return false
	}

	start := g.clock.Now()
	g.perfCollector.StartTick()

	// 1. Partially remove the trail
	g.perfCollector.StartPhase(telemetry.PhaseFade)
	g.fade(c)

	// 2. Predator
	g.perfCollector.StartPhase(telemetry.PhaseEvil)
	systems.UpdateEvil(g.evil, &g.intent, g.bounds)
	drawEvil(c, g.evil)

	// 3. Balls, in population order
	g.perfCollector.StartPhase(telemetry.PhaseBalls)
	g.updateBalls(c)

	// 4. Predator eats
	g.perfCollector.StartPhase(telemetry.PhaseElimination)
	g.eliminate()

	// 5. FPS accounting covers drawing and elimination only
	g.accountFrame(g.clock.Now().Sub(start))

	// 6. Periodic spawn
	g.perfCollector.StartPhase(telemetry.PhaseSpawn)
	g.spawnCount++
	if g.spawnCount >= g.cfg.Schedule.SpawnEvery {
		g.spawnCount = 0
		g.SpawnBalls(1)
	}

	g.perfCollector.EndTick()
	g.tick++

	g.flushTelemetry()
	return true
}

// fade darkens the previous frame, with a stronger overlay every
// HeavyFadeEvery frames to bound ghosting.
func (g *Game) fade(c Canvas) {
	alpha := g.cfg.Schedule.FadeAlpha
	g.fadeCount++
	if g.fadeCount >= g.cfg.Schedule.HeavyFadeEvery {
		alpha = g.cfg.Schedule.HeavyFadeAlpha
		g.fadeCount = 0
	}
	c.Fade(alpha)
}

// updateBalls moves and draws every ball, then scans it against later balls.
// Drawing after the move keeps touching balls visibly in contact.
func (g *Game) updateBalls(c Canvas) {
	for i, b := range g.balls {
		systems.UpdateBall(b, g.bounds)
		c.FillCircle(b.X, b.Y, b.Size, b.Color)
		if g.collisionDetection {
			for n := systems.CollisionDetect(g.balls, i, g.rng); n > 0; n-- {
				g.collector.RecordCollision()
			}
		}
	}
}

// eliminate filters out every ball touching the predator.
func (g *Game) eliminate() {
	kept, eaten := systems.Eliminate(g.balls, g.evil, g.index)
	g.balls = kept
	if len(eaten) == 0 {
		return
	}

	for _, b := range eaten {
		g.collector.RecordEaten()
		for _, l := range g.listeners {
			if el, ok := l.(EliminationListener); ok {
				el.BallEaten(b)
			}
		}
	}
	g.reportPopulation()
}

// accountFrame accumulates frame time and publishes FPS every FPSEvery frames.
func (g *Game) accountFrame(d time.Duration) {
	if d <= 0 {
		d = time.Millisecond
	}
	g.fpsElapsed += d
	g.fpsFrames++
	if g.fpsFrames < g.cfg.Schedule.FPSEvery {
		return
	}

	fps := int(int64(g.fpsFrames) * int64(time.Second) / int64(g.fpsElapsed))
	g.fpsFrames = 0
	g.fpsElapsed = 0
	g.lastFPS = fps

	g.collector.RecordFPS(fps, len(g.balls))
	for _, l := range g.listeners {
		l.ReportFPS(fps)
	}
}

func (g *Game) reportPopulation() {
	n := len(g.balls)
	for _, l := range g.listeners {
		l.ReportPopulationCount(n)
	}
}

// drawEvil renders the predator as a filled disc with a white outline.
func drawEvil(c Canvas, e *components.Evil) {
	c.FillCircle(e.X, e.Y, e.Size, e.Color)
	c.StrokeCircle(e.X, e.Y, e.Size, components.White)
}
