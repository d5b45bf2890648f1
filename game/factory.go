package game

import (
	"github.com/pthm-cable/ballchase/components"
	"github.com/pthm-cable/ballchase/systems"
)

// initialBallCount scales the starting population with the shorter canvas side.
func (g *Game) initialBallCount() int {
	side := min(g.bounds.Width, g.bounds.Height)
	return int(side) / g.cfg.Ball.InitialDivisor
}

// SpawnBalls appends n random balls to the population.
func (g *Game) SpawnBalls(n int) {
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		b := g.createRandomBall()
		g.balls = append(g.balls, b)
		g.index[b.ID] = b
	}
	g.collector.RecordSpawned(n)
	g.reportPopulation()
}

// createRandomBall builds a ball that lies fully inside the canvas.
func (g *Game) createRandomBall() *components.Ball {
	cfg := g.cfg.Ball
	size := systems.RandomInt(g.rng, cfg.MinSize, cfg.MaxSize)

	shape := components.Shape{
		X:     float64(systems.RandomInt(g.rng, size, int(g.bounds.Width)-size)),
		Y:     float64(systems.RandomInt(g.rng, size, int(g.bounds.Height)-size)),
		VelX:  float64(systems.RandomInt(g.rng, cfg.MinSpeed, cfg.MaxSpeed)),
		VelY:  float64(systems.RandomInt(g.rng, cfg.MinSpeed, cfg.MaxSpeed)),
		Color: systems.RandomRGB(g.rng),
		Size:  float64(size),
	}

	h := components.Left
	if systems.RandomInt(g.rng, 0, 1) == 1 {
		h = components.Right
	}
	v := components.Up
	if systems.RandomInt(g.rng, 0, 1) == 1 {
		v = components.Down
	}

	id := g.nextID
	g.nextID++
	return components.NewBall(id, shape, h, v)
}

// createRandomEvil builds the predator at a random position inside the canvas.
func (g *Game) createRandomEvil() *components.Evil {
	cfg := g.cfg.Evil
	size := systems.RandomInt(g.rng, cfg.MinSize, cfg.MaxSize)
	speed := systems.RandomInt(g.rng, cfg.MinSpeed, cfg.MaxSpeed)

	return components.NewEvil(
		float64(systems.RandomInt(g.rng, size, int(g.bounds.Width)-size)),
		float64(systems.RandomInt(g.rng, size, int(g.bounds.Height)-size)),
		float64(speed),
		float64(size),
		components.Red,
	)
}
