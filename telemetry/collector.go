package telemetry

// Collector accumulates events between FPS reports and produces WindowStats.
// A window closes after a fixed number of FPS reports.
type Collector struct {
	windowReports int

	// Current window tracking
	windowStartTick int64

	// Samples and counters for current window
	fps        []float64
	population []float64
	spawned    int
	eaten      int
	collisions int
}

// NewCollector creates a new stats collector that flushes every windowReports
// FPS reports.
func NewCollector(windowReports int) *Collector {
	if windowReports < 1 {
		windowReports = 1
	}
	return &Collector{
		windowReports: windowReports,
		fps:           make([]float64, 0, windowReports),
		population:    make([]float64, 0, windowReports),
	}
}

// RecordFPS records one published FPS value together with the population at
// that moment.
func (c *Collector) RecordFPS(fps, population int) {
	c.fps = append(c.fps, float64(fps))
	c.population = append(c.population, float64(population))
}

// RecordSpawned records n balls added.
func (c *Collector) RecordSpawned(n int) {
	c.spawned += n
}

// RecordEaten records one ball removed by the predator.
func (c *Collector) RecordEaten() {
	c.eaten++
}

// RecordCollision records a pair that started overlapping.
func (c *Collector) RecordCollision() {
	c.collisions++
}

// ShouldFlush returns true once the window holds enough FPS reports.
func (c *Collector) ShouldFlush() bool {
	return len(c.fps) >= c.windowReports
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, population int) WindowStats {
	fpsMean, fpsStd, fpsP10, fpsP50, fpsP90 := ComputeDistribution(c.fps)
	popMean, _, _, _, _ := ComputeDistribution(c.population)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		Population:      population,
		PopulationMean:  popMean,
		Spawned:         c.spawned,
		Eaten:           c.eaten,
		Collisions:      c.collisions,
		FPSMean:         fpsMean,
		FPSStd:          fpsStd,
		FPSP10:          fpsP10,
		FPSP50:          fpsP50,
		FPSP90:          fpsP90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.fps = c.fps[:0]
	c.population = c.population[:0]
	c.spawned = 0
	c.eaten = 0
	c.collisions = 0

	return stats
}
