package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one telemetry window.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`

	// Population at window end and averaged over FPS reports
	Population     int     `csv:"population"`
	PopulationMean float64 `csv:"population_mean"`

	// Events during window
	Spawned    int `csv:"spawned"`
	Eaten      int `csv:"eaten"`
	Collisions int `csv:"collisions"`

	// Published FPS distribution
	FPSMean float64 `csv:"fps_mean"`
	FPSStd  float64 `csv:"fps_std"`
	FPSP10  float64 `csv:"fps_p10"`
	FPSP50  float64 `csv:"fps_p50"`
	FPSP90  float64 `csv:"fps_p90"`
}

// ComputeDistribution returns mean, standard deviation and the 10th, 50th and
// 90th percentiles of values. Empty input yields zeros.
func ComputeDistribution(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n == 1 {
		mean = sorted[0]
	} else {
		mean, std = stat.MeanStdDev(sorted, nil)
	}

	p10 = stat.Quantile(0.10, stat.LinInterp, sorted, nil)
	p50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogStats logs the window via slog.
func (s WindowStats) LogStats() {
	slog.Info("window", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("tick", s.WindowEndTick),
		slog.Int("population", s.Population),
		slog.Int("spawned", s.Spawned),
		slog.Int("eaten", s.Eaten),
		slog.Int("collisions", s.Collisions),
		slog.Float64("fps_mean", s.FPSMean),
		slog.Float64("fps_std", s.FPSStd),
		slog.Float64("fps_p50", s.FPSP50),
	)
}
