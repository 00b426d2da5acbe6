package telemetry

import (
	"log/slog"
	"sort"
)

// WindowStats holds aggregated behavior statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population by state at window end
	IdleCount     int `csv:"idle"`
	StandingCount int `csv:"standing"`
	CrawlingCount int `csv:"crawling"`

	// Events during window
	StateChanges        int `csv:"state_changes"`
	SurfaceTransitions  int `csv:"surface_transitions"`
	StuckRecoveries     int `csv:"stuck_recoveries"`
	DestinationsChosen  int `csv:"destinations_chosen"`
	DestinationsReached int `csv:"destinations_reached"`
	SubtleMovements     int `csv:"subtle_movements"`

	// Crawl progress during window
	DistanceCrawled float64 `csv:"distance_crawled"`

	// Surface transition angle distribution (degrees)
	TransitionAngleMean float64 `csv:"transition_angle_mean"`
	TransitionAngleP50  float64 `csv:"transition_angle_p50"`
	TransitionAngleP90  float64 `csv:"transition_angle_p90"`
}

// LogTo writes the window stats via slog.
func (s WindowStats) LogTo(logger *slog.Logger) {
	logger.Info("behavior stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"idle", s.IdleCount,
		"standing", s.StandingCount,
		"crawling", s.CrawlingCount,
		"state_changes", s.StateChanges,
		"surface_transitions", s.SurfaceTransitions,
		"stuck_recoveries", s.StuckRecoveries,
		"destinations_chosen", s.DestinationsChosen,
		"destinations_reached", s.DestinationsReached,
		"distance_crawled", s.DistanceCrawled,
		"transition_angle_mean", s.TransitionAngleMean,
	)
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeAngleStats calculates mean and percentiles from transition
// angle samples.
func ComputeAngleStats(values []float64) (mean, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	return mean, p50, p90
}
