package telemetry

// Collector accumulates behavior events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationTicks int64
	dt                  float64

	windowStartTick int64

	// Event counters for current window
	stateChanges        int
	surfaceTransitions  int
	stuckRecoveries     int
	destinationsChosen  int
	destinationsReached int
	subtleMovements     int

	distanceCrawled  float64
	transitionAngles []float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Record accumulates one behavior event into the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventStateChange:
		c.stateChanges++
	case EventSurfaceTransition:
		c.surfaceTransitions++
		c.transitionAngles = append(c.transitionAngles, ev.AngleDeg)
	case EventStuckRecovery:
		c.stuckRecoveries++
	case EventDestinationChosen:
		c.destinationsChosen++
	case EventDestinationReached:
		c.destinationsReached++
	case EventSubtleMovement:
		c.subtleMovements++
	}
}

// RecordCrawlDistance adds crawl movement distance to the current window.
func (c *Collector) RecordCrawlDistance(d float64) {
	c.distanceCrawled += d
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller supplies the current tick and the population counts by
// behavior state at window end.
func (c *Collector) Flush(currentTick int64, idleCount, standingCount, crawlingCount int) WindowStats {
	mean, p50, p90 := ComputeAngleStats(c.transitionAngles)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		IdleCount:     idleCount,
		StandingCount: standingCount,
		CrawlingCount: crawlingCount,

		StateChanges:        c.stateChanges,
		SurfaceTransitions:  c.surfaceTransitions,
		StuckRecoveries:     c.stuckRecoveries,
		DestinationsChosen:  c.destinationsChosen,
		DestinationsReached: c.destinationsReached,
		SubtleMovements:     c.subtleMovements,

		DistanceCrawled: c.distanceCrawled,

		TransitionAngleMean: mean,
		TransitionAngleP50:  p50,
		TransitionAngleP90:  p90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.stateChanges = 0
	c.surfaceTransitions = 0
	c.stuckRecoveries = 0
	c.destinationsChosen = 0
	c.destinationsReached = 0
	c.subtleMovements = 0
	c.distanceCrawled = 0
	c.transitionAngles = c.transitionAngles[:0]

	return stats
}
