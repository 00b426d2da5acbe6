package telemetry

import (
	"math"
	"testing"

	"github.com/HUANREAL/AuraMonster/components"
)

func TestCollectorShouldFlush(t *testing.T) {
	dt := 1.0 / 60
	c := NewCollector(10, dt) // 600 ticks per window

	if c.ShouldFlush(599) {
		t.Errorf("flushed before the window elapsed")
	}
	if !c.ShouldFlush(600) {
		t.Errorf("did not flush at the window boundary")
	}
}

func TestCollectorTinyWindowClamped(t *testing.T) {
	c := NewCollector(0.001, 1.0/60)
	if !c.ShouldFlush(1) {
		t.Errorf("sub-tick window should flush every tick")
	}
}

func TestCollectorRecordAndFlush(t *testing.T) {
	dt := 1.0 / 60
	c := NewCollector(10, dt)

	c.Record(NewStateChangeEvent(1, 0, components.StateIdle, components.StatePatrolCrawling))
	c.Record(NewSurfaceTransitionEvent(2, 0, 90))
	c.Record(NewSurfaceTransitionEvent(3, 0, 45))
	c.Record(Event{Type: EventStuckRecovery, Tick: 4})
	c.Record(Event{Type: EventDestinationChosen, Tick: 5})
	c.Record(Event{Type: EventDestinationReached, Tick: 6})
	c.Record(Event{Type: EventSubtleMovement, Tick: 7})
	c.RecordCrawlDistance(12.5)
	c.RecordCrawlDistance(7.5)

	stats := c.Flush(600, 2, 1, 1)

	if stats.WindowEndTick != 600 {
		t.Errorf("window end = %d, want 600", stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-10) > 0.001 {
		t.Errorf("sim time = %v, want 10", stats.SimTimeSec)
	}
	if stats.IdleCount != 2 || stats.StandingCount != 1 || stats.CrawlingCount != 1 {
		t.Errorf("population = (%d, %d, %d), want (2, 1, 1)",
			stats.IdleCount, stats.StandingCount, stats.CrawlingCount)
	}
	if stats.StateChanges != 1 || stats.SurfaceTransitions != 2 || stats.StuckRecoveries != 1 {
		t.Errorf("event counts wrong: %+v", stats)
	}
	if stats.DestinationsChosen != 1 || stats.DestinationsReached != 1 || stats.SubtleMovements != 1 {
		t.Errorf("event counts wrong: %+v", stats)
	}
	if math.Abs(stats.DistanceCrawled-20) > 0.001 {
		t.Errorf("distance crawled = %v, want 20", stats.DistanceCrawled)
	}
	if math.Abs(stats.TransitionAngleMean-67.5) > 0.001 {
		t.Errorf("transition angle mean = %v, want 67.5", stats.TransitionAngleMean)
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector(10, 1.0/60)

	c.Record(Event{Type: EventStuckRecovery})
	c.RecordCrawlDistance(5)
	c.Flush(600, 0, 0, 0)

	stats := c.Flush(1200, 0, 0, 0)
	if stats.StuckRecoveries != 0 || stats.DistanceCrawled != 0 {
		t.Errorf("counters survived a flush: %+v", stats)
	}
	if stats.WindowStartTick != 600 {
		t.Errorf("window start = %d, want 600", stats.WindowStartTick)
	}
	if c.ShouldFlush(1201) {
		t.Errorf("window did not restart after flush")
	}
}
