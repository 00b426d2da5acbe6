package game

import (
	"log/slog"

	"github.com/HUANREAL/AuraMonster/components"
)

// flushTelemetry checks if the stats window should be flushed and writes
// the window out when it is.
func (s *Sim) flushTelemetry() {
	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	idle, standing, crawling := s.countStates()
	stats := s.collector.Flush(s.tick, idle, standing, crawling)

	if s.logStats {
		stats.LogTo(slog.Default())
	}

	if s.output != nil {
		if err := s.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}

// countStates tallies the monster population by behavior state.
func (s *Sim) countStates() (idle, standing, crawling int) {
	query := s.filter.Query()
	for query.Next() {
		_, _, mon := query.Get()
		switch mon.State {
		case components.StateIdle:
			idle++
		case components.StatePatrolStanding:
			standing++
		case components.StatePatrolCrawling:
			crawling++
		}
	}
	return idle, standing, crawling
}
