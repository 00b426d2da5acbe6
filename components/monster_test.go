package components

import "testing"

func TestBehaviorStateString(t *testing.T) {
	tests := []struct {
		state BehaviorState
		want  string
	}{
		{StateIdle, "idle"},
		{StatePatrolStanding, "patrol_standing"},
		{StatePatrolCrawling, "patrol_crawling"},
		{NumBehaviorStates, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("state %d String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestSpeedForState(t *testing.T) {
	m := &Monster{StandingSpeed: 300, CrawlingSpeed: 150}

	tests := []struct {
		state BehaviorState
		want  float64
	}{
		{StateIdle, 0},
		{StatePatrolStanding, 300},
		{StatePatrolCrawling, 150},
	}

	for _, tt := range tests {
		if got := m.SpeedForState(tt.state); got != tt.want {
			t.Errorf("SpeedForState(%v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}
