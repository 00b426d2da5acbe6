package game

import (
	"github.com/HUANREAL/AuraMonster/config"
	"github.com/HUANREAL/AuraMonster/systems"
)

// behaviorParams maps the loaded config onto the behavior core's tuning.
// Angles arrive in radians via the derived section.
func behaviorParams(cfg *config.Config) systems.Params {
	return systems.Params{
		MinIdleDuration:        cfg.Idle.MinDuration,
		MaxIdleDuration:        cfg.Idle.MaxDuration,
		MinSubtleInterval:      cfg.Idle.MinSubtleInterval,
		MaxSubtleInterval:      cfg.Idle.MaxSubtleInterval,
		BreathingCycleDuration: cfg.Idle.BreathingCycle,
		PatrolTransitionChance: cfg.Idle.PatrolTransitionChance,

		PatrolRange:      cfg.Patrol.Range,
		MinStopDuration:  cfg.Patrol.MinStopDuration,
		MaxStopDuration:  cfg.Patrol.MaxStopDuration,
		AcceptanceRadius: cfg.Patrol.AcceptanceRadius,

		SurfaceTransitionChance: cfg.Crawl.SurfaceTransitionChance,
		SurfaceDetectionRange:   cfg.Crawl.DetectionRange,
		SurfaceAlignmentSpeed:   cfg.Crawl.AlignmentSpeed,
		MinTransitionAngle:      cfg.Derived.MinTransitionAngleRad,
		ClearanceOffset:         cfg.Crawl.ClearanceOffset,
		SearchAttempts:          cfg.Crawl.SearchAttempts,
		MinSearchFraction:       cfg.Crawl.MinSearchFraction,
		CrawlPitchRange:         cfg.Derived.CrawlPitchRad,
		TransitionPitchRange:    cfg.Derived.TransitionPitchRad,
		UpwardBiasChance:        cfg.Crawl.UpwardBiasChance,
		TransitionDot:           cfg.Crawl.TransitionDot,
		ObstacleDot:             cfg.Crawl.ObstacleDot,
		StuckTimeout:            cfg.Crawl.StuckTimeout,
		StuckMinSpeed:           cfg.Crawl.StuckMinSpeed,
		TurnBlendSpeed:          cfg.Crawl.TurnBlendSpeed,
	}
}
