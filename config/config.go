// Package config provides configuration loading and access for the
// monster behavior simulation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all behavior and simulation parameters.
type Config struct {
	Sim       SimConfig       `yaml:"sim"`
	Arena     ArenaConfig     `yaml:"arena"`
	Monster   MonsterConfig   `yaml:"monster"`
	Idle      IdleConfig      `yaml:"idle"`
	Patrol    PatrolConfig    `yaml:"patrol"`
	Crawl     CrawlConfig     `yaml:"crawl"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// SimConfig holds simulation loop settings.
type SimConfig struct {
	DT       float64 `yaml:"dt"`       // seconds per tick
	Monsters int     `yaml:"monsters"` // number of monsters to spawn
}

// ArenaConfig describes the box-terrain arena the harness builds.
type ArenaConfig struct {
	HalfExtent   float64 `yaml:"half_extent"`   // floor half width
	WallHeight   float64 `yaml:"wall_height"`   // perimeter wall height
	Columns      int     `yaml:"columns"`       // crawlable columns scattered on the floor
	ColumnWidth  float64 `yaml:"column_width"`  // column half width
	ColumnHeight float64 `yaml:"column_height"` // column height
}

// MonsterConfig holds per-monster movement speeds.
type MonsterConfig struct {
	StandingSpeed float64 `yaml:"standing_speed"` // units/sec while patrolling upright
	CrawlingSpeed float64 `yaml:"crawling_speed"` // units/sec while crawling
}

// IdleConfig holds idle behavior parameters.
type IdleConfig struct {
	MinDuration            float64 `yaml:"min_duration"`
	MaxDuration            float64 `yaml:"max_duration"`
	MinSubtleInterval      float64 `yaml:"min_subtle_interval"`
	MaxSubtleInterval      float64 `yaml:"max_subtle_interval"`
	BreathingCycle         float64 `yaml:"breathing_cycle"`
	PatrolTransitionChance float64 `yaml:"patrol_transition_chance"`
}

// PatrolConfig holds parameters shared by both patrol modes.
type PatrolConfig struct {
	Range            float64 `yaml:"range"`
	MinStopDuration  float64 `yaml:"min_stop_duration"`
	MaxStopDuration  float64 `yaml:"max_stop_duration"`
	AcceptanceRadius float64 `yaml:"acceptance_radius"`
}

// CrawlConfig holds the surface-crawling parameters. Angles are degrees.
type CrawlConfig struct {
	SurfaceTransitionChance float64 `yaml:"surface_transition_chance"`
	DetectionRange          float64 `yaml:"detection_range"`
	AlignmentSpeed          float64 `yaml:"alignment_speed"`
	MinTransitionAngleDeg   float64 `yaml:"min_transition_angle_deg"`
	ClearanceOffset         float64 `yaml:"clearance_offset"`
	SearchAttempts          int     `yaml:"search_attempts"`
	MinSearchFraction       float64 `yaml:"min_search_fraction"`
	CrawlPitchDeg           float64 `yaml:"crawl_pitch_deg"`
	TransitionPitchDeg      float64 `yaml:"transition_pitch_deg"`
	UpwardBiasChance        float64 `yaml:"upward_bias_chance"`
	TransitionDot           float64 `yaml:"transition_dot"`
	ObstacleDot             float64 `yaml:"obstacle_dot"`
	StuckTimeout            float64 `yaml:"stuck_timeout"`
	StuckMinSpeed           float64 `yaml:"stuck_min_speed"`
	TurnBlendSpeed          float64 `yaml:"turn_blend_speed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MinTransitionAngleRad float64
	CrawlPitchRad         float64
	TransitionPitchRad    float64
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config and
// normalizes values the behavior core cannot use as configured.
func (c *Config) computeDerived() {
	if c.Sim.DT <= 0 {
		c.Sim.DT = 1.0 / 60.0
	}
	if c.Sim.Monsters < 0 {
		c.Sim.Monsters = 0
	}
	c.Derived.MinTransitionAngleRad = c.Crawl.MinTransitionAngleDeg * math.Pi / 180
	c.Derived.CrawlPitchRad = c.Crawl.CrawlPitchDeg * math.Pi / 180
	c.Derived.TransitionPitchRad = c.Crawl.TransitionPitchDeg * math.Pi / 180
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
