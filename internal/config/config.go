// Package config provides YAML-based game configuration and difficulty
// presets for the Frogger engine.
package config

import "github.com/chuashinherh/Frogger/internal/engine"

// GameConfig contains all tunable rules of the game.
type GameConfig struct {
	Rewards Rewards     `yaml:"rewards"`
	Level   LevelRules  `yaml:"level"`
	Rows    RowTables   `yaml:"rows"`
	Planks  []PlankLane `yaml:"planks"`
	Hazards Hazards     `yaml:"hazards"`
	Spawn   SpawnRules  `yaml:"spawn"`
}

// Rewards defines the scoring rule set.
type Rewards struct {
	Hop   int `yaml:"hop"`
	Goal  int `yaml:"goal"`
	Bonus int `yaml:"bonus"`
}

// LevelRules defines per-level progression.
type LevelRules struct {
	Multiplier     float64 `yaml:"multiplier"`      // row speed scale per level
	MilestoneEvery int     `yaml:"milestone_every"` // levels between count bumps
	CountIncrement int     `yaml:"count_increment"` // cars added per row at milestones
}

// RowTables defines the initial hazard row speed and count tables.
// Both lists must have exactly one entry per road row.
type RowTables struct {
	Speeds []float64 `yaml:"speeds"`
	Counts []int     `yaml:"counts"`
}

// PlankLane configures one river lane of planks.
type PlankLane struct {
	Count     int     `yaml:"count"`
	Speed     float64 `yaml:"speed"`
	HalfWidth float64 `yaml:"half_width"`
	Rightward bool    `yaml:"rightward"`
}

// Hazards configures the river dwellers.
type Hazards struct {
	CrocSpeed     float64 `yaml:"croc_speed"`
	CrocLane      int     `yaml:"croc_lane"`
	LadyFrogSpeed float64 `yaml:"lady_frog_speed"`
	LadyFrogLane  int     `yaml:"lady_frog_lane"`
}

// SpawnRules bounds the schedule's sampled spawn spacing, in ticks.
type SpawnRules struct {
	SpacingMin int `yaml:"spacing_min"`
	SpacingMax int `yaml:"spacing_max"`
}

// Params maps the config onto the engine's rule set. Malformed row or
// lane lists fall back to the engine defaults for the missing entries,
// so a partial config still yields a playable game.
func (c GameConfig) Params() engine.Params {
	p := engine.DefaultParams()

	if c.Rewards.Hop > 0 {
		p.HopReward = c.Rewards.Hop
	}
	if c.Rewards.Goal > 0 {
		p.GoalReward = c.Rewards.Goal
	}
	if c.Rewards.Bonus > 0 {
		p.BonusReward = c.Rewards.Bonus
	}

	if c.Level.Multiplier > 0 {
		p.Multiplier = c.Level.Multiplier
	}
	if c.Level.MilestoneEvery > 0 {
		p.MilestoneEvery = c.Level.MilestoneEvery
	}
	if c.Level.CountIncrement > 0 {
		p.CountIncrement = c.Level.CountIncrement
	}

	for i := 0; i < engine.CarRows && i < len(c.Rows.Speeds); i++ {
		if c.Rows.Speeds[i] > 0 {
			p.RowSpeeds[i] = c.Rows.Speeds[i]
		}
	}
	for i := 0; i < engine.CarRows && i < len(c.Rows.Counts); i++ {
		if c.Rows.Counts[i] > 0 {
			p.RowCounts[i] = c.Rows.Counts[i]
		}
	}

	for i := 0; i < engine.PlankLaneCount && i < len(c.Planks); i++ {
		lane := c.Planks[i]
		if lane.Count <= 0 || lane.Speed <= 0 || lane.HalfWidth <= 0 {
			continue
		}
		dir := engine.DirLeft
		if lane.Rightward {
			dir = engine.DirRight
		}
		p.PlankLanes[i] = engine.LaneParams{
			Count:   lane.Count,
			Speed:   lane.Speed,
			RadiusX: lane.HalfWidth,
			Dir:     dir,
		}
	}

	if c.Hazards.CrocSpeed > 0 {
		p.CrocSpeed = c.Hazards.CrocSpeed
	}
	if c.Hazards.CrocLane > 0 && c.Hazards.CrocLane < engine.PlankLaneCount {
		p.CrocLane = c.Hazards.CrocLane
	}
	if c.Hazards.LadyFrogSpeed > 0 {
		p.LadyFrogSpeed = c.Hazards.LadyFrogSpeed
	}
	if c.Hazards.LadyFrogLane > 0 && c.Hazards.LadyFrogLane < engine.PlankLaneCount {
		p.LadyFrogLane = c.Hazards.LadyFrogLane
	}

	if c.Spawn.SpacingMin > 0 {
		p.SpawnSpacingMin = c.Spawn.SpacingMin
	}
	if c.Spawn.SpacingMax >= p.SpawnSpacingMin {
		p.SpawnSpacingMax = c.Spawn.SpacingMax
	}

	return p
}
