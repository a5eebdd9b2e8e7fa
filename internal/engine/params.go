package engine

// LaneParams configures one river lane of planks.
type LaneParams struct {
	Count   int
	Speed   float64
	RadiusX float64
	Dir     Direction
}

// Params carries every tunable rule of the simulation. The YAML config
// layer maps onto this struct; the engine itself never reads files.
type Params struct {
	// Scoring.
	HopReward   int
	GoalReward  int
	BonusReward int

	// Level progression: row speeds scale by Multiplier each level, row
	// counts grow by CountIncrement at levels divisible by MilestoneEvery.
	Multiplier     float64
	MilestoneEvery int
	CountIncrement int

	// Initial hazard row tables, index 0 nearest the frog's start.
	RowSpeeds [CarRows]float64
	RowCounts [CarRows]int

	// River lanes, index 0 nearest the median.
	PlankLanes [PlankLaneCount]LaneParams

	CrocSpeed     float64
	CrocLane      int
	LadyFrogSpeed float64
	LadyFrogLane  int

	// Spawn spacing bounds in ticks, sampled once per row by the schedule.
	SpawnSpacingMin int
	SpawnSpacingMax int
}

// DefaultParams returns the built-in rule set, tuned for 60 ticks/s.
func DefaultParams() Params {
	return Params{
		HopReward:   10,
		GoalReward:  50,
		BonusReward: 200,

		Multiplier:     1.2,
		MilestoneEvery: 5,
		CountIncrement: 1,

		RowSpeeds: [CarRows]float64{1.2, 1.8, 1.5, 2.2, 1.6, 2.0},
		RowCounts: [CarRows]int{2, 2, 3, 2, 3, 2},

		PlankLanes: [PlankLaneCount]LaneParams{
			{Count: 3, Speed: 1.0, RadiusX: 60, Dir: DirRight},
			{Count: 3, Speed: 1.4, RadiusX: 50, Dir: DirLeft},
			{Count: 2, Speed: 1.1, RadiusX: 70, Dir: DirRight},
			{Count: 3, Speed: 1.6, RadiusX: 45, Dir: DirLeft},
			{Count: 2, Speed: 1.2, RadiusX: 65, Dir: DirRight},
		},

		CrocSpeed:     1.1,
		CrocLane:      2,
		LadyFrogSpeed: 0.8,
		LadyFrogLane:  1,

		SpawnSpacingMin: 30,
		SpawnSpacingMax: 90,
	}
}
