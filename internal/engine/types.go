// Package engine implements the deterministic Frogger simulation core.
// It contains no external dependencies and no I/O: the whole game is a
// value-typed State advanced by a pure reducer over a closed action set.
// Randomness lives only in the spawn schedule; the reducer itself never
// consults the clock or an RNG.
package engine

import "fmt"

// World geometry in simulation units. The playfield is a fixed 600x600
// band; the renderer projects it onto whatever cell grid it has.
const (
	Width  = 600.0
	Height = 600.0

	// HopSize is the displacement of a single input-driven frog move.
	HopSize = 40.0

	FrogStartX = 300.0
	FrogStartY = 580.0
	FrogRadius = 20.0

	CarRadius       = 20.0
	PlankRadiusY    = 15.0
	CrocRadiusX     = 60.0
	CrocRadiusY     = 15.0
	LadyFrogRadius  = 15.0
	TargetRadius    = 20.0
	RiverCenterY    = 180.0
	RiverHalfWidth  = 300.0
	RiverHalfHeight = 100.0

	// CarRows is the number of hazard lanes; the row speed/count tables
	// carried in State always have exactly this length.
	CarRows = 6

	// PlankLaneCount is the number of river lanes carrying planks.
	PlankLaneCount = 5

	// TargetCount goal slots complete a level when all are filled.
	TargetCount = 5

	TargetRowY = 20.0
)

// Direction of horizontal travel.
type Direction int

const (
	DirLeft  Direction = 0
	DirRight Direction = 1
)

func (d Direction) String() string {
	if d == DirRight {
		return "right"
	}
	return "left"
}

// Sign returns -1 for leftward travel and +1 for rightward.
func (d Direction) Sign() float64 {
	if d == DirRight {
		return 1
	}
	return -1
}

// Vec is a 2D position in world units.
type Vec struct {
	X, Y float64
}

// CarRowY returns the lane center for hazard row 0..CarRows-1,
// counted from the frog's side of the road upward.
func CarRowY(row int) float64 {
	return 540.0 - 40.0*float64(row)
}

// PlankLaneY returns the lane center for river lane 0..PlankLaneCount-1,
// counted from the median upward.
func PlankLaneY(lane int) float64 {
	return 260.0 - 40.0*float64(lane)
}

// TargetX returns the center of goal slot index 0..TargetCount-1.
func TargetX(index int) float64 {
	return 60.0 + 120.0*float64(index)
}

// Frog is the player token. Exactly one exists in every State.
type Frog struct {
	ID        string
	Pos       Vec
	Radius    float64
	CreatedAt uint64
}

// LadyFrog is the optional bonus token. It drifts rightward at a fixed
// speed and wraps only when leaving on the right.
type LadyFrog struct {
	ID        string
	Pos       Vec
	Radius    float64
	Speed     float64
	CreatedAt uint64
}

// Car is a road hazard. Overlap with the frog is fatal.
type Car struct {
	ID        string
	Pos       Vec
	Radius    float64
	Dir       Direction
	Speed     float64
	CreatedAt uint64
}

// Plank is a river platform. A frog standing on one is carried by it
// and shielded from the river.
type Plank struct {
	ID        string
	Pos       Vec
	RadiusX   float64
	RadiusY   float64
	Dir       Direction
	Speed     float64
	CreatedAt uint64
}

// Crocodile moves like a plank but is never safe to stand on.
type Crocodile struct {
	ID        string
	Pos       Vec
	RadiusX   float64
	RadiusY   float64
	Dir       Direction
	Speed     float64
	CreatedAt uint64
}

// Target is one of the fixed goal slots at the top bank. Filled slots
// are removed from the State so each can score exactly once per level.
type Target struct {
	ID        string
	Pos       Vec
	Radius    float64
	CreatedAt uint64
}

// River is the static hazard strip. Entering it without a plank
// underneath is fatal.
type River struct {
	ID      string
	Pos     Vec
	RadiusX float64
	RadiusY float64
}

// Counters holds the per-kind monotonic id counters. They are never
// reused within a level and reset only with a full state reset.
type Counters struct {
	Car       int
	Plank     int
	Crocodile int
	LadyFrog  int
	Target    int
}

// State is the complete simulation state. It is treated as an immutable
// value: the reducer returns a fresh State and never mutates its input.
type State struct {
	Tick uint64

	Frog      Frog
	LadyFrog  *LadyFrog
	Cars      []Car
	Planks    []Plank
	Crocodile *Crocodile
	Targets   []Target
	River     River

	Counters Counters

	Score     int
	HighScore int
	Level     int

	// Multiplier scales the row speed table on every level transition.
	Multiplier float64
	RowSpeeds  [CarRows]float64
	RowCounts  [CarRows]int

	// Derived per-tick collision sets, recomputed on every time step.
	OnPlank      []string
	BonusOnPlank []string
	AtTarget     []string

	PickedUpBonus bool
	TargetsFilled int

	LevelPassed bool
	GameOver    bool
}

// Terminal reports whether the driver should stop consuming actions and
// hand the state to ResetOrAdvance.
func (s State) Terminal() bool {
	return s.GameOver || s.LevelPassed
}

func (s State) String() string {
	return fmt.Sprintf("tick=%d level=%d score=%d high=%d slots=%d/%d cars=%d planks=%d over=%v passed=%v",
		s.Tick, s.Level, s.Score, s.HighScore, s.TargetsFilled, TargetCount,
		len(s.Cars), len(s.Planks), s.GameOver, s.LevelPassed)
}
