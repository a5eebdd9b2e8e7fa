package engine

import "fmt"

// Entity factories. Each takes the current state (for id counters and
// simulation time) plus construction parameters and returns a brand-new
// entity. The matching counter is incremented by the reducer's create
// branch, so ids stay unique for the lifetime of a level.

// NewFrog constructs the player token at the start position.
func NewFrog(tick uint64) Frog {
	return Frog{
		ID:        "frog0",
		Pos:       Vec{X: FrogStartX, Y: FrogStartY},
		Radius:    FrogRadius,
		CreatedAt: tick,
	}
}

// NewCar spawns a hazard vehicle just off the edge it travels from.
func NewCar(s State, row int, dir Direction, speed float64) Car {
	return Car{
		ID:        fmt.Sprintf("car%d", s.Counters.Car),
		Pos:       Vec{X: spawnX(dir, CarRadius), Y: CarRowY(row)},
		Radius:    CarRadius,
		Dir:       dir,
		Speed:     speed,
		CreatedAt: s.Tick,
	}
}

// NewPlank spawns a platform just off the edge it travels from.
func NewPlank(s State, lane int, dir Direction, speed, radiusX float64) Plank {
	return Plank{
		ID:        fmt.Sprintf("plank%d", s.Counters.Plank),
		Pos:       Vec{X: spawnX(dir, radiusX), Y: PlankLaneY(lane)},
		RadiusX:   radiusX,
		RadiusY:   PlankRadiusY,
		Dir:       dir,
		Speed:     speed,
		CreatedAt: s.Tick,
	}
}

// NewCrocodile spawns the apex hazard on a river lane.
func NewCrocodile(s State, lane int, dir Direction, speed float64) Crocodile {
	return Crocodile{
		ID:        fmt.Sprintf("croc%d", s.Counters.Crocodile),
		Pos:       Vec{X: spawnX(dir, CrocRadiusX), Y: PlankLaneY(lane)},
		RadiusX:   CrocRadiusX,
		RadiusY:   CrocRadiusY,
		Dir:       dir,
		Speed:     speed,
		CreatedAt: s.Tick,
	}
}

// NewLadyFrog spawns the bonus token at the left edge of a river lane.
// She always travels rightward.
func NewLadyFrog(s State, lane int, speed float64) LadyFrog {
	return LadyFrog{
		ID:        fmt.Sprintf("ladyfrog%d", s.Counters.LadyFrog),
		Pos:       Vec{X: -LadyFrogRadius, Y: PlankLaneY(lane)},
		Radius:    LadyFrogRadius,
		Speed:     speed,
		CreatedAt: s.Tick,
	}
}

// NewTarget constructs goal slot index at its fixed bank position.
func NewTarget(s State, index int) Target {
	return Target{
		ID:        fmt.Sprintf("target%d", s.Counters.Target),
		Pos:       Vec{X: TargetX(index), Y: TargetRowY},
		Radius:    TargetRadius,
		CreatedAt: s.Tick,
	}
}

// NewRiver constructs the static hazard strip.
func NewRiver() River {
	return River{
		ID:      "river0",
		Pos:     Vec{X: Width / 2, Y: RiverCenterY},
		RadiusX: RiverHalfWidth,
		RadiusY: RiverHalfHeight,
	}
}

// spawnX places an entity fully off the edge it enters from so it
// slides into view rather than popping in.
func spawnX(dir Direction, halfWidth float64) float64 {
	if dir == DirRight {
		return -halfWidth
	}
	return Width + halfWidth
}
