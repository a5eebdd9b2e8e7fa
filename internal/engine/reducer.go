package engine

// Reducer is the authoritative state-transition function. It is pure
// over its two arguments: the same (state, action) pair always yields
// an identical result. Params are the fixed rule set it is closed over.
type Reducer struct {
	Params Params
}

// NewReducer returns a reducer closed over the given rule set.
func NewReducer(p Params) Reducer {
	return Reducer{Params: p}
}

// Reduce applies a single action and returns the successor state. The
// input state is never mutated. Dispatch is exhaustive over the sealed
// action set, so there is no failure outcome.
func (r Reducer) Reduce(s State, a Action) State {
	switch act := a.(type) {
	case TickAction:
		return r.applyTick(s, act)
	case MoveAction:
		return r.applyMove(s, act)
	case SpawnCarAction:
		next := s
		next.Cars = append(cloneCars(s.Cars), NewCar(s, act.Row, act.Dir, act.Speed))
		next.Counters.Car++
		return next
	case SpawnPlankAction:
		next := s
		next.Planks = append(clonePlanks(s.Planks), NewPlank(s, act.Lane, act.Dir, act.Speed, act.RadiusX))
		next.Counters.Plank++
		return next
	case SpawnCrocodileAction:
		next := s
		croc := NewCrocodile(s, act.Lane, act.Dir, act.Speed)
		next.Crocodile = &croc
		next.Counters.Crocodile++
		return next
	case SpawnLadyFrogAction:
		next := s
		lady := NewLadyFrog(s, act.Lane, act.Speed)
		next.LadyFrog = &lady
		next.Counters.LadyFrog++
		return next
	case CreateTargetAction:
		next := s
		next.Targets = append(cloneTargets(s.Targets), NewTarget(s, act.Index))
		next.Counters.Target++
		return next
	}
	return s
}

// applyMove handles one input-driven hop. Horizontal hops wrap
// circularly so the frog can cross the side edges safely; vertical hops
// are clamped to the playfield. Only the hop toward the goal bank
// scores.
func (r Reducer) applyMove(s State, m MoveAction) State {
	next := s
	f := s.Frog

	f.Pos.X = WrapCircular(f.Pos.X+m.DX, f.Radius)
	f.Pos.Y = clamp(f.Pos.Y+m.DY, TargetRowY, FrogStartY)
	next.Frog = f

	if m.Scoring {
		next.Score = s.Score + r.Params.HopReward
		if next.Score > next.HighScore {
			next.HighScore = next.Score
		}
	}
	return next
}

// applyTick advances simulation time: all entities move, the collision
// pass runs, and the outcome (scoring, death, progression) is resolved
// into a single new state.
func (r Reducer) applyTick(s State, t TickAction) State {
	next := s
	next.Tick = s.Tick + t.Delta

	next.Cars = make([]Car, len(s.Cars))
	for i, c := range s.Cars {
		next.Cars[i] = stepCar(c)
	}
	next.Planks = make([]Plank, len(s.Planks))
	for i, p := range s.Planks {
		next.Planks[i] = stepPlank(p)
	}
	if s.Crocodile != nil {
		croc := stepCrocodile(*s.Crocodile)
		next.Crocodile = &croc
	}
	if s.LadyFrog != nil {
		lady := stepLadyFrog(*s.LadyFrog)
		next.LadyFrog = &lady
	}
	next.Frog = stepFrog(s.Frog, s.OnPlank, s.Planks)

	col := detect(next)

	next.OnPlank = col.PlanksUnderFrog
	next.BonusOnPlank = col.PlanksUnderBonus
	next.AtTarget = col.ReachedTargets

	if col.PickedUpBonusNow {
		next.PickedUpBonus = true
		next.LadyFrog = nil
	}

	if len(col.ReachedTargets) > 0 {
		next.Frog = NewFrog(next.Tick)
		next.Score += r.Params.GoalReward
		if next.PickedUpBonus {
			next.Score += r.Params.BonusReward
			next.PickedUpBonus = false
		}
		next.TargetsFilled += len(col.ReachedTargets)
		next.Targets = removeTargets(next.Targets, col.ReachedTargets)
		next.OnPlank = nil
		if next.TargetsFilled >= TargetCount {
			next.LevelPassed = true
		}
	}

	if next.Score > next.HighScore {
		next.HighScore = next.Score
	}

	if col.HitCar || col.HitCrocodile || col.InRiver || col.OutOfBounds {
		next.GameOver = true
	}

	return next
}

func cloneCars(cars []Car) []Car {
	out := make([]Car, len(cars), len(cars)+1)
	copy(out, cars)
	return out
}

func clonePlanks(planks []Plank) []Plank {
	out := make([]Plank, len(planks), len(planks)+1)
	copy(out, planks)
	return out
}

func cloneTargets(targets []Target) []Target {
	out := make([]Target, len(targets), len(targets)+1)
	copy(out, targets)
	return out
}

// removeTargets drops filled slots so each slot scores exactly once.
func removeTargets(targets []Target, ids []string) []Target {
	filled := make(map[string]bool, len(ids))
	for _, id := range ids {
		filled[id] = true
	}
	out := make([]Target, 0, len(targets))
	for _, t := range targets {
		if !filled[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
