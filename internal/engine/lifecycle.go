package engine

// Level and session life cycle. The driver calls ResetOrAdvance
// whenever the latest reducer output carries a terminal flag, then
// composes a fresh spawn schedule and resumes consuming actions.

// NewState constructs the initial state for level 1: one frog at the
// start position, the static river, empty dynamic collections, and the
// row tables taken from the rule set.
func NewState(p Params) State {
	return State{
		Frog:       NewFrog(0),
		River:      NewRiver(),
		Level:      1,
		Multiplier: p.Multiplier,
		RowSpeeds:  p.RowSpeeds,
		RowCounts:  p.RowCounts,
	}
}

// ResetOrAdvance maps a terminal state to the next round's state.
//
//   - game over: full reset to level 1; only the high score survives.
//   - level passed: next-level state; dynamic collections and per-level
//     flags reset, row speeds scale by the multiplier, row counts grow
//     at milestone levels, score and high score carry over.
//   - otherwise the state is returned unchanged.
func ResetOrAdvance(s State, p Params) State {
	switch {
	case s.GameOver:
		next := NewState(p)
		next.HighScore = s.HighScore
		return next

	case s.LevelPassed:
		next := NewState(p)
		next.Level = s.Level + 1
		next.Score = s.Score
		next.HighScore = s.HighScore

		next.RowSpeeds = s.RowSpeeds
		for i := range next.RowSpeeds {
			next.RowSpeeds[i] *= s.Multiplier
		}
		next.RowCounts = s.RowCounts
		if p.MilestoneEvery > 0 && next.Level%p.MilestoneEvery == 0 {
			for i := range next.RowCounts {
				next.RowCounts[i] += p.CountIncrement
			}
		}
		return next

	default:
		return s
	}
}
