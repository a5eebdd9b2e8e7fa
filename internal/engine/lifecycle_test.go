package engine

import "testing"

func TestNewState(t *testing.T) {
	p := DefaultParams()
	s := NewState(p)

	if s.Level != 1 {
		t.Errorf("level = %d, want 1", s.Level)
	}
	if s.Frog.Pos != (Vec{X: FrogStartX, Y: FrogStartY}) {
		t.Errorf("frog at %+v, want start position", s.Frog.Pos)
	}
	if len(s.Cars) != 0 || len(s.Planks) != 0 || len(s.Targets) != 0 {
		t.Error("fresh state must have empty dynamic collections")
	}
	if s.RowSpeeds != p.RowSpeeds || s.RowCounts != p.RowCounts {
		t.Error("row tables must come from the rule set")
	}
}

func TestResetOrAdvanceGameOver(t *testing.T) {
	p := DefaultParams()
	s := NewState(p)
	s.Tick = 900
	s.Score = 320
	s.HighScore = 770
	s.Level = 3
	s.GameOver = true
	s.Cars = []Car{{ID: "car0"}}

	next := ResetOrAdvance(s, p)

	if next.Level != 1 || next.Score != 0 || next.Tick != 0 {
		t.Errorf("game over must fully reset, got %s", next)
	}
	if next.HighScore != 770 {
		t.Errorf("high score = %d, want preserved 770", next.HighScore)
	}
	if len(next.Cars) != 0 {
		t.Error("dynamic collections must be empty after reset")
	}
	if next.RowSpeeds != p.RowSpeeds {
		t.Error("row speeds must return to initial values")
	}
}

func TestResetOrAdvanceLevelPassed(t *testing.T) {
	p := DefaultParams()
	s := NewState(p)
	s.Score = 480
	s.HighScore = 480
	s.LevelPassed = true
	s.TargetsFilled = TargetCount
	s.Planks = []Plank{{ID: "plank0"}}

	next := ResetOrAdvance(s, p)

	if next.Level != 2 {
		t.Errorf("level = %d, want 2", next.Level)
	}
	if next.Score != 480 || next.HighScore != 480 {
		t.Error("score and high score must carry over a level transition")
	}
	if next.TargetsFilled != 0 || next.LevelPassed {
		t.Error("per-level progress must reset")
	}
	if len(next.Planks) != 0 {
		t.Error("dynamic collections must be empty for the next level")
	}
	for i := range next.RowSpeeds {
		want := p.RowSpeeds[i] * p.Multiplier
		if next.RowSpeeds[i] != want {
			t.Errorf("row %d speed = %v, want %v", i, next.RowSpeeds[i], want)
		}
	}
	if next.RowCounts != p.RowCounts {
		t.Error("row counts only grow at milestone levels")
	}
}

func TestResetOrAdvanceMilestoneBumpsCounts(t *testing.T) {
	p := DefaultParams()
	s := NewState(p)
	s.Level = p.MilestoneEvery - 1
	s.LevelPassed = true

	next := ResetOrAdvance(s, p)

	if next.Level != p.MilestoneEvery {
		t.Fatalf("level = %d, want %d", next.Level, p.MilestoneEvery)
	}
	for i := range next.RowCounts {
		want := p.RowCounts[i] + p.CountIncrement
		if next.RowCounts[i] != want {
			t.Errorf("row %d count = %d, want %d", i, next.RowCounts[i], want)
		}
	}
}

func TestResetOrAdvanceNonTerminalUnchanged(t *testing.T) {
	p := DefaultParams()
	s := NewState(p)
	s.Score = 60
	s.Tick = 42

	next := ResetOrAdvance(s, p)
	if next.Score != 60 || next.Tick != 42 {
		t.Error("non-terminal states must pass through unchanged")
	}
}

func TestCompoundSpeedScalingAcrossLevels(t *testing.T) {
	p := DefaultParams()
	s := NewState(p)

	// Pass three levels in a row.
	for i := 0; i < 3; i++ {
		s.LevelPassed = true
		s = ResetOrAdvance(s, p)
	}

	want := p.RowSpeeds[0] * p.Multiplier * p.Multiplier * p.Multiplier
	if diff := s.RowSpeeds[0] - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("row 0 speed = %v, want %v", s.RowSpeeds[0], want)
	}
	if s.Level != 4 {
		t.Errorf("level = %d, want 4", s.Level)
	}
}
