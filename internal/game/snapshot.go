package game

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateLevelPassed GameStateType = "level_passed"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
)

// Snapshot captures the observable game state for determinism testing
// and replay comparison.
type Snapshot struct {
	Tick        uint64
	Level       int
	Score       int
	HighScore   int
	FrogX       float64
	FrogY       float64
	Cars        int
	Planks      int
	SlotsFilled int
	HasBonus    bool
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.paused:
		state = StatePaused
	case g.state.GameOver:
		state = StateGameOver
	case g.banner > 0:
		state = StateLevelPassed
	}

	return Snapshot{
		Tick:        g.state.Tick,
		Level:       g.state.Level,
		Score:       g.state.Score,
		HighScore:   g.state.HighScore,
		FrogX:       g.state.Frog.Pos.X,
		FrogY:       g.state.Frog.Pos.Y,
		Cars:        len(g.state.Cars),
		Planks:      len(g.state.Planks),
		SlotsFilled: g.state.TargetsFilled,
		HasBonus:    g.state.PickedUpBonus,
		State:       state,
	}
}
