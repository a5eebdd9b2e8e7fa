// Package game adapts the deterministic Frogger engine to the
// platform's tick/input/render loop. It owns the pieces the pure
// engine refuses to: the seeded rng, the spawn schedule, and the
// level/restart life cycle.
package game

import (
	"math/rand"

	"github.com/chuashinherh/Frogger/internal/config"
	"github.com/chuashinherh/Frogger/internal/core"
	"github.com/chuashinherh/Frogger/internal/engine"
)

// levelBannerTicks is how long the LEVEL PASSED banner stays up before
// the next level's schedule starts, at 60 ticks/s.
const levelBannerTicks = 90

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game drives one Frogger session. Each Step composes the tick's action
// stream (input move, due spawns, time step) and folds it through the
// reducer; Game itself holds no simulation rules.
type Game struct {
	runtime core.RuntimeConfig
	params  engine.Params
	reducer engine.Reducer

	rng   *rand.Rand
	sched *engine.Schedule
	state engine.State

	banner int // remaining LEVEL PASSED ticks, 0 when not showing
	paused bool
}

// New creates a new Frogger game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes or restarts the game from scratch.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.params = cfg.Params()
	g.reducer = engine.NewReducer(g.params)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.state = engine.NewState(g.params)
	g.sched = engine.NewSchedule(g.rng, g.state, g.params)
	g.banner = 0
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.nextRound()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.banner > 0 {
		g.banner--
		if g.banner == 0 {
			g.nextRound()
		}
		return core.StepResult{State: g.State()}
	}

	if mv, ok := moveFor(in); ok {
		g.state = g.reducer.Reduce(g.state, mv)
	}
	for _, act := range g.sched.Due(g.state.Tick) {
		g.state = g.reducer.Reduce(g.state, act)
	}
	g.state = g.reducer.Reduce(g.state, engine.TickAction{Delta: 1})

	if g.state.LevelPassed {
		g.banner = levelBannerTicks
	}

	return core.StepResult{State: g.State()}
}

// nextRound maps the terminal state to the next round and composes a
// fresh spawn schedule from the session rng.
func (g *Game) nextRound() {
	g.state = engine.ResetOrAdvance(g.state, g.params)
	g.sched = engine.NewSchedule(g.rng, g.state, g.params)
}

// moveFor translates the input frame into at most one frog hop. Only
// the hop toward the goal bank scores; the explicit noop keeps
// unrecognized keys flowing through the reducer as zero moves.
func moveFor(in core.InputFrame) (engine.MoveAction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.MoveUp(), true
	case in.Has(core.ActionDown):
		return engine.MoveDown(), true
	case in.Has(core.ActionLeft):
		return engine.MoveLeft(), true
	case in.Has(core.ActionRight):
		return engine.MoveRight(), true
	case in.Has(core.ActionNoop):
		return engine.MoveNoop(), true
	}
	return engine.MoveAction{}, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:       g.state.Score,
		HighScore:   g.state.HighScore,
		Level:       g.state.Level,
		SlotsFilled: g.state.TargetsFilled,
		GameOver:    g.state.GameOver,
		Paused:      g.paused,
	}
}
