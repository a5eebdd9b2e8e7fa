package engine

// Action is the closed set of inputs the reducer understands. The
// marker method seals the interface so the dispatch in Reduce is
// exhaustive by construction; there is no unhandled-action path.
type Action interface {
	isAction()
}

// TickAction advances simulation time. It is the only action that runs
// movement and collision detection.
type TickAction struct {
	Delta uint64
}

// MoveAction is one input-driven frog hop. Only the hop toward the goal
// bank carries Scoring; unrecognized keys become a zero-displacement,
// non-scoring move.
type MoveAction struct {
	DX, DY  float64
	Scoring bool
}

// SpawnCarAction creates a hazard vehicle on the given road row.
type SpawnCarAction struct {
	Row   int
	Dir   Direction
	Speed float64
}

// SpawnPlankAction creates a platform on the given river lane.
type SpawnPlankAction struct {
	Lane    int
	Dir     Direction
	Speed   float64
	RadiusX float64
}

// SpawnCrocodileAction creates the apex hazard on the given river lane.
type SpawnCrocodileAction struct {
	Lane  int
	Dir   Direction
	Speed float64
}

// SpawnLadyFrogAction creates the bonus token on the given river lane.
type SpawnLadyFrogAction struct {
	Lane  int
	Speed float64
}

// CreateTargetAction creates goal slot Index at the top bank.
type CreateTargetAction struct {
	Index int
}

func (TickAction) isAction()           {}
func (MoveAction) isAction()           {}
func (SpawnCarAction) isAction()       {}
func (SpawnPlankAction) isAction()     {}
func (SpawnCrocodileAction) isAction() {}
func (SpawnLadyFrogAction) isAction()  {}
func (CreateTargetAction) isAction()   {}

// MoveUp returns the score-bearing hop toward the goal bank.
func MoveUp() MoveAction { return MoveAction{DY: -HopSize, Scoring: true} }

// MoveDown returns the hop back toward the start bank.
func MoveDown() MoveAction { return MoveAction{DY: HopSize} }

// MoveLeft returns the leftward hop.
func MoveLeft() MoveAction { return MoveAction{DX: -HopSize} }

// MoveRight returns the rightward hop.
func MoveRight() MoveAction { return MoveAction{DX: HopSize} }

// MoveNoop is the zero-displacement move emitted for unrecognized keys.
// It still counts as one reducer invocation.
func MoveNoop() MoveAction { return MoveAction{} }
