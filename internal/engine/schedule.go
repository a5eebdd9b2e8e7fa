package engine

import (
	"math/rand"
	"sort"
)

// Schedule is the spawn half of the action stream: a bounded,
// pre-composed sequence of create actions built once per level. Row
// parameters (direction, spacing, start offset) are sampled from the
// seeded rng at construction time, never during play, which keeps the
// reducer free of randomness. The driver merges the schedule's due
// actions with input moves and the periodic tick into one ordered
// stream.
type Schedule struct {
	events []scheduledAction
	next   int
}

type scheduledAction struct {
	due uint64
	seq int
	act Action
}

// plankSpacingScale stretches plank spawn gaps relative to car gaps so
// the slow-moving platforms spread out across the river.
const plankSpacingScale = 4

// NewSchedule composes the spawn sequence for the level the given
// state begins: the five goal slots at once, a finite run of hazard
// vehicles per road row, planks per river lane, the crocodile, and the
// lady frog. Row speeds and counts come from the state's tables so
// level scaling applies automatically.
func NewSchedule(rng *rand.Rand, s State, p Params) *Schedule {
	sc := &Schedule{}
	base := s.Tick

	for i := 0; i < TargetCount; i++ {
		sc.add(base, CreateTargetAction{Index: i})
	}

	for row := 0; row < CarRows; row++ {
		dir := Direction(rng.Intn(2))
		spacing := sampleSpacing(rng, p, 1)
		offset := uint64(rng.Intn(spacing + 1))
		for k := 0; k < s.RowCounts[row]; k++ {
			due := base + offset + uint64(k*spacing)
			sc.add(due, SpawnCarAction{Row: row, Dir: dir, Speed: s.RowSpeeds[row]})
		}
	}

	for lane := 0; lane < PlankLaneCount; lane++ {
		lp := p.PlankLanes[lane]
		spacing := sampleSpacing(rng, p, plankSpacingScale)
		for k := 0; k < lp.Count; k++ {
			due := base + uint64(k*spacing)
			sc.add(due, SpawnPlankAction{Lane: lane, Dir: lp.Dir, Speed: lp.Speed, RadiusX: lp.RadiusX})
		}
	}

	crocDir := Direction(rng.Intn(2))
	crocDue := base + uint64(rng.Intn(p.SpawnSpacingMax+1))
	sc.add(crocDue, SpawnCrocodileAction{Lane: p.CrocLane, Dir: crocDir, Speed: p.CrocSpeed})

	ladyDue := base + uint64(p.SpawnSpacingMax+rng.Intn(4*p.SpawnSpacingMax+1))
	sc.add(ladyDue, SpawnLadyFrogAction{Lane: p.LadyFrogLane, Speed: p.LadyFrogSpeed})

	// Stable by due time; ties keep per-source insertion order.
	sort.SliceStable(sc.events, func(i, j int) bool {
		return sc.events[i].due < sc.events[j].due
	})
	return sc
}

func (sc *Schedule) add(due uint64, a Action) {
	sc.events = append(sc.events, scheduledAction{due: due, seq: len(sc.events), act: a})
}

// Due drains and returns, in order, every scheduled action whose time
// has come at the given tick.
func (sc *Schedule) Due(now uint64) []Action {
	var out []Action
	for sc.next < len(sc.events) && sc.events[sc.next].due <= now {
		out = append(out, sc.events[sc.next].act)
		sc.next++
	}
	return out
}

// Remaining reports how many scheduled actions have not been drained.
func (sc *Schedule) Remaining() int {
	return len(sc.events) - sc.next
}

func sampleSpacing(rng *rand.Rand, p Params, scale int) int {
	lo := p.SpawnSpacingMin * scale
	hi := p.SpawnSpacingMax * scale
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
