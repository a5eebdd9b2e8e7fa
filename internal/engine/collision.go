package engine

import "math"

// Collision detection runs once per time step, after all entities have
// moved. Both overlap tests are axis-aligned box tests on entity
// centers expanded by each entity's half-extent.

// OverlapsCircular tests two circular entities by their radii.
func OverlapsCircular(aPos Vec, aR float64, bPos Vec, bR float64) bool {
	return math.Abs(aPos.X-bPos.X) < aR+bR && math.Abs(aPos.Y-bPos.Y) < aR+bR
}

// OverlapsBand tests a circular entity against an elliptical one using
// the band's per-axis half-extents.
func OverlapsBand(aPos Vec, aR float64, bPos Vec, bRX, bRY float64) bool {
	return math.Abs(aPos.X-bPos.X) < aR+bRX && math.Abs(aPos.Y-bPos.Y) < aR+bRY
}

// Collisions holds the derived outputs of one detection pass.
type Collisions struct {
	// HitCar is fatal overlap with any hazard vehicle.
	HitCar bool

	// HitCrocodile is fatal overlap with the apex hazard. It moves like
	// a plank but is never safe to touch.
	HitCrocodile bool

	// PlanksUnderFrog are the planks currently under the frog. Normally
	// at most one, but the set tolerates transient double overlaps.
	PlanksUnderFrog []string

	// PlanksUnderBonus is the same test for the lady frog, if present.
	PlanksUnderBonus []string

	// PickedUpBonusNow is true when the frog overlaps the bonus token
	// and it has not been collected yet this level.
	PickedUpBonusNow bool

	// InRiver is true only when the frog overlaps the hazard strip with
	// no plank underneath; a plank always overrides the strip.
	InRiver bool

	// OutOfBounds is true when the frog's horizontal extent lies
	// entirely outside the playfield.
	OutOfBounds bool

	// ReachedTargets are the goal slots overlapping the frog.
	ReachedTargets []string
}

// detect computes all derived collision outputs for the given state.
func detect(s State) Collisions {
	var col Collisions
	f := s.Frog

	for _, c := range s.Cars {
		if OverlapsCircular(f.Pos, f.Radius, c.Pos, c.Radius) {
			col.HitCar = true
			break
		}
	}

	for _, p := range s.Planks {
		if OverlapsBand(f.Pos, f.Radius, p.Pos, p.RadiusX, p.RadiusY) {
			col.PlanksUnderFrog = append(col.PlanksUnderFrog, p.ID)
		}
	}

	if s.LadyFrog != nil {
		lf := *s.LadyFrog
		for _, p := range s.Planks {
			if OverlapsBand(lf.Pos, lf.Radius, p.Pos, p.RadiusX, p.RadiusY) {
				col.PlanksUnderBonus = append(col.PlanksUnderBonus, p.ID)
			}
		}
		if !s.PickedUpBonus && OverlapsCircular(f.Pos, f.Radius, lf.Pos, lf.Radius) {
			col.PickedUpBonusNow = true
		}
	}

	if s.Crocodile != nil {
		c := *s.Crocodile
		if OverlapsBand(f.Pos, f.Radius, c.Pos, c.RadiusX, c.RadiusY) {
			col.HitCrocodile = true
		}
	}

	inStrip := OverlapsBand(f.Pos, f.Radius, s.River.Pos, s.River.RadiusX, s.River.RadiusY)
	col.InRiver = inStrip && len(col.PlanksUnderFrog) == 0

	col.OutOfBounds = f.Pos.X+f.Radius < 0 || f.Pos.X-f.Radius > Width

	for _, t := range s.Targets {
		if OverlapsCircular(f.Pos, f.Radius, t.Pos, t.Radius) {
			col.ReachedTargets = append(col.ReachedTargets, t.ID)
		}
	}

	return col
}
