package engine

import "testing"

func TestOverlapPredicates(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec
		aR   float64
		bR   float64
		want bool
	}{
		{"same center", Vec{300, 300}, Vec{300, 300}, 20, 20, true},
		{"touching edges (exclusive)", Vec{300, 300}, Vec{340, 300}, 20, 20, false},
		{"just overlapping", Vec{300, 300}, Vec{339, 300}, 20, 20, true},
		{"far apart", Vec{100, 100}, Vec{500, 500}, 20, 20, false},
		{"y overlap only", Vec{100, 300}, Vec{500, 300}, 20, 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := OverlapsCircular(tc.a, tc.aR, tc.b, tc.bR)
			if got != tc.want {
				t.Errorf("OverlapsCircular = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlapsBandUsesPerAxisExtents(t *testing.T) {
	plankPos := Vec{300, 220}
	frog := Vec{340, 220}

	// Within the long axis but outside a circular radius of equal area.
	if !OverlapsBand(frog, FrogRadius, plankPos, 60, PlankRadiusY) {
		t.Error("frog within plank's horizontal extent should overlap")
	}
	// One lane up: outside the short vertical extent.
	frog.Y = 180
	if OverlapsBand(frog, FrogRadius, plankPos, 60, PlankRadiusY) {
		t.Error("frog a full lane away should not overlap the plank")
	}
}

func TestDetectPlankOverridesRiver(t *testing.T) {
	s := NewState(DefaultParams())
	s.Frog.Pos = Vec{300, 220} // mid-river lane
	s.Planks = []Plank{{
		ID: "plank0", Pos: Vec{300, 220}, RadiusX: 60, RadiusY: PlankRadiusY,
		Dir: DirRight, Speed: 1,
	}}

	col := detect(s)
	if col.InRiver {
		t.Error("a plank under the frog must override the river hazard")
	}
	if len(col.PlanksUnderFrog) != 1 || col.PlanksUnderFrog[0] != "plank0" {
		t.Errorf("PlanksUnderFrog = %v, want [plank0]", col.PlanksUnderFrog)
	}
}

func TestDetectRiverWithoutPlank(t *testing.T) {
	s := NewState(DefaultParams())
	s.Frog.Pos = Vec{300, 220}

	col := detect(s)
	if !col.InRiver {
		t.Error("frog in the river with no plank underneath should be in hazard")
	}
}

func TestDetectStartRowIsSafe(t *testing.T) {
	s := NewState(DefaultParams())

	col := detect(s)
	if col.InRiver || col.HitCar || col.OutOfBounds {
		t.Errorf("fresh state should detect no hazards, got %+v", col)
	}
}

func TestDetectOutOfBounds(t *testing.T) {
	s := NewState(DefaultParams())

	s.Frog.Pos = Vec{-FrogRadius - 1, 220}
	if col := detect(s); !col.OutOfBounds {
		t.Error("frog fully past the left edge should be out of bounds")
	}

	// Partially out is still in bounds.
	s.Frog.Pos = Vec{-FrogRadius + 1, 220}
	if col := detect(s); col.OutOfBounds {
		t.Error("frog partially visible should not be out of bounds")
	}

	s.Frog.Pos = Vec{Width + FrogRadius + 1, 220}
	if col := detect(s); !col.OutOfBounds {
		t.Error("frog fully past the right edge should be out of bounds")
	}
}

func TestDetectCrocodileNeverSafe(t *testing.T) {
	s := NewState(DefaultParams())
	lane := DefaultParams().CrocLane
	s.Frog.Pos = Vec{300, PlankLaneY(lane)}
	s.Crocodile = &Crocodile{
		ID: "croc0", Pos: Vec{300, PlankLaneY(lane)},
		RadiusX: CrocRadiusX, RadiusY: CrocRadiusY, Dir: DirLeft, Speed: 1,
	}
	// A plank on the same lane shields from the river but not the croc.
	s.Planks = []Plank{{
		ID: "plank0", Pos: Vec{300, PlankLaneY(lane)}, RadiusX: 60, RadiusY: PlankRadiusY,
		Dir: DirRight, Speed: 1,
	}}

	col := detect(s)
	if !col.HitCrocodile {
		t.Error("overlapping the crocodile should be fatal")
	}
	if col.InRiver {
		t.Error("plank still overrides the river itself")
	}
}

func TestDetectBonusPickupOnlyOnce(t *testing.T) {
	s := NewState(DefaultParams())
	s.Frog.Pos = Vec{300, 220}
	s.LadyFrog = &LadyFrog{ID: "ladyfrog0", Pos: Vec{300, 220}, Radius: LadyFrogRadius, Speed: 1}

	if col := detect(s); !col.PickedUpBonusNow {
		t.Error("frog overlapping the bonus token should pick it up")
	}

	s.PickedUpBonus = true
	if col := detect(s); col.PickedUpBonusNow {
		t.Error("bonus already held this level must not be picked up again")
	}
}
