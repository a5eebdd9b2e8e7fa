package engine

import "testing"

func TestWrapCircularIdempotent(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		radius float64
	}{
		{"center", 300, 20},
		{"left edge", 0, 20},
		{"right edge", 600, 20},
		{"just inside left band", -20, 20},
		{"just inside right band", 620, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WrapCircular(tc.x, tc.radius); got != tc.x {
				t.Errorf("WrapCircular(%v, %v) = %v, want unchanged", tc.x, tc.radius, got)
			}
		})
	}
}

func TestWrapCircularReflectsOnce(t *testing.T) {
	const r = 20.0

	// Fully out on the left: reflected to just off the right edge.
	x := WrapCircular(-r-1, r)
	if x != Width+r {
		t.Fatalf("left exit wrapped to %v, want %v", x, Width+r)
	}
	// The reflected value sits inside the band: wrapping again is a no-op.
	if again := WrapCircular(x, r); again != x {
		t.Errorf("double wrap moved %v to %v", x, again)
	}

	// Fully out on the right.
	x = WrapCircular(Width+r+1, r)
	if x != -r {
		t.Fatalf("right exit wrapped to %v, want %v", x, -r)
	}
	if again := WrapCircular(x, r); again != x {
		t.Errorf("double wrap moved %v to %v", x, again)
	}
}

func TestWrapBand(t *testing.T) {
	const hw = 60.0

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside", 300, 300},
		{"touching left band edge", -hw, -hw},
		{"past left", -hw - 0.5, Width + hw},
		{"touching right band edge", Width + hw, Width + hw},
		{"past right", Width + hw + 0.5, -hw},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WrapBand(tc.x, hw); got != tc.want {
				t.Errorf("WrapBand(%v, %v) = %v, want %v", tc.x, hw, got, tc.want)
			}
		})
	}
}

func TestWrapBonusOneDirectional(t *testing.T) {
	const r = 15.0

	// Exiting right reappears on the left.
	if got := WrapBonus(Width+r+1, r); got != -r {
		t.Errorf("right exit wrapped to %v, want %v", got, -r)
	}
	// Left side never wraps: the bonus token only travels rightward.
	if got := WrapBonus(-r-100, r); got != -r-100 {
		t.Errorf("left side should not wrap, got %v", got)
	}
	if got := WrapBonus(300, r); got != 300 {
		t.Errorf("inside band should be unchanged, got %v", got)
	}
}
