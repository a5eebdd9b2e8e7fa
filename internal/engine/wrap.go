package engine

// Wrap-around coordinate math. Each function is total over finite
// inputs, idempotent on values already inside its band, and reflects at
// most once per call: per-tick speeds are bounded well below the band
// width, so an entity can never overshoot a full wrap in one step.

// WrapCircular re-projects a circular entity that has fully left the
// playfield to just off the opposite edge. The valid band for a center
// coordinate is [-radius, Width+radius].
func WrapCircular(x, radius float64) float64 {
	switch {
	case x < -radius:
		return Width + radius
	case x > Width+radius:
		return -radius
	default:
		return x
	}
}

// WrapBand is the rectangular variant used for planks and the
// crocodile: the entity wraps only once its full horizontal extent has
// left the band, which prevents pop-in at the edges.
func WrapBand(x, halfWidth float64) float64 {
	switch {
	case x < -halfWidth:
		return Width + halfWidth
	case x > Width+halfWidth:
		return -halfWidth
	default:
		return x
	}
}

// WrapBonus wraps the lady frog one-directionally: she travels
// rightward only, exits on the right and reappears on the left.
func WrapBonus(x, radius float64) float64 {
	if x > Width+radius {
		return -radius
	}
	return x
}
