package engine

// Per-kind movement for one time step. All functions are pure: they
// return a shifted copy and leave the argument untouched.

func stepCar(c Car) Car {
	c.Pos.X = WrapCircular(c.Pos.X+c.Dir.Sign()*c.Speed, c.Radius)
	return c
}

func stepPlank(p Plank) Plank {
	p.Pos.X = WrapBand(p.Pos.X+p.Dir.Sign()*p.Speed, p.RadiusX)
	return p
}

func stepCrocodile(c Crocodile) Crocodile {
	c.Pos.X = WrapBand(c.Pos.X+c.Dir.Sign()*c.Speed, c.RadiusX)
	return c
}

func stepLadyFrog(l LadyFrog) LadyFrog {
	l.Pos.X = WrapBonus(l.Pos.X+l.Speed, l.Radius)
	return l
}

// stepFrog carries the frog along with the first plank it was standing
// on at the previous tick. The frog is never wrapped: drifting past
// either edge is an out-of-bounds death, not a wrap.
func stepFrog(f Frog, onPlank []string, planks []Plank) Frog {
	if len(onPlank) == 0 {
		return f
	}
	for _, p := range planks {
		if p.ID == onPlank[0] {
			f.Pos.X += p.Dir.Sign() * p.Speed
			return f
		}
	}
	return f
}
