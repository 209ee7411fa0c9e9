package verlet

// stir is a one-shot radial force queued by Stir and consumed by the
// next Advance call.
type stir struct {
	at       Vec2
	radius   float64
	strength float64
}

// Stir queues an interaction force for the next frame: every particle
// within radius of at is pulled toward (strength > 0) or pushed away
// from (strength < 0) the point, fading linearly with distance. The
// queued force applies to every sub-step of exactly one frame;
// interactive frontends re-queue it while the pointer is held.
func (s *Simulation) Stir(at Vec2, radius, strength float64) {
	if radius <= 0 || strength == 0 {
		s.pending = nil
		return
	}
	s.pending = &stir{at: at, radius: radius, strength: strength}
}

func (st *stir) force(pos Vec2) Vec2 {
	d := st.at.Sub(pos)
	dist := d.Length()
	if dist >= st.radius || dist == 0 {
		return Vec2{}
	}
	return d.Scale(st.strength * (1 - dist/st.radius) / dist)
}
