package verlet

// applyBoundary pulls every escaped particle back onto the container
// rim and reflects its implicit velocity about the inward normal,
// bleeding energy through the damping factor. A particle sitting
// exactly on the center has no usable normal and is left alone.
func (s *Simulation) applyBoundary() {
	allowed := s.cfg.ContainerRadius - s.cfg.ParticleRadius
	for i := range s.particles {
		p := &s.particles[i]
		d := p.Pos.Sub(s.cfg.Center)
		dist := d.Length()
		if dist <= allowed || dist == 0 {
			continue
		}
		n := d.Scale(1 / dist)
		p.Pos = p.Pos.Sub(n.Scale(dist - allowed))
		vel := p.Pos.Sub(p.Prev)
		p.Prev = p.Pos.Sub(vel.Reflect(n).Scale(s.cfg.Damping))
	}
}
