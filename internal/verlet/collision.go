package verlet

import "math"

// solveCollisions scans every ordered pair (i < j) once and separates
// the overlapping ones: half the penetration to each side, then an
// implicit-velocity impulse when the pair is still approaching.
// Corrections land immediately, so later pairs in the scan see earlier
// results (sequential relaxation). One pass per sub-step; residual
// overlap is left for the following sub-steps.
func (s *Simulation) solveCollisions() {
	minDist := 2 * s.cfg.ParticleRadius
	minDistSq := minDist * minDist
	for i := 0; i < len(s.particles); i++ {
		for j := i + 1; j < len(s.particles); j++ {
			p1, p2 := &s.particles[i], &s.particles[j]
			d := p1.Pos.Sub(p2.Pos)
			distSq := d.LengthSq()
			if distSq >= minDistSq {
				continue
			}
			dist := math.Sqrt(distSq)
			// Coincident centers get a fixed separation axis.
			n := Vec2{1, 0}
			if dist > 0 {
				n = d.Scale(1 / dist)
			}
			half := (minDist - dist) / 2
			p1.Pos = p1.Pos.Add(n.Scale(half))
			p2.Pos = p2.Pos.Sub(n.Scale(half))

			vn := p1.Velocity().Sub(p2.Velocity()).Dot(n)
			if vn < 0 {
				// Shifting Prev encodes the rebound implicitly; the
				// post-impulse relative normal speed is -Restitution*vn.
				impulse := n.Scale((1 + s.cfg.Restitution) / 2 * vn)
				p1.Prev = p1.Prev.Add(impulse)
				p2.Prev = p2.Prev.Sub(impulse)
			}
		}
	}
}
