package verlet

import "math"

// SpawnAngle returns the launch direction, in radians, for the n-th
// spawned particle under a cycle of the given period. Indices sweep up
// one half of the cycle and back down the other, so a steady stream
// sprays left and right instead of stacking on a single ray. Pure and
// deterministic: replaying the same spawn indices reproduces the same
// directions.
func SpawnAngle(n, period int) float64 {
	if period < 1 {
		period = 1
	}
	i := n % period
	if i > period/2 {
		return float64(2*period-i) * 0.1
	}
	return float64(i+period) * 0.1
}

func (s *Simulation) spawn() {
	angle := SpawnAngle(len(s.particles), s.cfg.SpawnAnglePeriod)
	dir := Vec2{math.Cos(angle), math.Sin(angle)}
	pos := s.cfg.SpawnPos
	// Prev sits ahead of Pos so the implicit velocity points back
	// along -dir at SpawnSpeed units per sub-step.
	s.particles = append(s.particles, Particle{
		Pos:  pos,
		Prev: pos.Add(dir.Scale(s.cfg.SpawnSpeed)),
	})
}
