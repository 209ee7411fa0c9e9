package verlet

// Particle is a point mass advanced by Störmer-Verlet integration.
// Velocity is never stored: it is the gap between Pos and Prev, the
// position held before the most recent integration. Acc accumulates
// force/mass contributions and is cleared by each integration.
type Particle struct {
	Pos  Vec2
	Prev Vec2
	Acc  Vec2
}

// Velocity returns the implicit per-step velocity Pos - Prev.
func (p *Particle) Velocity() Vec2 { return p.Pos.Sub(p.Prev) }

// Accelerate adds a into the accumulator for the next integration.
func (p *Particle) Accelerate(a Vec2) { p.Acc = p.Acc.Add(a) }

// Integrate displaces the particle by its implicit velocity plus
// Acc*dt² and resets the accumulator.
func (p *Particle) Integrate(dt float64) {
	vel := p.Pos.Sub(p.Prev)
	p.Prev = p.Pos
	p.Pos = p.Pos.Add(vel).Add(p.Acc.Scale(dt * dt))
	p.Acc = Vec2{}
}

func (p *Particle) IsValid() bool {
	return p.Pos.IsValid() && p.Prev.IsValid() && p.Acc.IsValid()
}
