package verlet

import (
	"math"
	"testing"
)

func TestParticleIntegrate(t *testing.T) {
	p := Particle{Pos: Vec2{1, 1}, Prev: Vec2{0.5, 1}}
	p.Accelerate(Vec2{0, 10})
	p.Integrate(0.1)

	if math.Abs(p.Pos.X-1.5) > 1e-12 || math.Abs(p.Pos.Y-1.1) > 1e-12 {
		t.Errorf("expected position (1.5, 1.1), got (%v, %v)", p.Pos.X, p.Pos.Y)
	}
	if p.Prev != (Vec2{1, 1}) {
		t.Errorf("previous position not snapshotted: got %v", p.Prev)
	}
	if p.Acc != (Vec2{}) {
		t.Errorf("accumulator not cleared: got %v", p.Acc)
	}
}

func TestParticleAccelerateAccumulates(t *testing.T) {
	var p Particle
	p.Accelerate(Vec2{1, 2})
	p.Accelerate(Vec2{3, -1})
	if p.Acc != (Vec2{4, 1}) {
		t.Errorf("expected accumulated (4, 1), got %v", p.Acc)
	}
}

func TestParticleVelocityDerived(t *testing.T) {
	p := Particle{Pos: Vec2{5, 3}, Prev: Vec2{4, 1}}
	if got := p.Velocity(); got != (Vec2{1, 2}) {
		t.Errorf("expected velocity (1, 2), got %v", got)
	}

	// At rest the implicit velocity vanishes and integration without
	// force leaves the particle in place.
	q := Particle{Pos: Vec2{2, 2}, Prev: Vec2{2, 2}}
	q.Integrate(1.0 / 60)
	if q.Pos != (Vec2{2, 2}) {
		t.Errorf("resting particle moved to %v", q.Pos)
	}
}

func TestParticleIsValid(t *testing.T) {
	good := Particle{Pos: Vec2{1, 1}, Prev: Vec2{0, 0}}
	if !good.IsValid() {
		t.Error("finite particle reported invalid")
	}
	bad := Particle{Pos: Vec2{math.NaN(), 0}}
	if bad.IsValid() {
		t.Error("NaN particle reported valid")
	}
}
