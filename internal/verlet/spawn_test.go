package verlet

import (
	"math"
	"testing"
)

func TestSpawnAngle(t *testing.T) {
	tests := []struct {
		name      string
		n, period int
		want      float64
	}{
		{"first index", 0, 40, 4.0},
		{"middle of cycle", 20, 40, 6.0},
		{"just past middle", 21, 40, 5.9},
		{"end of cycle", 39, 40, 4.1},
		{"wraps at period", 40, 40, 4.0},
		{"second cycle", 61, 40, 5.9},
		{"degenerate period", 5, 0, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpawnAngle(tt.n, tt.period)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSpawnAngleDeterministic(t *testing.T) {
	for n := 0; n < 200; n++ {
		if SpawnAngle(n, 40) != SpawnAngle(n, 40) {
			t.Fatalf("angle for index %d not reproducible", n)
		}
	}
}

func TestSpawnAngleSweeps(t *testing.T) {
	// The cycle must visit more than one direction, otherwise spawned
	// particles stack on a single ray.
	seen := map[float64]bool{}
	for n := 0; n < 40; n++ {
		seen[SpawnAngle(n, 40)] = true
	}
	if len(seen) < 10 {
		t.Errorf("expected a spread of directions, got %d distinct angles", len(seen))
	}
}

func TestSpawnSetsImplicitVelocity(t *testing.T) {
	sim, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	sim.spawn()

	p := sim.Particles()[0]
	if p.Pos != (Vec2{300, 100}) {
		t.Errorf("expected spawn at (300, 100), got %v", p.Pos)
	}

	// Prev leads the spawn point so velocity points opposite the
	// launch direction at exactly SpawnSpeed.
	angle := SpawnAngle(0, 40)
	wantPrev := Vec2{300 + 4*math.Cos(angle), 100 + 4*math.Sin(angle)}
	if math.Abs(p.Prev.X-wantPrev.X) > 1e-12 || math.Abs(p.Prev.Y-wantPrev.Y) > 1e-12 {
		t.Errorf("expected prev %v, got %v", wantPrev, p.Prev)
	}
	if speed := p.Velocity().Length(); math.Abs(speed-4) > 1e-12 {
		t.Errorf("expected launch speed 4, got %v", speed)
	}
}
