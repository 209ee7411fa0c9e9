package verlet

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const defaultTurbulenceScale = 0.005

// turbulence converts a perlin noise field into a flow direction, the
// usual flow-field trick for keeping a settled pile moving. The
// sampler is built once per simulation; for a fixed seed the field is
// fully deterministic.
type turbulence struct {
	noise *perlin.Perlin
	scale float64
}

func newTurbulence(cfg TurbulenceConfig) *turbulence {
	scale := cfg.Scale
	if scale <= 0 {
		scale = defaultTurbulenceScale
	}
	return &turbulence{
		noise: perlin.NewPerlin(2, 2, 3, cfg.Seed),
		scale: scale,
	}
}

// force samples the flow angle at pos and returns it scaled by
// strength.
func (t *turbulence) force(pos Vec2, strength float64) Vec2 {
	angle := (t.noise.Noise2D(pos.X*t.scale, pos.Y*t.scale) + 1) * math.Pi
	return Vec2{math.Cos(angle) * strength, math.Sin(angle) * strength}
}
