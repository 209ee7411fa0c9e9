package verlet_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/programORdie2/verletlab/internal/verlet"
)

const frameDt = 1.0 / 60

var _ = Describe("Simulation", func() {
	var (
		cfg verlet.Config
		sim *verlet.Simulation
	)

	BeforeEach(func() {
		cfg = verlet.DefaultConfig()
		cfg.MaxParticles = 120
		var err error
		sim, err = verlet.New(cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	advance := func(s *verlet.Simulation, frames int) {
		for frame := 1; frame <= frames; frame++ {
			s.Advance(frameDt, frame)
		}
	}

	It("never exceeds the particle capacity", func() {
		advance(sim, 400)
		Expect(sim.Count()).To(Equal(cfg.MaxParticles))
	})

	It("keeps every particle finite across a long run", func() {
		advance(sim, 900)
		Expect(sim.Valid()).To(BeTrue())
	})

	It("keeps the pile near the container across a long run", func() {
		advance(sim, 900)
		allowed := cfg.ContainerRadius - cfg.ParticleRadius
		for _, p := range sim.Particles() {
			dist := p.Pos.Sub(cfg.Center).Length()
			slack := p.Velocity().Length() + 2*cfg.ParticleRadius
			Expect(dist).To(BeNumerically("<=", allowed+slack))
		}
	})

	It("reproduces a run bit for bit", func() {
		other, err := verlet.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		advance(sim, 300)
		advance(other, 300)

		a, b := sim.Particles(), other.Particles()
		Expect(len(a)).To(Equal(len(b)))
		for i := range a {
			Expect(a[i].Pos).To(Equal(b[i].Pos))
			Expect(a[i].Prev).To(Equal(b[i].Prev))
		}
	})

	It("keeps residual overlap small once the pile settles", func() {
		advance(sim, 900)

		// Sequential relaxation never fully converges in one pass,
		// but leftover penetration must stay a fraction of the
		// particle size instead of accumulating under gravity.
		worst := worstOverlap(sim.Particles(), sim.Radius())
		Expect(worst).To(BeNumerically("<", sim.Radius()))
	})

	It("spawns nothing when the capacity is zero", func() {
		empty := cfg
		empty.MaxParticles = 0
		s, err := verlet.New(empty)
		Expect(err).NotTo(HaveOccurred())
		advance(s, 60)
		Expect(s.Count()).To(BeZero())
	})
})

func worstOverlap(ps []verlet.Particle, radius float64) float64 {
	minDist := 2 * radius
	worst := 0.0
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if d := ps[i].Pos.Sub(ps[j].Pos).Length(); minDist-d > worst {
				worst = minDist - d
			}
		}
	}
	return worst
}
