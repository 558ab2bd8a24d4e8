package assembly_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/selfassembly/internal/assembly"
)

var _ = Describe("Model", func() {
	var (
		params assembly.Params
		model  *assembly.Model
	)

	BeforeEach(func() {
		params = assembly.DefaultParams()
	})

	JustBeforeEach(func() {
		var err error
		model, err = assembly.New(params, assembly.WithSeed(2024))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Step", func() {
		It("increments time by exactly one", func() {
			for i := 1; i <= 5; i++ {
				model.Step()
				Expect(model.Time()).To(Equal(i))
			}
		})

		It("keeps the population size fixed", func() {
			for i := 0; i < 20; i++ {
				model.Step()
			}
			Expect(model.Snapshot().Particles).To(HaveLen(params.N))
		})

		It("assembles most of the population within a few steps at the default rate", func() {
			for i := 0; i < 10; i++ {
				model.Step()
			}
			Expect(model.Snapshot().AssembledFraction()).To(BeNumerically(">", 0.9))
		})

		It("never lets a particle revert", func() {
			assembledAt := map[int]int{}
			for i := 0; i < 15; i++ {
				model.Step()
				for _, ps := range model.Snapshot().Particles {
					if at, ok := assembledAt[ps.ID]; ok {
						Expect(ps.State).To(Equal(assembly.Assembled))
						Expect(ps.TransformedAt).To(Equal(at))
					} else if ps.State == assembly.Assembled {
						assembledAt[ps.ID] = ps.TransformedAt
					}
				}
			}
		})
	})

	Context("with a strong hotspot", func() {
		BeforeEach(func() {
			params.N = 2000
			params.K0 = 0.001
			params.Alpha = 20
			params.XP = 2
			params.Sigma = 0.5
			params.VelocityMag = 0
		})

		It("assembles particles near the peak first", func() {
			for i := 0; i < 5; i++ {
				model.Step()
			}
			near, far := 0, 0
			nearN, farN := 0, 0
			for _, ps := range model.Snapshot().Particles {
				switch {
				case math.Abs(ps.X-params.XP) < params.Sigma:
					nearN++
					if ps.State == assembly.Assembled {
						near++
					}
				case math.Abs(ps.X-params.XP) > 4*params.Sigma:
					farN++
					if ps.State == assembly.Assembled {
						far++
					}
				}
			}
			Expect(nearN).To(BeNumerically(">", 0))
			Expect(farN).To(BeNumerically(">", 0))
			Expect(float64(near) / float64(nearN)).To(BeNumerically(">", float64(far)/float64(farN)))
		})
	})

	Describe("CorrectionFactor", func() {
		BeforeEach(func() {
			params.Alpha = 1.5
		})

		It("peaks at 1+alpha on x_p", func() {
			Expect(model.CorrectionFactor(params.XP)).To(Equal(1 + params.Alpha))
		})

		It("is symmetric about x_p", func() {
			for _, d := range []float64{0.25, 0.5, 2} {
				Expect(model.CorrectionFactor(params.XP + d)).To(BeNumerically("~", model.CorrectionFactor(params.XP-d), 1e-12))
			}
		})
	})
})

var _ = Describe("Particle", func() {
	It("reflects off the far wall", func() {
		p := assembly.NewParticle(0, 9.98, 0.5, 0.05, 0)
		p.Update(1, 0, 1, assembly.Bounds{Length: 10, Width: 1}, 0.3)

		x, _ := p.Position()
		vx, _ := p.Velocity()
		Expect(x).To(Equal(10.0))
		Expect(vx).To(Equal(-0.05))
	})

	DescribeTable("probability matches the Avrami law",
		func(step int, expected float64) {
			Expect(assembly.TransformProbability(0.1, 1, step)).To(BeNumerically("~", expected, 1e-4))
		},
		Entry("t=1", 1, 0.0952),
		Entry("t=5", 5, 0.9179),
	)
})
