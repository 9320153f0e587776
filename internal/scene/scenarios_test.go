package scene_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/scene"
)

var _ = Describe("Scenarios", func() {
	It("lists every scenario in sorted order", func() {
		Expect(scene.ScenarioNames()).To(Equal([]string{"cluster", "figure8", "ring", "solar"}))
	})

	It("rejects unknown names", func() {
		_, err := scene.Scenario("nope", 0)
		Expect(err).To(MatchError(scene.ErrUnknownScenario))
	})

	Describe("solar", func() {
		var s *scene.Scene

		BeforeEach(func() {
			var err error
			s, err = scene.Scenario(scene.DefaultScenario, 0)
			Expect(err).NotTo(HaveOccurred())
		})

		It("starts with three bodies and empty accumulators", func() {
			Expect(s.Len()).To(Equal(3))
			for _, p := range s.Particles() {
				Expect(p.Pending()).To(Equal(physics.Zero()))
				Expect(p.TrailLen()).To(BeZero())
			}
			Expect(s.Particles()[0].Radius()).To(BeNumerically("~", 33, 1e-9))
			Expect(s.Particles()[1].Velocity().Y).To(Equal(2 * 0.6128))
		})

		It("keeps the inner bodies bound over many ticks", func() {
			for i := 0; i < 2000; i++ {
				s.Step(0.01)
			}
			Expect(s.Valid()).To(BeTrue())
			Expect(s.MaxDistance()).To(BeNumerically("<", 10))
			for _, p := range s.Particles() {
				Expect(p.TrailLen()).To(Equal(physics.TrailCapacity))
			}
		})

		It("conserves momentum up to rounding", func() {
			p0 := s.Momentum()
			for i := 0; i < 500; i++ {
				s.Step(0.01)
			}
			Expect(s.Momentum().Sub(p0).Magnitude()).To(BeNumerically("<", 1e-9))
		})
	})

	Describe("cluster", func() {
		It("is reproducible for a seed", func() {
			a, _ := scene.Scenario("cluster", 7)
			b, _ := scene.Scenario("cluster", 7)
			c, _ := scene.Scenario("cluster", 8)

			Expect(a.Len()).To(Equal(10))
			for i := range a.Particles() {
				Expect(a.Particles()[i].Position()).To(Equal(b.Particles()[i].Position()))
				Expect(a.Particles()[i].Velocity()).To(Equal(b.Particles()[i].Velocity()))
			}
			Expect(a.Particles()[0].Position()).NotTo(Equal(c.Particles()[0].Position()))
		})

		It("draws positions inside the spawn box", func() {
			s := scene.Cluster(50, 1)
			for _, p := range s.Particles() {
				Expect(math.Abs(p.Position().X)).To(BeNumerically("<=", 1.5))
				Expect(math.Abs(p.Position().Y)).To(BeNumerically("<=", 1.5))
			}
		})
	})

	Describe("figure8", func() {
		It("starts with zero total momentum and centred mass", func() {
			s := scene.FigureEight()
			Expect(s.Momentum().Magnitude()).To(BeNumerically("<", 1e-9))
			Expect(s.CenterOfMass().Magnitude()).To(BeNumerically("<", 1e-12))
		})

		It("stays near the origin for a period", func() {
			s := scene.FigureEight()
			for i := 0; i < 6326; i++ {
				s.Step(0.001)
			}
			Expect(s.Valid()).To(BeTrue())
			Expect(s.CenterOfMass().Magnitude()).To(BeNumerically("<", 1e-6))
			Expect(s.MaxDistance()).To(BeNumerically("<", 1.5))
		})
	})

	Describe("ring", func() {
		It("places four satellites around a heavy centre", func() {
			s := scene.Ring(0.26)
			Expect(s.Len()).To(Equal(5))
			Expect(s.Particles()[4].Mass()).To(Equal(100.0))
			Expect(s.AngularMomentum()).To(BeNumerically("~", 4*0.26, 1e-12))
		})
	})
})
