package sim_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/scene"
	"github.com/san-kum/orbitsim/internal/sim"
)

var _ = Describe("Simulator", func() {
	var simulator *sim.Simulator

	BeforeEach(func() {
		simulator = sim.New(scene.Solar())
	})

	It("records the initial frame and one frame per tick", func() {
		r, err := simulator.Run(context.Background(), sim.Config{Dt: 0.01, Duration: 0.5})
		Expect(err).NotTo(HaveOccurred())
		Expect(r.StepsTaken).To(Equal(50))
		Expect(r.Frames).To(HaveLen(51))
		Expect(r.Times[0]).To(BeZero())
		Expect(r.Times[50]).To(BeNumerically("~", 0.5, 1e-9))
	})

	It("reports metric values by name", func() {
		simulator.AddMetric(metrics.NewEnergyDrift())
		simulator.AddMetric(metrics.NewStability(10))

		r, err := simulator.Run(context.Background(), sim.Config{Dt: 0.01, Duration: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Metrics).To(HaveKey("energy_drift"))
		Expect(r.Metrics).To(HaveKeyWithValue("stability", 1.0))
	})

	It("restores the initial scene on reset", func() {
		body := simulator.Scene().Particles()[1].Position()
		for i := 0; i < 25; i++ {
			simulator.Step(0.01)
		}
		Expect(simulator.Scene().Particles()[1].Position()).NotTo(Equal(body))

		simulator.Reset()
		Expect(simulator.Scene().Ticks()).To(BeZero())
		Expect(simulator.Scene().Particles()[1].Position()).To(Equal(body))
		Expect(simulator.Scene().Particles()[1].TrailLen()).To(BeZero())
	})

	Context("with a deadline", func() {
		It("stops between ticks", func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
			defer cancel()
			<-ctx.Done()

			_, err := simulator.Run(ctx, sim.Config{Dt: 0.01, Duration: 100})
			Expect(err).To(MatchError(sim.ErrCanceled))
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})

	Context("with coincident bodies", func() {
		BeforeEach(func() {
			simulator = sim.New(scene.New(
				physics.NewParticle(1, physics.Zero(), physics.Zero(), physics.Zero()),
				physics.NewParticle(1, physics.Zero(), physics.Zero(), physics.Zero()),
			))
		})

		It("keeps stepping when validation is off", func() {
			r, err := simulator.Run(context.Background(), sim.Config{Dt: 0.1, Duration: 0.5})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.StepsTaken).To(Equal(5))
			Expect(r.Errors).To(BeEmpty())
		})

		It("ends the run with an invalid state error", func() {
			r, err := simulator.Run(context.Background(), sim.Config{Dt: 0.1, Duration: 0.5, ValidateState: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Errors).To(HaveLen(1))
			Expect(r.Errors[0]).To(MatchError(sim.ErrInvalidState))

			var simErr *sim.SimulationError
			Expect(r.Errors[0]).To(BeAssignableToTypeOf(simErr))
		})
	})
})
