package scene

import (
	"testing"

	"github.com/san-kum/orbitsim/internal/physics"
)

func BenchmarkStepSolar(b *testing.B) {
	s := Solar()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Step(0.01)
	}
}

func BenchmarkStepCluster10(b *testing.B) {
	s := Cluster(10, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Step(0.001)
	}
}

func BenchmarkStepCluster100(b *testing.B) {
	s := Cluster(100, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Step(0.001)
	}
}

func BenchmarkAttraction(b *testing.B) {
	p1 := physics.NewParticle(3300, physics.Zero(), physics.Zero(), physics.Zero())
	p2 := physics.NewParticle(1, physics.Vector2D{X: 1, Y: 0.5}, physics.Zero(), physics.Zero())
	s := New(p1, p2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Attraction(p1, p2)
	}
}
