package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/san-kum/orbitsim/internal/physics"
)

var ErrUnknownScenario = errors.New("scene: unknown scenario")

// DefaultScenario is the scene the simulator starts with.
const DefaultScenario = "solar"

var scenarios = map[string]func(seed int64) *Scene{
	"solar":   func(int64) *Scene { return Solar() },
	"ring":    func(int64) *Scene { return Ring(0.26) },
	"cluster": func(seed int64) *Scene { return Cluster(10, seed) },
	"figure8": func(int64) *Scene { return FigureEight() },
}

func body(mass, x, y, vx, vy float64) *physics.Particle {
	return physics.NewParticle(mass, physics.Vector2D{X: x, Y: y}, physics.Vector2D{X: vx, Y: vy}, physics.Zero())
}

// Solar is a heavy central mass with two light bodies on near-circular
// orbits.
func Solar() *Scene {
	return New(
		body(3300, 0, 0, 0, 0),
		body(1, 1.0167103, 0, 0, 2*0.6128),
		body(0.1, 1.66599116, 0, 0, 2*0.45969),
	)
}

// Ring places four unit masses on the unit circle, moving tangentially at
// speed c around a mass of 100 at the origin.
func Ring(c float64) *Scene {
	return New(
		body(1, 1, 0, 0, c),
		body(1, 0, 1, -c, 0),
		body(1, -1, 0, 0, -c),
		body(1, 0, -1, c, 0),
		body(100, 0, 0, 0, 0),
	)
}

// Cluster scatters n unit masses with positions and velocities drawn
// uniformly from [-1.5, 1.5].
func Cluster(n int, seed int64) *Scene {
	rng := rand.New(rand.NewSource(seed))
	uniform := func() float64 { return -1.5 + 3*rng.Float64() }

	ps := make([]*physics.Particle, n)
	for i := range ps {
		x, y := uniform(), uniform()
		vx, vy := uniform(), uniform()
		ps[i] = body(1, x, y, vx, vy)
	}
	return New(ps...)
}

// FigureEight is the Chenciner-Montgomery choreography. Masses are 1/G so
// that G*m is 1 as in the dimensionless solution.
func FigureEight() *Scene {
	m := 1 / G
	vx, vy := 0.93240737, 0.86473146
	return New(
		body(m, 0.97000436, -0.24308753, vx/2, vy/2),
		body(m, -0.97000436, 0.24308753, vx/2, vy/2),
		body(m, 0, 0, -vx, -vy),
	)
}

// Scenario builds a named scene. seed only affects randomised scenes.
func Scenario(name string, seed int64) (*Scene, error) {
	fn, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownScenario, name, ScenarioNames())
	}
	return fn(seed), nil
}

func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
