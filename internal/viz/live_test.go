package viz

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/render"
	"github.com/san-kum/orbitsim/internal/scene"
	"github.com/san-kum/orbitsim/internal/sim"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestThemes(t *testing.T) {
	if GetTheme("nonexistent").Name != "default" {
		t.Error("expected fallback to default theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}

	SetTheme("sunset")
	NextTheme()
	if CurrentTheme.Name != "default" {
		t.Errorf("expected wrap to default, got %s", CurrentTheme.Name)
	}

	if got := ThemeDefault.TrailColor(0, 1); got != "#ffffff" {
		t.Errorf("expected single trail entry white, got %s", got)
	}
}

func TestDrawScene(t *testing.T) {
	c := NewCanvas(80, 24)
	w, h := c.SubSize()
	vp := render.NewViewport(5, w, h)

	p := physics.NewParticle(1, physics.Zero(), physics.Vector2D{X: 0.1}, physics.Zero())
	s := scene.New(p)
	DrawScene(c, s, vp, DrawOptions{Trails: true, Theme: ThemeDefault})

	// origin maps to sub-pixel (80, 48), cell (40, 12)
	if c.Grid[12][40] == blank {
		t.Error("expected body at the canvas centre")
	}
	if c.Colors[12][40] != string(ThemeDefault.Body) {
		t.Errorf("expected body colour, got %q", c.Colors[12][40])
	}

	for i := 0; i < 50; i++ {
		s.Step(0.1)
	}
	DrawScene(c, s, vp, DrawOptions{Vectors: true, Trails: true, Theme: ThemeDefault})
	// the body is now 0.5 to the right, cell 44; its trail starts at the origin
	if c.Grid[12][40] == blank || c.Grid[12][44] == blank {
		t.Error("expected trail and body to be drawn")
	}
}

func TestDrawSceneNonFinite(t *testing.T) {
	c := NewCanvas(20, 10)
	w, h := c.SubSize()
	vp := render.NewViewport(5, w, h)

	bad := scene.New(physics.NewParticle(1, physics.Vector2D{X: math.NaN()}, physics.Vector2D{X: math.Inf(1)}, physics.Zero()))
	DrawScene(c, bad, vp, DrawOptions{Vectors: true, Trails: true, Theme: ThemeDefault})
}

func TestModelKeys(t *testing.T) {
	m := NewModel(sim.New(scene.Solar()), Options{Name: "solar", Dt: 0.01, Theme: "default", ShowVectors: true, ShowTrails: true})
	if !m.showVectors || !m.showTrails {
		t.Fatal("expected vectors and trails shown from options")
	}

	m = update(m, TickMsg(time.Now()))
	if m.sim.Scene().Ticks() != 1 {
		t.Fatalf("expected 1 tick, got %d", m.sim.Scene().Ticks())
	}

	m = update(m, key(" "))
	if m.running {
		t.Error("expected pause")
	}
	m = update(m, TickMsg(time.Now()))
	if m.sim.Scene().Ticks() != 1 {
		t.Error("paused model should not step on tick")
	}
	m = update(m, key("."))
	if m.sim.Scene().Ticks() != 2 {
		t.Error("expected single step while paused")
	}

	m = update(m, key("]"))
	m = update(m, key("]"))
	if m.stepsPerFrame != 4 {
		t.Errorf("expected 4 steps per frame, got %d", m.stepsPerFrame)
	}
	m = update(m, key("["))
	if m.stepsPerFrame != 2 {
		t.Errorf("expected 2 steps per frame, got %d", m.stepsPerFrame)
	}

	m = update(m, key("v"))
	m = update(m, key("l"))
	if m.showVectors || m.showTrails {
		t.Error("expected vectors and trails toggled off")
	}

	m = update(m, key("+"))
	if m.zoom != 1.25 {
		t.Errorf("expected zoom 1.25, got %v", m.zoom)
	}

	m = update(m, key("r"))
	if m.sim.Scene().Ticks() != 0 || !m.running || len(m.energyHistory) != 0 {
		t.Error("expected reset to restore a running initial scene")
	}

	if out := m.View(); out == "" {
		t.Error("expected non-empty view")
	}
}

func TestModelForcesAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(sim.New(scene.Solar()), Options{Name: "solar", SnapshotDir: dir})

	m = update(m, key("f"))
	if !m.showForces {
		t.Fatal("expected acceleration arrows on")
	}

	m = update(m, TickMsg(time.Now()))
	m = update(m, key("s"))
	want := filepath.Join(dir, "orbitsim-000001.svg")
	if m.lastSnapshot != want {
		t.Errorf("expected snapshot %s, got %q", want, m.lastSnapshot)
	}
	if info, err := os.Stat(want); err != nil || info.Size() == 0 {
		t.Errorf("expected svg at %s", want)
	}
}

func TestDrawSceneForces(t *testing.T) {
	c := NewCanvas(80, 24)
	w, h := c.SubSize()
	vp := render.NewViewport(5, w, h)

	// the light body at x=2 is pulled toward -x; its arrow reaches past the disc
	heavy := physics.NewParticle(1/scene.G, physics.Zero(), physics.Zero(), physics.Zero())
	light := physics.NewParticle(1, physics.Vector2D{X: 2}, physics.Zero(), physics.Zero())
	s := scene.New(heavy, light)

	DrawScene(c, s, vp, DrawOptions{Forces: true, Theme: ThemeDefault})
	force := render.Hex(render.Force)
	found := false
	for _, row := range c.Colors {
		for _, col := range row {
			if col == force {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected acceleration arrow in the force colour")
	}
}

func TestModelHaltsOnInvalidState(t *testing.T) {
	s := scene.New(
		physics.NewParticle(1, physics.Zero(), physics.Zero(), physics.Zero()),
		physics.NewParticle(1, physics.Zero(), physics.Zero(), physics.Zero()),
	)
	m := NewModel(sim.New(s), Options{Name: "broken", StepsPerFrame: 10})

	m = update(m, TickMsg(time.Now()))
	if !m.halted || m.running {
		t.Error("expected model to halt")
	}
	if m.sim.Scene().Ticks() != 1 {
		t.Errorf("expected halt after first tick, got %d", m.sim.Scene().Ticks())
	}

	m = update(m, key(" "))
	if m.running {
		t.Error("halted model should not resume")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(sim.New(scene.Solar()), Options{})
	m = update(m, tea.WindowSizeMsg{Width: 151, Height: 40})

	if m.canvas.Width != 100 || m.canvas.Height != 38 {
		t.Errorf("expected 100x38 canvas, got %dx%d", m.canvas.Width, m.canvas.Height)
	}
}

func TestRecorder(t *testing.T) {
	c := NewCanvas(4, 2)
	c.SetColor(0, 0, "#ff0000")
	c.Set(3, 3)

	r := NewRecorder()
	if path, err := r.Save(""); path != "" || err != nil {
		t.Errorf("expected no-op save, got %q, %v", path, err)
	}

	r.Capture(c)
	r.Capture(c)
	if r.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d", r.Frames())
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	got, err := r.Save(path)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if info, err := os.Stat(got); err != nil || info.Size() == 0 {
		t.Errorf("expected gif at %s", got)
	}
}

func TestMenuStartsScenario(t *testing.T) {
	m := NewMenu(Options{}, nil, nil)

	next, _ := m.Update(key("j"))
	m = next.(Menu)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Menu)

	if m.state != stateSim || cmd == nil {
		t.Fatal("expected menu to start the live view")
	}
	if m.live.opts.Name != m.scenarios[1] {
		t.Errorf("expected scenario %s, got %s", m.scenarios[1], m.live.opts.Name)
	}
}

func TestMenuUsesBuilder(t *testing.T) {
	var built []string
	build := func(name string) (*scene.Scene, error) {
		built = append(built, name)
		return scene.NewWithGravity(1, physics.NewParticle(1, physics.Zero(), physics.Zero(), physics.Zero())), nil
	}
	m := NewMenu(Options{}, []string{"custom", "solar"}, build)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Menu)
	if m.state != stateSim || len(built) != 1 || built[0] != "custom" {
		t.Fatalf("expected custom entry built, got %v", built)
	}
	if g := m.live.sim.Scene().Gravity(); g != 1 {
		t.Errorf("expected builder gravity 1, got %v", g)
	}
}

func TestMenuShowsBuildError(t *testing.T) {
	m := NewMenu(Options{}, []string{"nope"}, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Menu)
	if m.state != stateMenu || !errors.Is(m.err, scene.ErrUnknownScenario) {
		t.Errorf("expected unknown scenario error in menu, got %v", m.err)
	}
}
