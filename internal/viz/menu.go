package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitsim/internal/scene"
	"github.com/san-kum/orbitsim/internal/sim"
)

var scenarioInfo = map[string]string{
	"solar":   "star with two planets",
	"ring":    "four moons around a core",
	"cluster": "random unit masses",
	"figure8": "three-body choreography",
	"custom":  "bodies from the config file",
}

// SceneBuilder creates the scene for a menu entry.
type SceneBuilder func(name string) (*scene.Scene, error)

const (
	stateMenu = iota
	stateSim
)

// Menu lets the user pick a scenario before switching to the live view.
type Menu struct {
	state     int
	cursor    int
	scenarios []string
	build     SceneBuilder
	opts      Options
	err       error
	live      Model
}

// NewMenu lists names, or every built-in scenario when names is empty.
// A nil build uses the built-in scenarios with seed 0.
func NewMenu(opts Options, names []string, build SceneBuilder) Menu {
	if len(names) == 0 {
		names = scene.ScenarioNames()
	}
	if build == nil {
		build = func(name string) (*scene.Scene, error) { return scene.Scenario(name, 0) }
	}
	return Menu{
		state:     stateMenu,
		scenarios: names,
		build:     build,
		opts:      opts,
	}
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateSim {
		live, cmd := m.live.Update(msg)
		m.live = live.(Model)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenarios)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m Menu) start() (tea.Model, tea.Cmd) {
	name := m.scenarios[m.cursor]
	s, err := m.build(name)
	if err != nil {
		m.err = err
		return m, nil
	}
	opts := m.opts
	opts.Name = name
	m.live = NewModel(sim.New(s), opts)
	m.state = stateSim
	return m, m.live.Init()
}

func (m Menu) View() string {
	if m.state == stateSim {
		return m.live.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + GradientText("ORBITSIM", CurrentTheme.Primary, CurrentTheme.Secondary) + "\n    " + Subtle.Render("2d gravity sandbox") + "\n    " + Subtle.Render("─────────────────────────") + "\n\n")
	for i, name := range m.scenarios {
		desc := scenarioInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(CurrentTheme.Text).Bold(true).Render(fmt.Sprintf("%-10s", name)),
				lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				lipgloss.NewStyle().Foreground(lipgloss.Color("#555566")).Render(fmt.Sprintf("  %-10s", name)),
				lipgloss.NewStyle().Foreground(lipgloss.Color("#444455")).Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(CurrentTheme.Error).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + KeyHint.Render("j/k navigate  enter select  q quit") + "\n")
	return b.String()
}

// RunInteractive shows the scenario menu full-screen.
func RunInteractive(opts Options, names []string, build SceneBuilder) error {
	_, err := tea.NewProgram(NewMenu(opts, names, build), tea.WithAltScreen()).Run()
	return err
}
