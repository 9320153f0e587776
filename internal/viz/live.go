package viz

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/render"
	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	statsWidth      = 45
	historyCapacity = 600
	maxStepsPerTick = 256
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(statsWidth)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Options configures a live session.
type Options struct {
	Name          string
	Dt            float64
	FPS           int
	StepsPerFrame int
	Extent        float64
	ShowVectors   bool
	ShowTrails    bool
	Theme         string
	// SnapshotDir is where the snapshot key writes SVG files. Empty means
	// the working directory.
	SnapshotDir   string
	Logger        *logging.Logger
}

func (o *Options) setDefaults() {
	if o.Dt <= 0 {
		o.Dt = 0.01
	}
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.StepsPerFrame <= 0 {
		o.StepsPerFrame = 1
	}
	if o.Extent <= 0 {
		o.Extent = 5
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
}

// Model runs a simulator in the terminal, one or more ticks per frame.
type Model struct {
	sim             *sim.Simulator
	opts            Options
	width, height   int
	canvas          *Canvas
	zoom            float64
	stepsPerFrame   int
	running         bool
	halted          bool
	showVectors     bool
	showForces      bool
	showTrails      bool
	showHelp        bool
	energyHistory   []float64
	distanceHistory []float64
	recorder        *Recorder
	lastSnapshot    string
}

func NewModel(s *sim.Simulator, opts Options) Model {
	opts.setDefaults()
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}
	return Model{
		sim:             s,
		opts:            opts,
		width:           width,
		height:          height,
		canvas:          NewCanvas(width, height),
		zoom:            1,
		stepsPerFrame:   opts.StepsPerFrame,
		running:         true,
		showVectors:     opts.ShowVectors,
		showTrails:      opts.ShowTrails,
		energyHistory:   make([]float64, 0, historyCapacity),
		distanceHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stopRecording()
			return m, tea.Quit
		case " ":
			if !m.halted {
				m.running = !m.running
			}
		case "r":
			m.reset()
		case ".":
			if !m.running && !m.halted {
				m.step(1)
			}
		case "]":
			m.stepsPerFrame = min(maxStepsPerTick, m.stepsPerFrame*2)
		case "[":
			m.stepsPerFrame = max(1, m.stepsPerFrame/2)
		case "+", "=":
			m.zoom *= 1.25
		case "-", "_":
			m.zoom /= 1.25
		case "v":
			m.showVectors = !m.showVectors
		case "f":
			m.showForces = !m.showForces
		case "l":
			m.showTrails = !m.showTrails
		case "s":
			m.snapshot()
		case "t":
			NextTheme()
		case "g":
			if m.recorder != nil {
				m.stopRecording()
			} else {
				m.recorder = NewRecorder()
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running {
			m.step(m.stepsPerFrame)
		}
		m.draw()
		if m.recorder != nil {
			m.recorder.Capture(m.canvas)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	cw, ch := w-statsWidth-6, h-2
	if cw < 20 {
		cw = 20
	}
	if ch < 10 {
		ch = 10
	}
	m.width, m.height = cw, ch
	m.canvas.Resize(cw, ch)
}

// step advances the simulation n ticks and stops on the first non-finite
// state.
func (m *Model) step(n int) {
	s := m.sim.Scene()
	for i := 0; i < n; i++ {
		m.sim.Step(m.opts.Dt)
		if !s.Valid() {
			m.running, m.halted = false, true
			m.opts.Logger.Warn("simulation halted", "scenario", m.opts.Name, "tick", s.Ticks(), "error", sim.ErrInvalidState)
			break
		}
	}
	m.energyHistory = appendCapped(m.energyHistory, s.Energy())
	m.distanceHistory = appendCapped(m.distanceHistory, s.MaxDistance())
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

// reset restores the initial scene.
func (m *Model) reset() {
	m.sim.Reset()
	m.energyHistory = m.energyHistory[:0]
	m.distanceHistory = m.distanceHistory[:0]
	m.running, m.halted = true, false
}

func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	path, err := m.recorder.Save("")
	if err != nil {
		m.opts.Logger.Error("gif not saved", "error", err)
	} else if path != "" {
		m.opts.Logger.Info("gif saved", "path", path)
	}
	m.recorder = nil
}

func (m *Model) snapshot() {
	path := fmt.Sprintf("orbitsim-%06d.svg", m.sim.Scene().Ticks())
	if m.opts.SnapshotDir != "" {
		path = filepath.Join(m.opts.SnapshotDir, path)
	}
	m.draw()
	if err := SaveSnapshot(m.canvas, path); err != nil {
		m.opts.Logger.Error("snapshot not saved", "error", err)
		return
	}
	m.lastSnapshot = path
	m.opts.Logger.Info("snapshot saved", "path", path)
}

func (m *Model) viewport() render.Viewport {
	w, h := m.canvas.SubSize()
	return render.NewViewport(m.opts.Extent, w, h).Zoom(m.zoom)
}

func (m *Model) draw() {
	DrawScene(m.canvas, m.sim.Scene(), m.viewport(), DrawOptions{
		Vectors: m.showVectors,
		Forces:  m.showForces,
		Trails:  m.showTrails,
		Theme:   CurrentTheme,
	})
}

func (m Model) status() string {
	switch {
	case m.halted:
		return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Error).Render("HALTED (non-finite state)")
	case m.recorder != nil:
		return StatusRecording.Render("● REC")
	case !m.running:
		return StatusPaused.Render("PAUSED")
	}
	return StatusRunning.Render("RUNNING")
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	s := m.sim.Scene()

	canvasView := canvasStyle.Render(m.canvas.Render())
	var b strings.Builder
	b.WriteString(HeaderStyle().Render(strings.ToUpper(m.opts.Name)) + "\n")
	b.WriteString(m.status() + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		b.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	energy := s.Energy()
	drift := 0.0
	if len(m.energyHistory) > 0 && m.energyHistory[0] != 0 {
		drift = math.Abs(energy-m.energyHistory[0]) / math.Abs(m.energyHistory[0])
	}

	row := func(label, value string) {
		b.WriteString(MetricLabel.Render(label) + MetricValue.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2f", s.Time()))
	row("Ticks", fmt.Sprintf("%d", s.Ticks()))
	row("Bodies", fmt.Sprintf("%d", s.Len()))
	row("Energy", fmt.Sprintf("%.6g", energy))
	row("Drift", fmt.Sprintf("%.2e", drift))
	row("Momentum", fmt.Sprintf("%.3g", s.Momentum().Magnitude()))
	row("Speed", fmt.Sprintf("%dx", m.stepsPerFrame))
	row("Zoom", fmt.Sprintf("%.2fx", m.zoom))
	row("Theme", CurrentTheme.Name)
	if m.lastSnapshot != "" {
		row("Snapshot", filepath.Base(m.lastSnapshot))
	}
	b.WriteString("\n" + MetricLabel.Render("Extent") + SparklineChart(m.distanceHistory, 24) + "\n")

	b.WriteString(helpStyle.Render("\n" + Separator(21) + "\nSP:Pause R:Reset Q:Quit\nT:Theme  V:Vectors L:Trails\nF:Forces S:Snapshot\n[ ]:Speed +/-:Zoom ?:Help"))
	statsView := statsStyle.Render(b.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  .        - Single tick while paused ║
║  R        - Reset simulation         ║
║  Q        - Quit                     ║
║  [ / ]    - Halve/double speed       ║
║  + / -    - Zoom in/out              ║
║  V        - Toggle velocity vectors  ║
║  F        - Toggle acceleration      ║
║  L        - Toggle trails            ║
║  S        - Save SVG snapshot        ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run starts a full-screen program for m.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
