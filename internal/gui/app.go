package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/render"
	"github.com/san-kum/orbitsim/internal/scene"
	"github.com/san-kum/orbitsim/internal/sim"
)

var (
	ColBg      = color(render.Background, 255)
	ColBody    = color(render.Body, 255)
	ColVector  = color(render.Velocity, 255)
	ColForce   = color(render.Force, 255)
	ColText    = rl.NewColor(220, 220, 240, 255)
	ColTextDim = rl.NewColor(120, 120, 170, 255)
)

const telemetryCapacity = 400

type Options struct {
	Title       string
	Width       int
	Height      int
	FPS         int
	Dt          float64
	Extent      float64
	ShowVectors bool
	ShowTrails  bool
	Logger      *logging.Logger
}

// App is the window front end: one simulator tick per frame, drawn as
// white discs with green velocity arrows and fading trails.
type App struct {
	Sim         *sim.Simulator
	Opts        Options
	View        render.Viewport
	Running     bool
	Halted      bool
	ShowVectors bool
	ShowForces  bool
	ShowTrails  bool
	Telemetry   []float64
	fps         render.FPSCounter
	log         *logging.Logger
}

func NewApp(s *sim.Simulator, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &App{
		Sim:         s,
		Opts:        opts,
		View:        render.NewViewport(opts.Extent, opts.Width, opts.Height),
		Running:     true,
		ShowVectors: opts.ShowVectors,
		ShowTrails:  opts.ShowTrails,
		Telemetry:   make([]float64, 0, telemetryCapacity),
		log:         opts.Logger,
	}
}

// Run opens the window and blocks until it is closed.
func Run(s *sim.Simulator, opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))

	app := NewApp(s, opts)
	app.log.Info("window opened", "width", opts.Width, "height", opts.Height, "fps", opts.FPS)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if a.fps.Tick(rl.GetTime() * 1000) {
		rl.SetWindowTitle(a.fps.Title(a.Opts.Title))
	}

	if rl.IsWindowResized() {
		a.View = a.View.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		if !a.Halted {
			a.Running = !a.Running
		}
	case rl.IsKeyPressed(rl.KeyR):
		a.Sim.Reset()
		a.Telemetry = a.Telemetry[:0]
		a.Running, a.Halted = true, false
	case rl.IsKeyPressed(rl.KeyV):
		a.ShowVectors = !a.ShowVectors
	case rl.IsKeyPressed(rl.KeyF):
		a.ShowForces = !a.ShowForces
	case rl.IsKeyPressed(rl.KeyL):
		a.ShowTrails = !a.ShowTrails
	case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
		a.View = a.View.Zoom(1.25)
	case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
		a.View = a.View.Zoom(0.8)
	}

	if !a.Running {
		return
	}

	a.Sim.Step(a.Opts.Dt)
	s := a.Sim.Scene()
	if !s.Valid() {
		a.Running, a.Halted = false, true
		a.log.Warn("simulation halted", "tick", s.Ticks(), "error", sim.ErrInvalidState)
		return
	}

	a.Telemetry = append(a.Telemetry, s.Energy())
	if len(a.Telemetry) > telemetryCapacity {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	s := a.Sim.Scene()
	for _, p := range s.Particles() {
		a.drawParticle(s, p)
	}
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) drawParticle(s *scene.Scene, p *physics.Particle) {
	pos := a.View.ToScreen(p.Position())
	rl.DrawCircleV(vec(pos), float32(p.Radius()), ColBody)

	if a.ShowVectors {
		drawArrow(render.Arrow(pos, p.Velocity()), ColVector)
	}
	if a.ShowForces {
		drawArrow(render.Arrow(pos, s.Acceleration(p)), ColForce)
	}

	if a.ShowTrails {
		trail := p.TrailNewest()
		for i, pt := range trail {
			rl.DrawCircleV(vec(a.View.ToScreen(pt)), 1, color(render.TrailColor(i, len(trail)), render.TrailAlpha(i, len(trail))))
		}
	}
}

func drawArrow(arrow render.ArrowShape, col rl.Color) {
	rl.DrawLineEx(vec(arrow.Start), vec(arrow.Tip), 3, col)
	head := arrow.Points()
	// raylib culls clockwise triangles and the winding flips with heading
	rl.DrawTriangle(vec(head[0]), vec(head[1]), vec(head[2]), col)
	rl.DrawTriangle(vec(head[2]), vec(head[1]), vec(head[0]), col)
}

func (a *App) DrawHUD() {
	s := a.Sim.Scene()
	rl.DrawText(fmt.Sprintf("t=%.2f  ticks=%d  bodies=%d", s.Time(), s.Ticks(), s.Len()), 10, 10, 16, ColText)

	status, col := "RUNNING", ColText
	switch {
	case a.Halted:
		status, col = "HALTED", rl.Red
	case !a.Running:
		status, col = "PAUSED", ColTextDim
	}
	rl.DrawText(status, int32(a.View.Width)-100, 10, 16, col)

	a.DrawTelemetry()
	rl.DrawText("[SPACE] PAUSE  [R] RESET  [V] VECTORS  [F] FORCES  [L] TRAILS  [+/-] ZOOM  [ESC] QUIT", 10, int32(a.View.Height)-24, 14, ColTextDim)
}

// DrawTelemetry plots recent total energy as a line strip.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX, rectY := 10, 40
	width, height := 300, 50

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColTextDim)
	rl.DrawText(fmt.Sprintf("E: %.4e", a.Telemetry[len(a.Telemetry)-1]), int32(rectX+width+10), int32(rectY+height-10), 14, ColText)
}
