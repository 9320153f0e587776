package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/orbitsim/internal/render"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color

	// Scene colours
	Body      lipgloss.Color
	Vector    lipgloss.Color
	TrailHead lipgloss.Color
	TrailTail lipgloss.Color
}

// TrailColor colours trail entry i of n, newest first.
func (t Theme) TrailColor(i, n int) string {
	head, err := colorful.Hex(string(t.TrailHead))
	if err != nil {
		head = render.TrailHead
	}
	tail, err := colorful.Hex(string(t.TrailTail))
	if err != nil {
		tail = render.TrailTail
	}
	return render.Hex(render.Fade(head, tail, float64(render.TrailAlpha(i, n))/255))
}

// Available themes
var (
	ThemeDefault = Theme{
		Name:       "default",
		Primary:    lipgloss.Color("#8888ff"),
		Secondary:  lipgloss.Color("#00ffff"),
		Accent:     lipgloss.Color("#ffff00"),
		Background: lipgloss.Color(render.Hex(render.Background)),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ff8800"),
		Error:      lipgloss.Color("#ff0000"),
		Body:       lipgloss.Color(render.Hex(render.Body)),
		Vector:     lipgloss.Color(render.Hex(render.Velocity)),
		TrailHead:  lipgloss.Color(render.Hex(render.TrailHead)),
		TrailTail:  lipgloss.Color(render.Hex(render.TrailTail)),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
		Body:       lipgloss.Color("#ccffcc"),
		Vector:     lipgloss.Color("#88ff88"),
		TrailHead:  lipgloss.Color("#00ff00"),
		TrailTail:  lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
		Body:       lipgloss.Color("#ffffff"),
		Vector:     lipgloss.Color("#0088ff"),
		TrailHead:  lipgloss.Color("#cccccc"),
		TrailTail:  lipgloss.Color("#333333"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff4444"),
		Body:       lipgloss.Color("#e0f0ff"),
		Vector:     lipgloss.Color("#ffd700"),
		TrailHead:  lipgloss.Color("#00a8cc"),
		TrailTail:  lipgloss.Color("#001a33"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
		Body:       lipgloss.Color("#fff5f5"),
		Vector:     lipgloss.Color("#5fd068"),
		TrailHead:  lipgloss.Color("#ff6b6b"),
		TrailTail:  lipgloss.Color("#feca57"),
	}

	CurrentTheme = ThemeDefault

	// All available themes
	Themes = []Theme{
		ThemeDefault,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
	SetTheme(names[0])
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
