package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme of the live view.
type Theme struct {
	Name        string
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Muted       lipgloss.Color
	Frame       lipgloss.Color
	Unassembled lipgloss.Color
	Assembled   lipgloss.Color
	Warning     lipgloss.Color
}

var (
	// ThemeClassic uses the red/blue particle colours of the exported plots.
	ThemeClassic = Theme{
		Name:        "classic",
		Primary:     lipgloss.Color("#00ffff"),
		Secondary:   lipgloss.Color("#4488ff"),
		Muted:       lipgloss.Color("#666688"),
		Frame:       lipgloss.Color("#444466"),
		Unassembled: lipgloss.Color("#ff4444"),
		Assembled:   lipgloss.Color("#4488ff"),
		Warning:     lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:        "retro",
		Primary:     lipgloss.Color("#00ff00"),
		Secondary:   lipgloss.Color("#00cc00"),
		Muted:       lipgloss.Color("#005500"),
		Frame:       lipgloss.Color("#007700"),
		Unassembled: lipgloss.Color("#88ff88"),
		Assembled:   lipgloss.Color("#ffff00"),
		Warning:     lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:        "ocean",
		Primary:     lipgloss.Color("#0077be"),
		Secondary:   lipgloss.Color("#00a8cc"),
		Muted:       lipgloss.Color("#4488aa"),
		Frame:       lipgloss.Color("#336699"),
		Unassembled: lipgloss.Color("#e0f0ff"),
		Assembled:   lipgloss.Color("#ffd700"),
		Warning:     lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:        "sunset",
		Primary:     lipgloss.Color("#ff6b6b"),
		Secondary:   lipgloss.Color("#feca57"),
		Muted:       lipgloss.Color("#8b6b8c"),
		Frame:       lipgloss.Color("#8b6b8c"),
		Unassembled: lipgloss.Color("#ff9ff3"),
		Assembled:   lipgloss.Color("#5fd068"),
		Warning:     lipgloss.Color("#ffc048"),
	}

	CurrentTheme = ThemeClassic

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the classic theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
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
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
