package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a named color scheme for the panel chrome.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Fluid   lipgloss.Color
}

var themes = []Theme{
	{
		Name: "cyberpunk", Primary: lipgloss.Color("#ff00ff"), Accent: lipgloss.Color("#ffff00"),
		Muted: lipgloss.Color("#666666"), Text: lipgloss.Color("#ffffff"), Fluid: lipgloss.Color("#00ffff"),
	},
	{
		Name: "ocean", Primary: lipgloss.Color("#0077be"), Accent: lipgloss.Color("#ffd700"),
		Muted: lipgloss.Color("#4488aa"), Text: lipgloss.Color("#e0f0ff"), Fluid: lipgloss.Color("#4fb8ff"),
	},
	{
		Name: "retro", Primary: lipgloss.Color("#00ff00"), Accent: lipgloss.Color("#ffff00"),
		Muted: lipgloss.Color("#005500"), Text: lipgloss.Color("#00ff00"), Fluid: lipgloss.Color("#00ff00"),
	},
}

// themeByIndex wraps the theme list for cycling with T.
func themeByIndex(i int) Theme {
	n := len(themes)
	return themes[((i%n)+n)%n]
}
