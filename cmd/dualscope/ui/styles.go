// Package ui is the interactive bubbletea front end for dualscope: the
// animated canvas, the status bar, the action log pane and the key-driven
// parameter controls.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette. Phosphor green on near-black, like the bench instrument the
// canvas imitates.
var (
	colorTrace   = lipgloss.Color("#39FF14")
	colorDim     = lipgloss.Color("#2A6E2A")
	colorText    = lipgloss.Color("#C9D1C9")
	colorMuted   = lipgloss.Color("#5A665A")
	colorAccent  = lipgloss.Color("#FFC107")
	colorStopped = lipgloss.Color("#E53935")
)

// Styles bundles every lipgloss style the view uses, so the view code
// never constructs styles inline.
type Styles struct {
	Title     lipgloss.Style
	Scope     lipgloss.Style
	StatusBar lipgloss.Style
	StateRun  lipgloss.Style
	StateStop lipgloss.Style
	StatusKey lipgloss.Style
	LogPane   lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the standard scope styling.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(colorTrace).
			Bold(true).
			Padding(0, 1),
		Scope: lipgloss.NewStyle().
			Foreground(colorTrace).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1),
		StateRun: lipgloss.NewStyle().
			Foreground(colorTrace).
			Bold(true),
		StateStop: lipgloss.NewStyle().
			Foreground(colorStopped).
			Bold(true),
		StatusKey: lipgloss.NewStyle().
			Foreground(colorAccent),
		LogPane: lipgloss.NewStyle().
			Foreground(colorMuted).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorDim),
		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1),
	}
}
