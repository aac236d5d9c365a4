package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the scope understands. It satisfies
// help.KeyMap so the footer renders itself.
type KeyMap struct {
	Toggle     key.Binding
	Jam        key.Binding
	Reset      key.Binding
	NextPreset key.Binding

	FreqUp    key.Binding
	FreqDown  key.Binding
	Freq2Up   key.Binding
	Freq2Down key.Binding
	AmpUp     key.Binding
	AmpDown   key.Binding
	NoiseUp   key.Binding
	NoiseDown key.Binding
	SplitUp   key.Binding
	SplitDown key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "run/pause"),
		),
		Jam: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "jam"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "preset"),
		),
		FreqUp: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "freq +"),
		),
		FreqDown: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "freq -"),
		),
		Freq2Up: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "freq2 +"),
		),
		Freq2Down: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "freq2 -"),
		),
		AmpUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "amp +"),
		),
		AmpDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "amp -"),
		),
		NoiseUp: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "noise +"),
		),
		NoiseDown: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "noise -"),
		),
		SplitUp: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "split →"),
		),
		SplitDown: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "split ←"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the single help line shown by default.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Jam, k.NextPreset, k.Reset, k.Help, k.Quit}
}

// FullHelp is the expanded help grid.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Jam, k.Reset, k.NextPreset},
		{k.FreqDown, k.FreqUp, k.Freq2Down, k.Freq2Up},
		{k.AmpDown, k.AmpUp, k.NoiseDown, k.NoiseUp},
		{k.SplitDown, k.SplitUp, k.Help, k.Quit},
	}
}
