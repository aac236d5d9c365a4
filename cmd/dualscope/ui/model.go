package ui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"dualscope/internal/config"
	"dualscope/internal/driver"
	"dualscope/internal/logging"
	"dualscope/internal/render"
	"dualscope/internal/signal"
	"dualscope/internal/store"
)

// TickMsg is one frame callback from the host scheduler.
type TickMsg time.Time

// ConfigReloadedMsg delivers a validated config from the file watcher.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

// logPaneHeight is the cell height of the action log strip.
const logPaneHeight = 5

// Model is the scope's bubbletea model. All parameter mutation happens in
// Update, on the UI goroutine, before the next tick command is emitted, so
// a frame can never observe a half-applied parameter set.
type Model struct {
	cfg    *config.Config
	params signal.Params
	preset string

	drv     *driver.Driver
	plotter *render.Plotter
	canvas  *render.Canvas
	rng     *rand.Rand

	trace *logging.Trace
	echo  *store.Echo

	keys    KeyMap
	help    help.Model
	logPane viewport.Model
	styles  Styles

	width, height int
	ready         bool
	frame         string
}

// NewModel builds the scope from config, preferring the previous session's
// parameter echo over the configured preset when one exists.
func NewModel(cfg *config.Config, trace *logging.Trace, echo *store.Echo) Model {
	presetName := cfg.Signal.Preset
	preset, err := signal.ByName(presetName)
	if err != nil {
		preset, _ = signal.ByName(signal.DefaultPreset)
		presetName = signal.DefaultPreset
	}
	params := preset.Params

	if echoed, echoedPreset, ok := echo.Load(); ok {
		params = echoed
		if _, err := signal.ByName(echoedPreset); err == nil {
			presetName = echoedPreset
		}
		trace.Action("params_restored", zap.String("preset", presetName))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return Model{
		cfg:     cfg,
		params:  params,
		preset:  presetName,
		drv:     driver.New(),
		plotter: render.NewPlotter(cfg.Render.Steps, cfg.Render.FPS, rng),
		canvas:  render.NewCanvas(64, 16),
		rng:     rng,
		trace:   trace,
		echo:    echo,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logPane: viewport.New(80, logPaneHeight),
		styles:  DefaultStyles(),
	}
}

// Init starts the animation immediately; the scope opens live.
func (m Model) Init() tea.Cmd {
	m.start(time.Now())
	return m.scheduleTick()
}

// start transitions to running and arms the session auto-stop if one is
// configured. The driver is shared by pointer, so this sticks even from a
// value receiver.
func (m Model) start(now time.Time) {
	m.drv.Start(now)
	if d := m.cfg.GetAutoStop(); d > 0 {
		m.drv.SetDeadline(now.Add(d))
	}
	m.trace.Action("start")
}

// scheduleTick asks the driver's guard for permission, guaranteeing at
// most one tick command in flight.
func (m Model) scheduleTick() tea.Cmd {
	if !m.drv.ShouldSchedule() {
		return nil
	}
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update is the single mutation point for the whole scope.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.ready = true
		m.redraw()
		return m, nil

	case TickMsg:
		wasRunning := m.drv.Running()
		if m.drv.Tick(time.Time(msg)) {
			m.redraw()
		}
		if wasRunning && !m.drv.Running() {
			m.trace.Action("auto_stop")
			m.refreshLog()
		}
		return m, m.scheduleTick()

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Cfg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.echo.Save(m.params, m.preset)
		m.trace.Action("quit")
		m.trace.Sync()
		return *m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if m.drv.Running() {
			m.drv.Stop()
			m.trace.Action("stop", zap.Float64("t", m.drv.Seconds()))
		} else {
			m.start(time.Now())
		}

	case key.Matches(msg, m.keys.Jam):
		// Whole-record swap: frequencies, phase and noise change
		// together or not at all.
		m.params = m.params.Jammed(m.rng)
		m.trace.Action("jam",
			zap.Float64("freq_primary", m.params.FreqPrimary),
			zap.Float64("freq_secondary", m.params.FreqSecondary),
			zap.Float64("noise", m.params.Noise),
		)
		m.redraw()

	case key.Matches(msg, m.keys.Reset):
		preset, _ := signal.ByName(m.preset)
		m.params = preset.Params
		m.drv.Reset()
		m.plotter.ResetMarker()
		m.trace.Action("reset", zap.String("preset", m.preset))
		m.redraw()

	case key.Matches(msg, m.keys.NextPreset):
		m.preset = signal.Next(m.preset)
		preset, _ := signal.ByName(m.preset)
		m.params = preset.Params
		m.trace.Action("preset", zap.String("name", m.preset))
		m.redraw()

	case key.Matches(msg, m.keys.FreqUp):
		m.nudge("freq_primary", func(p *signal.Params) { p.SetFreqPrimary(p.FreqPrimary + 0.1) })
	case key.Matches(msg, m.keys.FreqDown):
		m.nudge("freq_primary", func(p *signal.Params) { p.SetFreqPrimary(p.FreqPrimary - 0.1) })
	case key.Matches(msg, m.keys.Freq2Up):
		m.nudge("freq_secondary", func(p *signal.Params) { p.SetFreqSecondary(p.FreqSecondary + 0.1) })
	case key.Matches(msg, m.keys.Freq2Down):
		m.nudge("freq_secondary", func(p *signal.Params) { p.SetFreqSecondary(p.FreqSecondary - 0.1) })
	case key.Matches(msg, m.keys.AmpUp):
		m.nudge("amplitude", func(p *signal.Params) { p.SetAmplitude(p.Amplitude + 0.1) })
	case key.Matches(msg, m.keys.AmpDown):
		m.nudge("amplitude", func(p *signal.Params) { p.SetAmplitude(p.Amplitude - 0.1) })
	case key.Matches(msg, m.keys.NoiseUp):
		m.nudge("noise", func(p *signal.Params) { p.SetNoise(p.Noise + 0.02) })
	case key.Matches(msg, m.keys.NoiseDown):
		m.nudge("noise", func(p *signal.Params) { p.SetNoise(p.Noise - 0.02) })
	case key.Matches(msg, m.keys.SplitUp):
		m.nudge("split_point", func(p *signal.Params) { p.SetSplitPoint(p.SplitPoint + 0.25) })
	case key.Matches(msg, m.keys.SplitDown):
		m.nudge("split_point", func(p *signal.Params) { p.SetSplitPoint(p.SplitPoint - 0.25) })

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		m.redraw()
	}
	return *m, m.scheduleTick()
}

// nudge applies one setter to a scratch copy and swaps the whole record.
func (m *Model) nudge(name string, mutate func(*signal.Params)) {
	next := m.params
	mutate(&next)
	m.params = next
	m.trace.Action("set_"+name, zap.Float64("value", settingValue(next, name)))
	m.redraw()
}

func settingValue(p signal.Params, name string) float64 {
	switch name {
	case "freq_primary":
		return p.FreqPrimary
	case "freq_secondary":
		return p.FreqSecondary
	case "amplitude":
		return p.Amplitude
	case "noise":
		return p.Noise
	case "split_point":
		return p.SplitPoint
	}
	return 0
}

func (m *Model) applyConfig(cfg *config.Config) (tea.Model, tea.Cmd) {
	presetChanged := cfg.Signal.Preset != m.preset
	m.cfg = cfg
	m.plotter = render.NewPlotter(cfg.Render.Steps, cfg.Render.FPS, m.rng)
	if presetChanged {
		if preset, err := signal.ByName(cfg.Signal.Preset); err == nil {
			m.preset = preset.Name
			m.params = preset.Params
		}
	}
	if m.drv.Running() {
		// Re-arm (or disarm) the auto-stop against the new session config.
		if d := cfg.GetAutoStop(); d > 0 {
			m.drv.SetDeadline(time.Now().Add(d))
		} else {
			m.drv.SetDeadline(time.Time{})
		}
	}
	m.trace.Action("config_applied", zap.String("preset", m.preset))
	m.redraw()
	return *m, m.scheduleTick()
}

// layout derives the component sizes from the window size.
func (m *Model) layout() {
	w := m.width - 4 // scope border and padding
	if w < 16 {
		w = 16
	}
	h := m.height - logPaneHeight - 7 // title, status, help, borders
	if h < 4 {
		h = 4
	}
	m.canvas.Resize(w, h)
	m.logPane.Width = m.width
	m.logPane.Height = logPaneHeight - 1
}

// redraw recomputes the canvas from the current parameters and clock.
func (m *Model) redraw() {
	w, h := m.canvas.Size()
	f := m.plotter.Frame(m.params, m.drv.Seconds(), w, h)
	m.frame = m.canvas.Render(f)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.logPane.SetContent(strings.Join(m.trace.Recent(), "\n"))
	m.logPane.GotoBottom()
}
