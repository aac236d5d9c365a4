package ui

import (
	"fmt"
	"strings"
)

// View renders the full screen: title, scope canvas, status bar, action
// log pane and help footer.
func (m Model) View() string {
	if !m.ready {
		return "warming up the tube..."
	}

	var b strings.Builder

	title := m.styles.Title.Render("dualscope") + "  " + m.stateBadge()
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(m.styles.Scope.Render(m.frame))
	b.WriteString("\n")

	b.WriteString(m.statusBar())
	b.WriteString("\n")

	b.WriteString(m.styles.LogPane.Render(m.logPane.View()))
	b.WriteString("\n")

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) stateBadge() string {
	if m.drv.Running() {
		return m.styles.StateRun.Render("▶ running")
	}
	return m.styles.StateStop.Render("■ stopped")
}

func (m Model) statusBar() string {
	p := m.params
	kv := func(k string, format string, v ...any) string {
		return m.styles.StatusKey.Render(k+" ") + fmt.Sprintf(format, v...)
	}
	parts := []string{
		kv("preset", "%s", m.preset),
		kv("f1", "%.2f", p.FreqPrimary),
		kv("f2", "%.2f", p.FreqSecondary),
		kv("amp", "%.2f", p.Amplitude),
		kv("noise", "%.2f", p.Noise),
		kv("split", "%.2f", p.SplitPoint),
		kv("t", "%.1fs", m.drv.Seconds()),
	}
	return m.styles.StatusBar.Render(strings.Join(parts, "  "))
}
