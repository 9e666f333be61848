package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const trackKeys = "←/→/↑/↓ move  |  enter options  |  s ✓  x ✗  |  e export PDF  |  q quit"

func (m trackerModel) View() string {
	lines, _ := gridLines(m.title, m.session.Snapshot(), m.mode, m.cursorDate())

	end := m.scrollY + m.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}
	start := m.scrollY
	if start > end {
		start = end
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines[start:end], "\n"))
	b.WriteString("\n")

	if len(m.days) == 0 {
		b.WriteString(Warning("No weekdays in this range."))
		b.WriteString("\n")
	}

	if m.overlay != nil {
		b.WriteString(lipgloss.PlaceHorizontal(m.termWidth, lipgloss.Center, m.overlay.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderSummary(m.session.Summary()))
	b.WriteString("\n")

	footer := trackKeys
	if m.footerMsg != "" {
		footer = m.footerMsg + "  |  " + footer
	}
	b.WriteString(footerStyle.Render(footer))
	b.WriteString("\n")

	return b.String()
}
