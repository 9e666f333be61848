package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Haze-32/tjk/internal/calendar"
	"github.com/Haze-32/tjk/internal/session"
)

const (
	weekColWidth   = 15
	dayColWidth    = 6
	rollupColWidth = 6
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	dotStyle      = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	openStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
)

// gridLines renders the calendar one line per slice entry. cursor is the
// highlighted day, or nil. The second result is the line holding the cursor,
// -1 when there is none.
func gridLines(title string, months []session.MonthView, mode calendar.WeekMode, cursor *calendar.Date) ([]string, int) {
	var lines []string
	cursorLine := -1

	lines = append(lines, headerStyle.Render(Primary(title)))

	cols := session.Columns(mode)
	for _, m := range months {
		lines = append(lines, "")
		lines = append(lines, headerStyle.Render(fmt.Sprintf("--- %s %d ---", m.Label, m.Year)))

		var hdr strings.Builder
		hdr.WriteString(headerStyle.Render(padRight("Week", weekColWidth)))
		for _, c := range cols {
			hdr.WriteString(" | ")
			hdr.WriteString(headerStyle.Render(padCenter(c, dayColWidth)))
		}
		hdr.WriteString(" | ")
		hdr.WriteString(headerStyle.Render(padCenter("", rollupColWidth)))
		lines = append(lines, hdr.String())
		lines = append(lines, gridSeparator(len(cols)))

		for _, w := range m.Weeks {
			var row strings.Builder
			row.WriteString(padRight(w.Label, weekColWidth))
			for _, slot := range w.Slots(mode) {
				row.WriteString(" | ")
				selected := slot != nil && cursor != nil && slot.Date == *cursor
				if selected {
					cursorLine = len(lines)
				}
				row.WriteString(renderDayCell(slot, selected))
			}
			row.WriteString(" | ")
			row.WriteString(renderRollupCell(w.Rollup))
			lines = append(lines, row.String())
		}
	}

	return lines, cursorLine
}

func gridSeparator(cols int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", weekColWidth))
	for i := 0; i < cols; i++ {
		b.WriteString("-+-")
		b.WriteString(strings.Repeat("-", dayColWidth))
	}
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", rollupColWidth))
	return b.String()
}

// dayCellText is "11", "12 ✓", "15 ✓*" (locked) or blank for an empty slot.
func dayCellText(day *session.DayView) string {
	if day == nil {
		return ""
	}
	text := fmt.Sprintf("%d", day.Date.Day)
	if day.Mark != calendar.Unset {
		text += " " + day.Mark.String()
	}
	if day.Locked {
		text += "*"
	}
	return text
}

func renderDayCell(day *session.DayView, selected bool) string {
	cell := padCenter(dayCellText(day), dayColWidth)
	switch {
	case day == nil:
		return cell
	case selected:
		return selectedStyle.Render(cell)
	case day.Open:
		return openStyle.Render(cell)
	case day.Locked:
		return lockedStyle.Render(cell)
	case day.Mark == calendar.Success:
		return successStyle.Render(cell)
	case day.Mark == calendar.Failure:
		return failureStyle.Render(cell)
	default:
		return dotStyle.Render(cell)
	}
}

func renderRollupCell(sym calendar.Symbol) string {
	cell := padCenter(sym.String(), rollupColWidth)
	switch sym {
	case calendar.SymbolSuccess:
		return successStyle.Bold(true).Render(cell)
	case calendar.SymbolFailure:
		return failureStyle.Bold(true).Render(cell)
	}
	return cell
}

func renderSummary(s session.Summary) string {
	return fmt.Sprintf("%s %d  %s %d  %s %d  %s %d",
		Success("success"), s.Success,
		Failure("failure"), s.Failure,
		Silent("unset"), s.Unset,
		Success("$ weeks"), s.FullWeeks,
	)
}

// printCalendar writes the whole calendar with its summary and legend.
func printCalendar(w io.Writer, title string, s *session.Session) error {
	lines, _ := gridLines(title, s.Snapshot(), s.Engine().WeekMode(), nil)
	if len(s.Months()) == 0 {
		lines = append(lines, "", Warning("No weekdays between "+s.Engine().Start().String()+" and "+s.Engine().End().String()+"."))
	}
	lines = append(lines, "", renderSummary(s.Summary()), footerStyle.Render("* locked: always counts as success"))
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// padRight and padCenter measure display width, so marks like ✓ count as one
// column.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

func padCenter(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return truncate(s, width)
	}
	total := width - w
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}
