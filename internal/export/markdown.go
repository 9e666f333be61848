package export

import (
	"fmt"
	"strings"

	"github.com/Haze-32/tjk/internal/session"
)

// Markdown renders the document as GitHub-flavored Markdown with one table
// per month. Locked days carry a trailing asterisk.
func Markdown(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "_%s_\n\n", doc.Range())

	cols := session.Columns(doc.WeekMode)
	for _, m := range doc.Months {
		fmt.Fprintf(&b, "## %s %d\n\n", m.Label, m.Year)

		b.WriteString("| Week |")
		for _, c := range cols {
			fmt.Fprintf(&b, " %s |", c)
		}
		b.WriteString(" Result |\n")

		b.WriteString("|---|")
		for range cols {
			b.WriteString(":---:|")
		}
		b.WriteString(":---:|\n")

		for _, w := range m.Weeks {
			fmt.Fprintf(&b, "| %s |", w.Label)
			for _, slot := range w.Slots(doc.WeekMode) {
				fmt.Fprintf(&b, " %s |", dayCell(slot))
			}
			fmt.Fprintf(&b, " %s |\n", markdownEscape(w.Rollup.String()))
		}
		b.WriteString("\n")
	}

	s := doc.Summary
	fmt.Fprintf(&b, "**Success:** %d &nbsp; **Failure:** %d &nbsp; **Unset:** %d &nbsp; **Full weeks:** %d\n\n",
		s.Success, s.Failure, s.Unset, s.FullWeeks)
	b.WriteString("\\* locked: always counts as success\n")

	return b.String()
}

func dayCell(day *session.DayView) string {
	if day == nil {
		return ""
	}
	cell := fmt.Sprintf("%d", day.Date.Day)
	if day.Mark.String() != "" {
		cell += " " + day.Mark.String()
	}
	if day.Locked {
		cell += "\\*"
	}
	return cell
}

func markdownEscape(s string) string {
	return strings.ReplaceAll(s, "$", "\\$")
}
