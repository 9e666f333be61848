package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Haze-32/tjk/internal/calendar"
)

// overlayResult is sent when an overlay completes.
type overlayResult struct {
	action string // "cancel", "choose", "export"
	mark   calendar.Mark
}

func overlayResultMsg(action string, mark calendar.Mark) tea.Cmd {
	return func() tea.Msg {
		return overlayResult{action: action, mark: mark}
	}
}

var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(44)
	overlayTitleStyle  = lipgloss.NewStyle().Bold(true)
	overlayActiveStyle = lipgloss.NewStyle().Reverse(true)
	overlayMutedStyle  = lipgloss.NewStyle().Faint(true)
)

// --- Day Options Overlay ---
// The ✓ / ✗ choice for the open day.

var dayOptions = []calendar.Mark{calendar.Success, calendar.Failure}

type dayOptionsOverlay struct {
	date    calendar.Date
	current calendar.Mark
	cursor  int // index into dayOptions
}

func newDayOptionsOverlay(date calendar.Date, current calendar.Mark) *dayOptionsOverlay {
	o := &dayOptionsOverlay{date: date, current: current}
	if current == calendar.Failure {
		o.cursor = 1
	}
	return o
}

func (o *dayOptionsOverlay) Init() tea.Cmd { return nil }

func (o *dayOptionsOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return o, overlayResultMsg("cancel", calendar.Unset)
		case "left", "h", "right", "l", "tab":
			o.cursor = 1 - o.cursor
		case "enter", " ":
			return o, overlayResultMsg("choose", dayOptions[o.cursor])
		case "s", "y":
			return o, overlayResultMsg("choose", calendar.Success)
		case "x", "n":
			return o, overlayResultMsg("choose", calendar.Failure)
		}
	}
	return o, nil
}

func (o *dayOptionsOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render(o.date.Time().Format("Monday, Jan 2")))
	b.WriteString("\n\n")

	for i, mark := range dayOptions {
		label := fmt.Sprintf("[%s]", mark)
		if mark == o.current {
			label += " (clear)"
		}
		if i == o.cursor {
			b.WriteString(overlayActiveStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("    ")
	}

	b.WriteString("\n\n")
	b.WriteString(overlayMutedStyle.Render("←/→ select  |  s ✓  |  x ✗  |  enter confirm  |  esc close"))

	return overlayBoxStyle.Render(b.String())
}

// --- Export Overlay ---
// Confirmation before writing the PDF snapshot.

type exportOverlay struct {
	path   string
	marked int
	cursor int // 0 = yes, 1 = no
}

func newExportOverlay(path string, marked int) *exportOverlay {
	return &exportOverlay{path: path, marked: marked}
}

func (o *exportOverlay) Init() tea.Cmd { return nil }

func (o *exportOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return o, overlayResultMsg("cancel", calendar.Unset)
		case "left", "h", "right", "l", "tab":
			o.cursor = 1 - o.cursor
		case "enter":
			if o.cursor == 0 {
				return o, overlayResultMsg("export", calendar.Unset)
			}
			return o, overlayResultMsg("cancel", calendar.Unset)
		case "y":
			return o, overlayResultMsg("export", calendar.Unset)
		case "n":
			return o, overlayResultMsg("cancel", calendar.Unset)
		}
	}
	return o, nil
}

func (o *exportOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Export PDF"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  %s\n\n", o.path)
	if o.marked > 0 {
		fmt.Fprintf(&b, "  %d marked days will be included.\n\n", o.marked)
	} else {
		b.WriteString("  No days marked yet.\n\n")
	}
	b.WriteString("  Export?\n\n")

	yes := "  [Yes]"
	no := "  [No]"
	if o.cursor == 0 {
		yes = overlayActiveStyle.Render("> [Yes]")
	} else {
		no = overlayActiveStyle.Render("> [No]")
	}
	b.WriteString(yes + "    " + no)
	b.WriteString("\n\n")
	b.WriteString(overlayMutedStyle.Render("←/→ select  |  enter confirm  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}
