package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Haze-32/tjk/internal/calendar"
	"github.com/Haze-32/tjk/internal/export"
	"github.com/Haze-32/tjk/internal/session"
)

var trackCmd = LeafCommand{
	Use:        "track",
	Short:      "Mark days on the interactive calendar",
	StrFlags:   calendarStrFlags,
	SliceFlags: calendarSliceFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		return runTrack(cmd, homeDir, readCalendarFlags(cmd))
	},
}.Build()

// exportFunc writes a snapshot and returns the path it wrote.
type exportFunc func(doc export.Document) (string, error)

func exportPDF(doc export.Document) (string, error) {
	return writeExport(doc, export.FormatPDF, "")
}

type trackerModel struct {
	session *session.Session
	title   string
	mode    calendar.WeekMode

	days        []calendar.Date // every weekday in order
	weekOf      []int           // week row of each day
	weeks       [][]int         // day indexes per week row
	monthStarts map[int]bool    // week rows that open a month

	cursor     int // index into days
	scrollY    int // first visible grid line
	termWidth  int
	termHeight int
	overlay    tea.Model // active overlay (nil when none)
	footerMsg  string
	export     exportFunc
}

func newTrackerModel(title string, s *session.Session, exp exportFunc) trackerModel {
	m := trackerModel{
		session:     s,
		title:       title,
		mode:        s.Engine().WeekMode(),
		termWidth:   80,
		termHeight:  40,
		export:      exp,
		monthStarts: map[int]bool{},
	}
	for _, month := range s.Months() {
		m.monthStarts[len(m.weeks)] = true
		for _, w := range month.Weeks {
			row := make([]int, 0, w.Len())
			for _, d := range w.Dates {
				row = append(row, len(m.days))
				m.weekOf = append(m.weekOf, len(m.weeks))
				m.days = append(m.days, d)
			}
			m.weeks = append(m.weeks, row)
		}
	}
	return m
}

func (m trackerModel) Init() tea.Cmd {
	return nil
}

// cursorDate returns the highlighted day, or nil for an empty calendar.
func (m trackerModel) cursorDate() *calendar.Date {
	if len(m.days) == 0 {
		return nil
	}
	d := m.days[m.cursor]
	return &d
}

// column is the grid column a day occupies in its week row.
func (m trackerModel) column(idx int) int {
	if m.mode == calendar.WeekCalendar {
		return int(m.days[idx].Weekday()) - 1
	}
	return idx - m.weeks[m.weekOf[idx]][0]
}

// moveDay steps the cursor along the weekday sequence.
func (m trackerModel) moveDay(delta int) trackerModel {
	next := m.cursor + delta
	if next >= 0 && next < len(m.days) {
		m.cursor = next
	}
	return m
}

// moveWeek jumps to the adjacent week row, landing on the day closest to
// the current column.
func (m trackerModel) moveWeek(delta int) trackerModel {
	if len(m.days) == 0 {
		return m
	}
	target := m.weekOf[m.cursor] + delta
	if target < 0 || target >= len(m.weeks) {
		return m
	}
	col := m.column(m.cursor)
	best, bestDist := -1, 0
	for _, idx := range m.weeks[target] {
		dist := m.column(idx) - col
		if dist < 0 {
			dist = -dist
		}
		if best == -1 || dist < bestDist {
			best, bestDist = idx, dist
		}
	}
	m.cursor = best
	return m
}

// visibleLines is how many grid lines fit above the footer and overlay.
func (m trackerModel) visibleLines() int {
	reserved := 4 // blank + summary + footer + message
	if m.overlay != nil {
		reserved += 9
	}
	if n := m.termHeight - reserved; n > 1 {
		return n
	}
	return 1
}

// ensureCursorVisible scrolls so the cursor line is within the viewport.
func (m trackerModel) ensureCursorVisible() trackerModel {
	lines, cursorLine := gridLines(m.title, m.session.Snapshot(), m.mode, m.cursorDate())
	if cursorLine < 0 {
		return m
	}
	visible := m.visibleLines()
	top := cursorLine
	switch week := m.weekOf[m.cursor]; {
	case week == 0:
		top = 0
	case m.monthStarts[week]:
		top -= 3 // month heading, column header and separator
	}
	if top < m.scrollY {
		m.scrollY = top
	}
	if cursorLine >= m.scrollY+visible {
		m.scrollY = cursorLine - visible + 1
	}
	return m.clampScroll(len(lines))
}

func (m trackerModel) clampScroll(total int) trackerModel {
	max := total - m.visibleLines()
	if max < 0 {
		max = 0
	}
	if m.scrollY > max {
		m.scrollY = max
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	return m
}

func runTrack(cmd *cobra.Command, homeDir string, o calendarOverrides) error {
	cfg, engine, err := loadCalendar(homeDir, o)
	if err != nil {
		return err
	}
	s := session.New(engine)
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print static calendar
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printCalendar(out, cfg.Title, s)
	}

	m := newTrackerModel(cfg.Title, s, exportPDF)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}
