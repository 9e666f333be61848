package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Haze-32/tjk/internal/calendar"
	"github.com/Haze-32/tjk/internal/export"
)

func (m trackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If overlay is active, delegate to it
	if m.overlay != nil {
		return m.updateOverlay(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m = m.ensureCursorVisible()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.session.Close()
			m.footerMsg = ""
		case "right", "l":
			m = m.moveDay(1).ensureCursorVisible()
		case "left", "h":
			m = m.moveDay(-1).ensureCursorVisible()
		case "down", "j":
			m = m.moveWeek(1).ensureCursorVisible()
		case "up", "k":
			m = m.moveWeek(-1).ensureCursorVisible()
		case "enter", " ":
			return m.startSelect()
		case "e":
			return m.startExport()
		}
	}
	return m, nil
}

// updateOverlay delegates input to the active overlay and handles overlay results.
func (m trackerModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(overlayResult); ok {
		return m.handleOverlayResult(result)
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.termWidth = size.Width
		m.termHeight = size.Height
	}

	updated, cmd := m.overlay.Update(msg)
	m.overlay = updated
	return m, cmd
}

func (m trackerModel) handleOverlayResult(result overlayResult) (tea.Model, tea.Cmd) {
	switch result.action {
	case "choose":
		return m.handleChoose(result.mark)
	case "export":
		return m.handleExport()
	}

	m.session.Close()
	m.overlay = nil
	m.footerMsg = ""
	return m, nil
}

func (m trackerModel) startSelect() (tea.Model, tea.Cmd) {
	d := m.cursorDate()
	if d == nil {
		return m, nil
	}
	if !m.session.Select(*d) {
		m.footerMsg = fmt.Sprintf("%s is locked", d.Short())
		return m, nil
	}
	if _, open := m.session.OpenDay(); !open {
		return m, nil
	}
	m.overlay = newDayOptionsOverlay(*d, m.session.Marks().Get(*d))
	m.footerMsg = ""
	return m.ensureCursorVisible(), nil
}

func (m trackerModel) handleChoose(mark calendar.Mark) (tea.Model, tea.Cmd) {
	m.overlay = nil
	d, open := m.session.OpenDay()
	if !open {
		return m, nil
	}

	m.session.Choose(d, mark)
	if stored := m.session.Marks().Get(d); stored == calendar.Unset {
		m.footerMsg = fmt.Sprintf("%s cleared", d.Short())
	} else {
		m.footerMsg = fmt.Sprintf("%s marked %s", d.Short(), stored)
	}
	return m, nil
}

func (m trackerModel) startExport() (tea.Model, tea.Cmd) {
	if m.export == nil {
		return m, nil
	}
	doc := export.FromSession(m.title, m.session)
	m.overlay = newExportOverlay(export.FileName(doc, export.FormatPDF), m.session.Marks().Len())
	return m, nil
}

func (m trackerModel) handleExport() (tea.Model, tea.Cmd) {
	m.overlay = nil
	path, err := m.export(export.FromSession(m.title, m.session))
	if err != nil {
		m.footerMsg = "Error exporting: " + err.Error()
		return m, nil
	}
	m.footerMsg = "Exported to " + path
	return m, nil
}
