package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// panelChromeRows is the vertical space the title bar, column header, and
// footer consume around each panel's listing/preview body.
const panelChromeRows = 4

// handleResize reacts to a terminal resize: both panels' previews are
// re-sized to match, and PgUp/PgDown's page size tracks the new visible
// row count.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height

	rows := m.height - panelChromeRows
	if rows < 1 {
		rows = 1
	}
	pageSize = rows

	panelWidth := m.width / 2
	for _, ps := range m.previews {
		if ps != nil {
			ps.view.SetSize(panelWidth, rows)
		}
	}
	return m, nil
}
