package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"mihorario/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.clampScroll(), nil

	case commands.CatalogLoadedMsg:
		m.loading = false
		m.courses = msg.Courses
		m.catCursor = 0
		if m.wantCatalog && m.mode == ModeSchedule {
			m.mode = ModeCatalog
		}
		m.wantCatalog = false
		return m, nil

	case commands.ErrMsg:
		m.loading = false
		return m.status(msg.Err.Error(), true)

	case commands.StatusMsg:
		return m.status(msg.Msg, false)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		m.statusWarn = false
		return m, nil

	case commands.ExportedMsg:
		return m.status(fmt.Sprintf("Exported to %s", msg.Path), false)

	case commands.ScheduleSavedMsg:
		return m.status(fmt.Sprintf("Saved schedule %q", msg.Name), false)
	}

	return m, nil
}

// clampScroll keeps the scroll offset inside the grid.
func (m Model) clampScroll() Model {
	maxOffset := m.gridRows() - m.visibleGridRows()
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	return m
}
