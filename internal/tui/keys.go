package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mihorario/internal/export"
	"mihorario/internal/horario"
	"mihorario/internal/tui/commands"
)

const statusTimeout = 4 * time.Second

// Default export paths, relative to the working directory.
const (
	icsPath   = "horario.ics"
	tablePath = "horario.txt"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeCatalog:
		return m.handleCatalogKeys(msg)
	case ModeSections:
		return m.handleSectionsKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeSave:
		return m.handleSaveKeys(msg)
	default:
		return m.handleScheduleKeys(msg)
	}
}

// handleScheduleKeys handles keys in the main schedule view.
func (m Model) handleScheduleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "j", "down":
		if m.selCursor < m.store.Len()-1 {
			m.selCursor++
		}
		return m, nil

	case "k", "up":
		if m.selCursor > 0 {
			m.selCursor--
		}
		return m, nil

	case "pgdown", "ctrl+d":
		m.scrollOffset += 4
		return m.clampScroll(), nil

	case "pgup", "ctrl+u":
		m.scrollOffset -= 4
		return m.clampScroll(), nil

	case "a", "enter":
		if m.loading {
			m.wantCatalog = true
			return m.status("Loading catalog...", false)
		}
		if m.courses == nil {
			m.loading = true
			return m, commands.LoadCatalog(m.client, m.filters())
		}
		m.mode = ModeCatalog
		return m, nil

	case "r":
		m.loading = true
		m.courses = nil
		return m, commands.LoadCatalog(m.client, m.filters())

	case "d", "x":
		selections := m.store.Selections()
		if m.selCursor >= len(selections) {
			return m, nil
		}
		removed := selections[m.selCursor]
		if err := m.store.Remove(removed.CourseCode); err != nil {
			return m.status(err.Error(), true)
		}
		if m.selCursor >= m.store.Len() && m.selCursor > 0 {
			m.selCursor--
		}
		return m.status(fmt.Sprintf("Removed %s", removed.CourseCode), false)

	case "c":
		if m.store.Len() == 0 {
			return m, nil
		}
		n := m.store.Len()
		if err := m.store.Clear(); err != nil {
			return m.status(err.Error(), true)
		}
		m.selCursor = 0
		return m.status(fmt.Sprintf("Removed %d courses", n), false)

	case "e":
		if m.store.Len() == 0 {
			return m.status("Nothing selected", true)
		}
		return m, commands.ExportICS(m.store.Selections(), icsPath)

	case "p":
		if m.store.Len() == 0 {
			return m.status("Nothing selected", true)
		}
		opts := export.TableOptions{
			Site:    m.config.Catalog.Site,
			Program: m.config.Catalog.Program,
		}
		return m, commands.ExportTable(m.store.Selections(), tablePath, opts)

	case "s":
		if m.store.Len() == 0 {
			return m.status("Nothing selected", true)
		}
		m.mode = ModeSave
		m.saveName.SetValue("")
		m.saveName.Focus()
		return m, nil
	}

	return m, nil
}

// handleCatalogKeys handles keys in the course picker.
func (m Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.mode = ModeSchedule
		return m, nil

	case "j", "down":
		if m.catCursor < len(m.courses)-1 {
			m.catCursor++
		}
		return m, nil

	case "k", "up":
		if m.catCursor > 0 {
			m.catCursor--
		}
		return m, nil

	case "enter", "l":
		if _, ok := m.currentCourse(); !ok {
			return m, nil
		}
		m.mode = ModeSections
		m.secCursor = 0
		return m, nil
	}

	return m, nil
}

// handleSectionsKeys handles keys in the section picker.
func (m Model) handleSectionsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "h":
		m.mode = ModeCatalog
		return m, nil

	case "j", "down":
		course, _ := m.currentCourse()
		if m.secCursor < len(course.Sections)-1 {
			m.secCursor++
		}
		return m, nil

	case "k", "up":
		if m.secCursor > 0 {
			m.secCursor--
		}
		return m, nil

	case "enter":
		sel, ok := m.currentSection()
		if !ok {
			return m, nil
		}
		return m.attemptAdd(sel)
	}

	return m, nil
}

// handleConfirmKeys handles the replace-section confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.pending == nil {
			m.mode = ModeSchedule
			return m, nil
		}
		candidate := m.pending.Candidate
		m.pending = nil
		return m.applyAdd(candidate)

	case "n", "esc", "q":
		m.pending = nil
		m.mode = ModeSections
		return m, nil
	}

	return m, nil
}

// handleSaveKeys handles the schedule-name prompt.
func (m Model) handleSaveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeSchedule
		m.saveName.Blur()
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.saveName.Value())
		if name == "" {
			return m.status("Name required", true)
		}
		m.mode = ModeSchedule
		m.saveName.Blur()
		return m, commands.SaveSchedule(m.client, name, m.store.Selections())
	}

	var cmd tea.Cmd
	m.saveName, cmd = m.saveName.Update(msg)
	return m, cmd
}

// attemptAdd adds a section, asking for confirmation first when it
// would replace an already picked section of the same course.
func (m Model) attemptAdd(sel horario.Selection) (tea.Model, tea.Cmd) {
	if current, err := m.store.Get(sel.CourseCode); err == nil && current.SectionID != sel.SectionID {
		m.pending = &PendingReplacement{Current: current, Candidate: sel}
		m.mode = ModeConfirm
		return m, nil
	}
	return m.applyAdd(sel)
}

func (m Model) applyAdd(sel horario.Selection) (tea.Model, tea.Cmd) {
	conflict, err := m.store.Add(sel)
	if conflict != nil {
		m.mode = ModeSections
		return m.status(fmt.Sprintf("Conflicts with %s, %d min overlap", conflict, conflict.OverlapMinutes), true)
	}
	m.mode = ModeSchedule
	if err != nil {
		return m.status(fmt.Sprintf("Added %s, but saving failed: %v", sel.Label(), err), true)
	}
	return m.status(fmt.Sprintf("Added %s", sel.Label()), false)
}

func (m Model) status(msg string, warn bool) (Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusWarn = warn
	return m, commands.ClearStatusAfter(statusTimeout)
}
