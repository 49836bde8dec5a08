package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"mihorario/internal/api"
	"mihorario/internal/grid"
	"mihorario/internal/horario"
)

const timeColWidth = 6

// modalWindow caps how many list rows a modal shows at once.
const modalWindow = 12

// View renders the TUI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	if m.width < timeColWidth+len(horario.Days)*8 {
		return "Terminal too small"
	}

	base := m.renderSchedule()

	switch m.mode {
	case ModeCatalog:
		return m.overlay.Center(base, m.width, m.height, m.renderCatalogModal())
	case ModeSections:
		return m.overlay.Center(base, m.width, m.height, m.renderSectionsModal())
	case ModeConfirm:
		return m.overlay.Center(base, m.width, m.height, m.renderConfirmModal())
	case ModeSave:
		return m.overlay.Center(base, m.width, m.height, m.renderSaveModal())
	}
	return base
}

func (m Model) colWidth() int {
	return (m.width - timeColWidth) / len(horario.Days)
}

func (m Model) gridRows() int {
	return len(m.skeleton.Rows)
}

func (m Model) visibleGridRows() int {
	rows := m.height - 4 - m.listHeight()
	if rows > m.gridRows() {
		rows = m.gridRows()
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

func (m Model) listHeight() int {
	n := m.store.Len()
	if n == 0 {
		return 1
	}
	if n > 4 {
		return 4
	}
	return n
}

func (m Model) renderSchedule() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteByte('\n')
	b.WriteString(m.renderDayHeader())
	b.WriteByte('\n')

	gridArea := m.renderGrid()
	visible := strings.Split(gridArea, "\n")
	low := m.scrollOffset
	high := low + m.visibleGridRows()
	if high > len(visible) {
		high = len(visible)
	}
	if low > high {
		low = high
	}
	for _, line := range visible[low:high] {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(m.renderSelectionList())
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTitle() string {
	title := m.styles.Title.Render("MiHorario")
	sub := ""
	if m.config.Catalog.Site != "" || m.config.Catalog.Program != "" {
		sub = m.styles.Help.Render(fmt.Sprintf("  %s / %s", m.config.Catalog.Site, m.config.Catalog.Program))
	}
	return title + sub
}

func (m Model) renderDayHeader() string {
	colWidth := m.colWidth()
	var b strings.Builder
	b.WriteString(m.styles.DayHeader.Width(timeColWidth).Render(""))
	for _, day := range m.skeleton.Days {
		b.WriteString(m.styles.DayHeader.Width(colWidth).Render(day.String()))
	}
	return b.String()
}

// renderGrid draws the full display window with class blocks painted
// over it. Scrolling slices the result, so positions stay absolute.
func (m Model) renderGrid() string {
	colWidth := m.colWidth()
	rowWidth := timeColWidth + colWidth*len(m.skeleton.Days)

	lines := make([]string, 0, len(m.skeleton.Rows))
	for _, label := range m.skeleton.Rows {
		row := m.styles.TimeLabel.Width(timeColWidth).Render(label) +
			m.styles.EmptyCell.Render(strings.Repeat(" ", rowWidth-timeColWidth))
		lines = append(lines, row)
	}
	base := strings.Join(lines, "\n")

	meas := grid.Measurements{
		HeaderHeight: 0,
		TimeColWidth: timeColWidth,
		RowHeight:    1,
		ColumnWidths: columnWidths(colWidth),
	}
	cards := grid.Layout(m.store.Selections(), meas, m.colors)
	for _, card := range cards {
		block := m.renderCard(card, colWidth)
		base = m.overlay.At(base, rowWidth, m.gridRows(), block, int(card.Top), int(card.Left))
	}
	return base
}

func columnWidths(colWidth int) []float64 {
	widths := make([]float64, len(horario.Days))
	for i := range widths {
		widths[i] = float64(colWidth)
	}
	return widths
}

func (m Model) renderCard(card grid.Card, colWidth int) string {
	style := m.styles.Card(card.Color).Width(colWidth).MaxWidth(colWidth)

	height := int(card.Height + 0.5)
	if height < 1 {
		height = 1
	}

	lines := []string{card.Label}
	if height >= 2 {
		lines = append(lines, card.TimeRange)
	}
	if height >= 3 {
		lines = append(lines, ansi.Truncate(card.Title, colWidth, "…"))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = style.Render(line)
	}
	return strings.Join(rendered, "\n")
}

func (m Model) renderSelectionList() string {
	selections := m.store.Selections()
	if len(selections) == 0 {
		return m.styles.Help.Render("No courses selected. Press a to browse the catalog.") + "\n"
	}

	window := m.listHeight()
	start := 0
	if m.selCursor >= window {
		start = m.selCursor - window + 1
	}
	end := start + window
	if end > len(selections) {
		end = len(selections)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		sel := selections[i]
		swatch := lipgloss.NewStyle().Foreground(m.colors.ColorFor(sel.CourseCode)).Render("■ ")
		line := fmt.Sprintf("%s  %s", sel.Label(), sel.Title)
		if sel.Virtual {
			line += m.styles.ListVirtual.Render("  virtual")
		}
		if i == m.selCursor {
			b.WriteString(swatch + m.styles.ListSelected.Render(line))
		} else {
			b.WriteString(swatch + m.styles.ListItem.Render(line))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderFooter() string {
	status := ""
	switch {
	case m.statusWarn:
		status = m.styles.StatusWarn.Render(m.statusMsg)
	case m.statusMsg != "":
		status = m.styles.Status.Render(m.statusMsg)
	case m.loading:
		status = m.styles.Help.Render("Loading catalog...")
	}
	help := m.styles.Help.Render("a add · d remove · c clear · e ics · p table · s save · q quit")
	return status + "\n" + help
}

func (m Model) renderCatalogModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Catalog"))
	b.WriteByte('\n')

	if len(m.courses) == 0 {
		b.WriteString(m.styles.ModalMuted.Render("No courses available"))
	}

	start, end := listWindow(m.catCursor, len(m.courses))
	for i := start; i < end; i++ {
		course := m.courses[i]
		mark := "  "
		if m.store.Has(course.CourseCode) {
			mark = "* "
		}
		line := fmt.Sprintf("%s%-10s %s", mark, course.CourseCode, course.Title)
		line += m.styles.ModalMuted.Render(fmt.Sprintf(" (%d)", len(course.Sections)))
		if i == m.catCursor {
			b.WriteString(m.styles.ModalCursor.Render(line))
		} else {
			b.WriteString(m.styles.ModalItem.Render(line))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.ModalMuted.Render("enter sections · esc close"))
	return m.styles.ModalBox.Render(b.String())
}

func (m Model) renderSectionsModal() string {
	course, ok := m.currentCourse()
	if !ok {
		return m.styles.ModalBox.Render(m.styles.ModalMuted.Render("No course selected"))
	}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render(course.CourseCode + " " + course.Title))
	b.WriteByte('\n')

	start, end := listWindow(m.secCursor, len(course.Sections))
	for i := start; i < end; i++ {
		sec := course.Sections[i]
		line := fmt.Sprintf("%-4s %-20s %s", sec.Section, sec.Instructor, blocksSummary(sec))
		if sec.Virtual {
			line += m.styles.ModalMuted.Render(" virtual")
		}
		if i == m.secCursor {
			b.WriteString(m.styles.ModalCursor.Render(line))
		} else {
			b.WriteString(m.styles.ModalItem.Render(line))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.ModalMuted.Render("enter add · esc back"))
	return m.styles.ModalBox.Render(b.String())
}

func (m Model) renderConfirmModal() string {
	if m.pending == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.ModalWarning.Render("Replace section?"))
	b.WriteByte('\n')
	b.WriteString(m.styles.ModalItem.Render(fmt.Sprintf("%s  ->  %s", m.pending.Current.Label(), m.pending.Candidate.Label())))
	b.WriteByte('\n')
	b.WriteString(m.styles.ModalMuted.Render("y replace · n keep current"))
	return m.styles.ModalBox.Render(b.String())
}

func (m Model) renderSaveModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Save schedule"))
	b.WriteByte('\n')
	b.WriteString(m.saveName.View())
	b.WriteByte('\n')
	b.WriteString(m.styles.ModalMuted.Render(fmt.Sprintf("up to %d characters · enter save · esc cancel", api.MaxScheduleName)))
	return m.styles.ModalBox.Render(b.String())
}

// listWindow clamps a cursor-centered window onto a list.
func listWindow(cursor, length int) (int, int) {
	start := 0
	if cursor >= modalWindow {
		start = cursor - modalWindow + 1
	}
	end := start + modalWindow
	if end > length {
		end = length
	}
	return start, end
}

// blocksSummary formats a section's meeting times on one line.
func blocksSummary(sel horario.Selection) string {
	parts := make([]string, 0, len(sel.Blocks))
	for _, b := range sel.Blocks {
		parts = append(parts, fmt.Sprintf("%s %s-%s", b.Day.Short(), b.Start, b.End))
	}
	return strings.Join(parts, ", ")
}
