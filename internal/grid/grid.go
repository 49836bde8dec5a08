// Package grid computes the weekly schedule layout in two phases: a
// skeleton whose cells the host renders and measures, then an overlay
// of absolutely positioned cards derived from those measurements.
package grid

import (
	"github.com/charmbracelet/lipgloss"

	"mihorario/internal/horario"
	"mihorario/internal/palette"
)

// Display window of the weekly grid. Classes outside it are clipped by
// the host, not by the layout.
const (
	WindowStart = "08:30"
	WindowEnd   = "23:00"
)

// Skeleton is the static frame of the grid: a time-label column plus
// one column per weekday, and one fixed-height row per 30-minute tick
// in the display window. It carries no selection state.
type Skeleton struct {
	Days []horario.Day
	Rows []string
}

// NewSkeleton builds the frame for the display window. Row labels are
// set on the hour and empty on the half hour.
func NewSkeleton() Skeleton {
	return Skeleton{
		Days: horario.Days,
		Rows: horario.TickLabels(WindowStart, WindowEnd),
	}
}

// Measurements are the rendered sizes of a skeleton, reported by the
// host once it has drawn the frame. Units are whatever the host
// renders in (pixels, terminal cells); the layout only ratios them.
type Measurements struct {
	HeaderHeight float64
	TimeColWidth float64
	RowHeight    float64
	// ColumnWidths holds one measured width per skeleton day, in
	// order.
	ColumnWidths []float64
}

// Ready reports whether the measurements are usable. Layout against
// unready measurements is a no-op so recomputation may fire before the
// skeleton has ever been drawn.
func (m Measurements) Ready() bool {
	if m.RowHeight <= 0 || len(m.ColumnWidths) != len(horario.Days) {
		return false
	}
	for _, w := range m.ColumnWidths {
		if w <= 0 {
			return false
		}
	}
	return true
}

// Card is one positioned class block, ready to paint over the
// skeleton.
type Card struct {
	CourseCode string
	Label      string
	Title      string
	TimeRange  string
	Modality   string
	Day        horario.Day
	Color      lipgloss.Color

	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Layout derives the overlay cards for the current selections. It is
// pure: no state is kept between calls, so it can be rerun after every
// mutation. Returns nil when measurements are not ready.
func Layout(selections []horario.Selection, m Measurements, colors *palette.Assigner) []Card {
	if !m.Ready() {
		return nil
	}

	unitPerMinute := m.RowHeight / 30
	windowStart := horario.TimeToMinutes(WindowStart)

	var cards []Card
	for _, sel := range selections {
		color := colors.ColorFor(sel.CourseCode)
		for _, b := range sel.Blocks {
			day := int(b.Day)
			if day < 0 || day >= len(m.ColumnWidths) {
				continue
			}

			left := m.TimeColWidth
			for i := 0; i < day; i++ {
				left += m.ColumnWidths[i]
			}

			startMin := horario.TimeToMinutes(b.Start)
			cards = append(cards, Card{
				CourseCode: sel.CourseCode,
				Label:      sel.Label(),
				Title:      sel.Title,
				TimeRange:  b.Start + " - " + b.End,
				Modality:   sel.Modality(),
				Day:        b.Day,
				Color:      color,
				Top:        float64(startMin-windowStart)*unitPerMinute + m.HeaderHeight,
				Left:       left,
				Width:      m.ColumnWidths[day],
				Height:     float64(b.Minutes()) * unitPerMinute,
			})
		}
	}
	return cards
}
