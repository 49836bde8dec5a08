// Package palette assigns stable display colors to courses.
package palette

import "github.com/charmbracelet/lipgloss"

// Colors is the rotation of card backgrounds, one per newly seen
// course, cycling when exhausted.
var Colors = []lipgloss.Color{
	"#ef4444", // red
	"#f59e0b", // amber
	"#22c55e", // green
	"#10b981", // emerald
	"#14b8a6", // teal
	"#06b6d4", // cyan
	"#3b82f6", // blue
	"#6366f1", // indigo
	"#8b5cf6", // violet
	"#ec4899", // pink
}

// Assigner hands out colors by course code. The first request for a
// code claims the next color in the rotation; later requests for the
// same code return the same color for the assigner's lifetime, even
// after the course is deselected.
type Assigner struct {
	assigned map[string]lipgloss.Color
	cursor   int
}

// NewAssigner returns an empty Assigner.
func NewAssigner() *Assigner {
	return &Assigner{assigned: make(map[string]lipgloss.Color)}
}

// ColorFor returns the color for a course code, claiming one from the
// rotation on first sight.
func (a *Assigner) ColorFor(courseCode string) lipgloss.Color {
	if c, ok := a.assigned[courseCode]; ok {
		return c
	}
	c := Colors[a.cursor%len(Colors)]
	a.assigned[courseCode] = c
	a.cursor++
	return c
}

// Len reports how many courses have claimed a color.
func (a *Assigner) Len() int {
	return len(a.assigned)
}
