// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mihorario/internal/api"
	"mihorario/internal/export"
	"mihorario/internal/horario"
)

// CatalogLoadedMsg is sent when the course catalog is loaded.
type CatalogLoadedMsg struct {
	Courses []api.Course
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ExportedMsg is sent when an export finishes.
type ExportedMsg struct {
	Path string
}

// ScheduleSavedMsg is sent when the schedule was stored on the
// service.
type ScheduleSavedMsg struct {
	Name string
}

// LoadCatalog fetches the course catalog in the background.
func LoadCatalog(client *api.Client, filters api.Filters) tea.Cmd {
	return func() tea.Msg {
		courses, err := client.Catalog(context.Background(), filters)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CatalogLoadedMsg{Courses: courses}
	}
}

// ExportICS writes the calendar file next to the working directory.
func ExportICS(selections []horario.Selection, path string) tea.Cmd {
	return func() tea.Msg {
		var buf strings.Builder
		if err := export.WriteICS(&buf, selections, time.Now()); err != nil {
			return ErrMsg{Err: err}
		}
		if err := writeFile(path, buf.String()); err != nil {
			return ErrMsg{Err: err}
		}
		return ExportedMsg{Path: path}
	}
}

// ExportTable writes the printable module table.
func ExportTable(selections []horario.Selection, path string, opts export.TableOptions) tea.Cmd {
	return func() tea.Msg {
		var buf strings.Builder
		if err := export.WriteTable(&buf, selections, opts); err != nil {
			return ErrMsg{Err: err}
		}
		if err := writeFile(path, buf.String()); err != nil {
			return ErrMsg{Err: err}
		}
		return ExportedMsg{Path: path}
	}
}

// SaveSchedule stores the current schedule on the service.
func SaveSchedule(client *api.Client, name string, selections []horario.Selection) tea.Cmd {
	return func() tea.Msg {
		sectionIDs := make([]string, 0, len(selections))
		for _, sel := range selections {
			sectionIDs = append(sectionIDs, sel.SectionID)
		}
		if err := client.SaveSchedule(context.Background(), name, sectionIDs); err != nil {
			return ErrMsg{Err: err}
		}
		return ScheduleSavedMsg{Name: name}
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// ClearStatusAfter clears the status line after a delay.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
