// Package tui provides the interactive schedule builder.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mihorario/internal/api"
	"mihorario/internal/config"
	"mihorario/internal/grid"
	"mihorario/internal/horario"
	"mihorario/internal/palette"
	"mihorario/internal/store"
	"mihorario/internal/tui/commands"
	"mihorario/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeSchedule Mode = iota
	ModeCatalog       // Picking a course from the catalog
	ModeSections      // Picking a section of the chosen course
	ModeConfirm       // Section replacement awaiting confirmation
	ModeSave          // Naming the schedule before saving it
)

// PendingReplacement holds a section swap that needs confirmation
// before it overwrites the current pick for the course.
type PendingReplacement struct {
	Current   horario.Selection
	Candidate horario.Selection
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  *store.Store
	client *api.Client
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	colors *palette.Assigner

	// State
	mode        Mode
	loading     bool // True while the catalog is being fetched
	wantCatalog bool // Open the catalog as soon as the fetch lands

	// Catalog browsing
	courses   []api.Course
	catCursor int
	secCursor int

	// Highlighted course in the schedule list
	selCursor int

	// Pending section replacement (nil outside ModeConfirm)
	pending *PendingReplacement

	// Components
	saveName textinput.Model
	overlay  OverlayModel
	skeleton grid.Skeleton

	// Terminal dimensions
	width        int
	height       int
	scrollOffset int // First visible grid row

	// Messages
	statusMsg  string
	statusWarn bool
}

// New creates a new TUI model.
func New(st *store.Store, client *api.Client, cfg *config.Config) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(theme.NewPalette(t))

	name := textinput.New()
	name.Placeholder = "Schedule name"
	name.CharLimit = api.MaxScheduleName
	name.Width = 30
	name.PromptStyle = styles.ModalInput
	name.TextStyle = styles.ModalInput
	name.PlaceholderStyle = styles.ModalPlaceholder

	return Model{
		store:    st,
		client:   client,
		config:   cfg,
		theme:    t,
		styles:   styles,
		colors:   palette.NewAssigner(),
		mode:     ModeSchedule,
		saveName: name,
		overlay:  NewOverlayModel(styles.palette.BgHighlight),
		skeleton: grid.NewSkeleton(),
		loading:  true,
	}
}

// Init starts the catalog fetch.
func (m Model) Init() tea.Cmd {
	return commands.LoadCatalog(m.client, m.filters())
}

func (m Model) filters() api.Filters {
	return api.Filters{
		Site:    m.config.Catalog.Site,
		Program: m.config.Catalog.Program,
		Level:   m.config.Catalog.Level,
		Shift:   m.config.Catalog.Shift,
	}
}

// currentCourse returns the course under the catalog cursor.
func (m Model) currentCourse() (api.Course, bool) {
	if m.catCursor < 0 || m.catCursor >= len(m.courses) {
		return api.Course{}, false
	}
	return m.courses[m.catCursor], true
}

// currentSection returns the section under the sections cursor.
func (m Model) currentSection() (horario.Selection, bool) {
	course, ok := m.currentCourse()
	if !ok || m.secCursor < 0 || m.secCursor >= len(course.Sections) {
		return horario.Selection{}, false
	}
	return course.Sections[m.secCursor], true
}

// Run starts the interactive schedule builder.
func Run(st *store.Store, client *api.Client, cfg *config.Config) error {
	p := tea.NewProgram(New(st, client, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
