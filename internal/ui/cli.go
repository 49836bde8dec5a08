// Package ui implements the command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"mihorario/internal/api"
	"mihorario/internal/config"
	"mihorario/internal/store"
	"mihorario/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  *store.Store
	client *api.Client
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application over the given store, service
// client and config.
func NewApp(st *store.Store, client *api.Client, cfg *config.Config) *App {
	a := &App{store: st, client: client, config: cfg}

	a.root = &cobra.Command{
		Use:   "mihorario",
		Short: "Build your weekly class schedule",
		Long: `Mihorario builds a weekly class schedule from your campus course
offer: pick sections, see conflicts immediately, and export the result
as a calendar or a printable module table.

Run without arguments to open the interactive schedule view.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.store, a.client, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.catalogCmd())
	a.root.AddCommand(a.sectionsCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.generateCmd())
	a.root.AddCommand(a.savedCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("mihorario %s (commit: %s)\n", Version, Commit)
		},
	}
}

// filters builds the catalog filters from the configuration.
func (a *App) filters() api.Filters {
	return api.Filters{
		Site:    a.config.Catalog.Site,
		Program: a.config.Catalog.Program,
		Level:   a.config.Catalog.Level,
		Shift:   a.config.Catalog.Shift,
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
