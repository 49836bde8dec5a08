package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mihorario/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("Config file: %s\n\n", path)
			} else {
				fmt.Printf("Config file: %s %s\n\n", path, formatMuted("(not found, using defaults)"))
			}

			fmt.Printf("%s\n", formatHeader("[catalog]"))
			fmt.Printf("  base_url = %s\n", a.config.Catalog.BaseURL)
			fmt.Printf("  site     = %s\n", orUnset(a.config.Catalog.Site))
			fmt.Printf("  program  = %s\n", orUnset(a.config.Catalog.Program))
			fmt.Printf("  level    = %s\n", orUnset(a.config.Catalog.Level))
			fmt.Printf("  shift    = %s\n", orUnset(a.config.Catalog.Shift))
			fmt.Printf("\n%s\n", formatHeader("[storage]"))
			fmt.Printf("  db_path  = %s\n", a.config.Storage.DBPath)
			fmt.Printf("\n%s\n", formatHeader("[ui]"))
			fmt.Printf("  theme    = %s\n", a.config.UI.Theme)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}
			if err := config.Default().SaveTo(path); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatOK("Wrote"), path)
			return nil
		},
	})

	return cmd
}

func orUnset(s string) string {
	if s == "" {
		return formatMuted("(unset)")
	}
	return s
}
