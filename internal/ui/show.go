package ui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mihorario/internal/export"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool
	var list bool
	var table bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your current schedule",
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			selections := a.store.Selections()
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(selections)
			}
			if len(selections) == 0 {
				fmt.Println("No courses selected. Try 'mihorario catalog'.")
				return nil
			}

			if table {
				opts := export.TableOptions{
					Site:    a.config.Catalog.Site,
					Program: a.config.Catalog.Program,
				}
				return export.WriteTable(os.Stdout, selections, opts)
			}
			if list {
				for _, sel := range selections {
					fmt.Println(summaryLine(sel))
				}
				return nil
			}

			PrintWeek(selections)
			fmt.Printf("\n%s\n", formatMuted(fmt.Sprintf("%d courses selected", len(selections))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "One line per course instead of the week view")
	cmd.Flags().BoolVar(&table, "table", false, "Print the module table instead of the week view")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the selections as JSON")
	return cmd
}
