package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mihorario/internal/horario"
)

func (a *App) catalogCmd() *cobra.Command {
	var filter string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the courses offered at your campus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			courses, err := a.client.Catalog(cmd.Context(), a.filters())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(courses)
			}

			// Room for the code, section count and marker.
			titleWidth := termWidth() - 30

			shown := 0
			for _, c := range courses {
				if filter != "" && !matches(c.CourseCode, c.Title, filter) {
					continue
				}
				marker := ""
				if a.store.Has(c.CourseCode) {
					marker = formatOK(" *")
				}
				fmt.Printf("%s  %s %s%s\n",
					formatCourse(c.CourseCode),
					truncate(c.Title, titleWidth),
					formatMuted(fmt.Sprintf("(%d secciones)", len(c.Sections))),
					marker,
				)
				shown++
			}

			if shown == 0 {
				fmt.Println("No courses found.")
				return nil
			}
			fmt.Printf("\n%s\n", formatMuted("* already in your schedule"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter by course code or title")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}

func (a *App) sectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections [course-code]",
		Short: "List the offered sections of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := a.client.Sections(cmd.Context(), a.filters(), strings.ToUpper(args[0]))
			if err != nil {
				return err
			}

			for _, sel := range sections {
				printSection(sel, a.store.Has(sel.CourseCode))
			}
			return nil
		},
	}
}

func matches(code, title, filter string) bool {
	filter = strings.ToLower(filter)
	return strings.Contains(strings.ToLower(code), filter) ||
		strings.Contains(strings.ToLower(title), filter)
}

// fetchSection finds one section of a course in the catalog, by
// section id or by section label.
func (a *App) fetchSection(ctx context.Context, courseCode, section string) (horario.Selection, bool, error) {
	sections, err := a.client.Sections(ctx, a.filters(), courseCode)
	if err != nil {
		return horario.Selection{}, false, err
	}
	for _, s := range sections {
		if s.SectionID == section || strings.EqualFold(s.Section, section) {
			return s, true, nil
		}
	}
	return horario.Selection{}, false, nil
}
