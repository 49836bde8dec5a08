package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) addCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add [course-code] [section]",
		Short: "Add a section to your schedule",
		Long: `Add a section of a course to your schedule.

The section may be given by its label or its catalog id. Adding a
course that is already selected replaces its section.

Example:
  mihorario add MAT101 001V`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseCode := strings.ToUpper(args[0])

			sel, found, err := a.fetchSection(cmd.Context(), courseCode, args[1])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("section %s of %s not found, try 'mihorario sections %s'",
					args[1], courseCode, courseCode)
			}

			replacing := a.store.Has(courseCode)
			conflict, err := a.store.Add(sel)
			if conflict != nil {
				if !force {
					return fmt.Errorf("conflicts with %s, remove it first or pick another section",
						formatConflict(conflict.String()))
				}
				if removeErr := a.store.Remove(conflict.CourseCode); removeErr != nil {
					return removeErr
				}
				if conflict, err = a.store.Add(sel); conflict != nil {
					return fmt.Errorf("still conflicts with %s", formatConflict(conflict.String()))
				}
			}
			if err != nil {
				return err
			}

			verb := "Added"
			if replacing {
				verb = "Replaced section of"
			}
			fmt.Printf("%s %s\n", formatOK(verb), summaryLine(sel))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Drop the conflicting course instead of failing")
	return cmd
}

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [course-code]",
		Short: "Remove a course from your schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			courseCode := strings.ToUpper(args[0])
			if !a.store.Has(courseCode) {
				return fmt.Errorf("%s is not in your schedule, try 'mihorario show'", courseCode)
			}
			if err := a.store.Remove(courseCode); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatOK("Removed"), courseCode)
			return nil
		},
	}
}

func (a *App) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every course from your schedule",
		RunE: func(_ *cobra.Command, _ []string) error {
			n := a.store.Len()
			if err := a.store.Clear(); err != nil {
				return err
			}
			fmt.Printf("%s %d courses\n", formatOK("Removed"), n)
			return nil
		},
	}
}
