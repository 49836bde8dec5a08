package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) savedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage schedules saved on the service",
	}
	cmd.AddCommand(a.savedSaveCmd())
	cmd.AddCommand(a.savedListCmd())
	cmd.AddCommand(a.savedLoadCmd())
	cmd.AddCommand(a.savedDeleteCmd())
	return cmd
}

func (a *App) savedSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [name]",
		Short: "Save your current schedule under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selections := a.store.Selections()
			if len(selections) == 0 {
				return fmt.Errorf("nothing to save, your schedule is empty")
			}

			sectionIDs := make([]string, 0, len(selections))
			for _, sel := range selections {
				sectionIDs = append(sectionIDs, sel.SectionID)
			}
			if err := a.client.SaveSchedule(cmd.Context(), args[0], sectionIDs); err != nil {
				return err
			}
			fmt.Printf("%s %q (%d courses)\n", formatOK("Saved"), args[0], len(selections))
			return nil
		},
	}
}

func (a *App) savedListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your saved schedules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			schedules, err := a.client.ListSchedules(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(schedules)
			}
			if len(schedules) == 0 {
				fmt.Println("No saved schedules.")
				return nil
			}

			for _, s := range schedules {
				fmt.Printf("%s %s %s\n",
					formatMuted(fmt.Sprintf("#%d", s.ID)),
					formatHeader(s.Name),
					formatMuted(fmt.Sprintf("(%d courses, %s)",
						len(s.Selections), s.ModifiedAt.Format("2006-01-02"))),
				)
				for _, sel := range s.Selections {
					fmt.Printf("   %s\n", summaryLine(sel))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the schedules as JSON")
	return cmd
}

func (a *App) savedLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [name]",
		Short: "Replace your schedule with a saved one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.LoadSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			conflict, err := a.store.ReplaceAll(s.Selections)
			if err != nil {
				return err
			}
			if conflict != nil {
				return fmt.Errorf("saved schedule conflicts with itself: %s", conflict)
			}
			fmt.Printf("%s %q (%d courses)\n", formatOK("Loaded"), s.Name, len(s.Selections))
			return nil
		},
	}
}

func (a *App) savedDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a saved schedule by its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q, use 'mihorario saved list'", args[0])
			}
			if err := a.client.DeleteSchedule(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("%s schedule #%d\n", formatOK("Deleted"), id)
			return nil
		},
	}
}
