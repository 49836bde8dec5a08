package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mihorario/internal/api"
)

func (a *App) generateCmd() *cobra.Command {
	var (
		apply        int
		gaps         bool
		timePref     string
		virtualsPref string
	)

	cmd := &cobra.Command{
		Use:   "generate [course-codes...]",
		Short: "Generate conflict-free schedule candidates",
		Long: `Ask the service for up to ten conflict-free combinations of the given
courses, scored 0-100. Without arguments the courses currently in your
schedule are used.

Example:
  mihorario generate MAT101 FIS101 QUI101 --time entrar_temprano --apply 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			courseCodes := make([]string, 0, len(args))
			for _, arg := range args {
				courseCodes = append(courseCodes, strings.ToUpper(arg))
			}
			if len(courseCodes) == 0 {
				for _, sel := range a.store.Selections() {
					courseCodes = append(courseCodes, sel.CourseCode)
				}
			}

			prefs := api.Preferences{
				MinimizeGaps:   gaps,
				TimePreference: timePref,
				PreferVirtual:  virtualsPref,
			}
			schedules, err := a.client.Generate(cmd.Context(), a.filters(), courseCodes, prefs)
			if err != nil {
				return err
			}
			if len(schedules) == 0 {
				fmt.Println("No valid combinations found.")
				return nil
			}

			for i, s := range schedules {
				fmt.Printf("%s %s\n",
					formatHeader(fmt.Sprintf("#%d", i+1)),
					scoreLine(s),
				)
				for _, sel := range s.Selections {
					fmt.Printf("   %s\n", summaryLine(sel))
				}
				fmt.Println()
			}

			if apply > 0 {
				if apply > len(schedules) {
					return fmt.Errorf("only %d candidates were generated", len(schedules))
				}
				chosen := schedules[apply-1]
				conflict, err := a.store.ReplaceAll(chosen.Selections)
				if err != nil {
					return err
				}
				if conflict != nil {
					return fmt.Errorf("generated schedule conflicts with itself: %s", conflict)
				}
				fmt.Printf("%s candidate #%d (%d courses)\n", formatOK("Applied"), apply, len(chosen.Selections))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&apply, "apply", 0, "Replace your schedule with candidate N")
	cmd.Flags().BoolVar(&gaps, "minimize-gaps", true, "Prefer schedules with fewer gaps between classes")
	cmd.Flags().StringVar(&timePref, "time", "", "entrar_temprano, entrar_tarde, salir_temprano or salir_tarde")
	cmd.Flags().StringVar(&virtualsPref, "virtuals", "", "si to prefer virtual sections, no to avoid them")
	return cmd
}

func scoreLine(s api.GeneratedSchedule) string {
	score := fmt.Sprintf("%.1f/100", s.Score)
	switch {
	case s.Score >= 80:
		score = formatOK(score)
	case s.Score < 60:
		score = formatConflict(score)
	}
	return fmt.Sprintf("%s  %s", score, formatMuted(fmt.Sprintf(
		"%d días, %d min de huecos, %d virtuales",
		s.Metrics.DaysUsed, s.Metrics.TotalGapsMin, s.Metrics.VirtualCount,
	)))
}
