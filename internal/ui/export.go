package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"mihorario/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your schedule",
	}
	cmd.AddCommand(a.exportICSCmd())
	cmd.AddCommand(a.exportTableCmd())
	return cmd
}

func (a *App) exportICSCmd() *cobra.Command {
	var output string
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export as an iCalendar file with weekly recurring events",
		RunE: func(_ *cobra.Command, _ []string) error {
			var buf strings.Builder
			if err := export.WriteICS(&buf, a.store.Selections(), time.Now()); err != nil {
				return err
			}

			if toClipboard {
				if err := clipboard.WriteAll(buf.String()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Printf("%s calendar to clipboard\n", formatOK("Copied"))
				return nil
			}

			if output == "-" {
				fmt.Print(buf.String())
				return nil
			}
			if err := os.WriteFile(output, []byte(buf.String()), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("%s %s\n", formatOK("Wrote"), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "horario.ics", "Output file, or - for stdout")
	cmd.Flags().BoolVarP(&toClipboard, "copy", "c", false, "Copy to the clipboard instead of writing a file")
	return cmd
}

func (a *App) exportTableCmd() *cobra.Command {
	var output string
	var perPage int

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Export as a printable module table",
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := export.TableOptions{
				Site:           a.config.Catalog.Site,
				Program:        a.config.Catalog.Program,
				ModulesPerPage: perPage,
			}

			if output == "-" {
				return export.WriteTable(os.Stdout, a.store.Selections(), opts)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer func() { _ = f.Close() }()

			if err := export.WriteTable(f, a.store.Selections(), opts); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatOK("Wrote"), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "horario.txt", "Output file, or - for stdout")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Module rows per page (0 for a single page)")
	return cmd
}
