package export

import (
	"fmt"
	"io"
	"strings"

	"mihorario/internal/horario"
)

// TableOptions controls the printable module table.
type TableOptions struct {
	// Site and Program are printed in the document header when set.
	Site    string
	Program string

	// ModulesPerPage caps how many module rows fit under one header
	// before a page break re-emits it. Zero means everything on one
	// page.
	ModulesPerPage int

	// CellWidth is the printable width of a day cell in characters.
	CellWidth int
}

const (
	defaultCellWidth = 16
	timeColWidth     = 13
)

// WriteTable renders the fixed module table: one row per institutional
// module, one column per weekday, a cell filled with the course label
// when a selected block fully covers the module. Partial overlaps stay
// blank. Pages are separated by a form feed and each page repeats the
// full header.
func WriteTable(w io.Writer, selections []horario.Selection, opts TableOptions) error {
	if len(selections) == 0 {
		return ErrNothingSelected
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = defaultCellWidth
	}
	perPage := opts.ModulesPerPage
	if perPage <= 0 {
		perPage = len(horario.Modules)
	}

	var b strings.Builder
	for i, mod := range horario.Modules {
		if i%perPage == 0 {
			if i > 0 {
				b.WriteString("\f")
			}
			writeTableHeader(&b, opts)
		}
		writeModuleRow(&b, mod, selections, opts.CellWidth)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

func writeTableHeader(b *strings.Builder, opts TableOptions) {
	b.WriteString("Duoc UC\n")
	if opts.Site != "" {
		fmt.Fprintf(b, "SEDE: %s\n", strings.ToUpper(opts.Site))
	}
	if opts.Program != "" {
		fmt.Fprintf(b, "CARRERA: %s\n", opts.Program)
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "%-*s", timeColWidth, "Horario")
	for _, day := range horario.Days {
		fmt.Fprintf(b, "| %-*s", opts.CellWidth, day)
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", timeColWidth+len(horario.Days)*(opts.CellWidth+3)))
	b.WriteString("\n")
}

func writeModuleRow(b *strings.Builder, mod horario.Module, selections []horario.Selection, cellWidth int) {
	fmt.Fprintf(b, "%s - %s", mod.Start, mod.End)
	for _, day := range horario.Days {
		label := moduleCell(mod, day, selections)
		fmt.Fprintf(b, "| %-*s", cellWidth, fitCell(label, cellWidth))
	}
	b.WriteString("\n")
}

// moduleCell finds the selection whose block fully contains the module
// on the given day. First match in insertion order wins; selections
// cannot overlap, so at most one can cover a module anyway.
func moduleCell(mod horario.Module, day horario.Day, selections []horario.Selection) string {
	for _, sel := range selections {
		for _, blk := range sel.Blocks {
			if blk.Day == day && mod.Covers(blk) {
				return sel.Label()
			}
		}
	}
	return ""
}

// fitCell truncates a label that would overflow its fixed cell.
func fitCell(label string, width int) string {
	runes := []rune(label)
	if len(runes) <= width {
		return label
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
