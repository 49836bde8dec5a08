package ui

import (
	"fmt"
	"sort"
	"strings"

	"mihorario/internal/horario"
)

// printSection writes one catalog section with its meetings.
func printSection(sel horario.Selection, selected bool) {
	marker := ""
	if selected {
		marker = formatOK(" *")
	}
	virtual := ""
	if sel.Virtual {
		virtual = " " + formatVirtual("[virtual]")
	}
	fmt.Printf("%s %s%s%s\n", formatCourse(sel.CourseCode), sel.Section, virtual, marker)
	if sel.Instructor != "" {
		fmt.Printf("    %s\n", formatMuted(sel.Instructor))
	}
	for _, b := range sel.Blocks {
		fmt.Printf("    %s\n", b)
	}
}

// PrintWeek writes the selections grouped by day, earliest block
// first, the way the schedule reads on paper.
func PrintWeek(selections []horario.Selection) {
	type entry struct {
		block horario.TimeBlock
		sel   horario.Selection
	}

	byDay := make(map[horario.Day][]entry)
	for _, sel := range selections {
		for _, b := range sel.Blocks {
			byDay[b.Day] = append(byDay[b.Day], entry{block: b, sel: sel})
		}
	}

	for _, day := range horario.Days {
		entries := byDay[day]
		if len(entries) == 0 {
			continue
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].block.Start < entries[j].block.Start
		})

		fmt.Printf("%s\n", formatHeader(day.String()))
		for _, e := range entries {
			virtual := ""
			if e.sel.Virtual {
				virtual = " " + formatVirtual("[virtual]")
			}
			fmt.Printf("  %s-%s  %s %s%s\n",
				e.block.Start, e.block.End,
				formatCourse(e.sel.Label()),
				e.sel.Title,
				virtual,
			)
		}
	}
}

// truncate shortens s to max runes, ellipsized.
func truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// summaryLine condenses a selection to one line for listings.
func summaryLine(sel horario.Selection) string {
	var days []string
	for _, b := range sel.Blocks {
		days = append(days, fmt.Sprintf("%s %s-%s", b.Day.Short(), b.Start, b.End))
	}
	return fmt.Sprintf("%s %s  %s  %s",
		formatCourse(sel.CourseCode), sel.Section, sel.Title,
		formatMuted(strings.Join(days, ", ")))
}
