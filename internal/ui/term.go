package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Course labels: bold cyan
	colorCourse = color.New(color.FgCyan, color.Bold)

	// Virtual sections: magenta marker
	colorVirtual = color.New(color.FgMagenta)

	// Success messages: green
	colorOK = color.New(color.FgGreen)

	// Conflicts and errors: red
	colorConflict = color.New(color.FgRed, color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatCourse(s string) string {
	return colorCourse.Sprint(s)
}

func formatVirtual(s string) string {
	return colorVirtual.Sprint(s)
}

func formatOK(s string) string {
	return colorOK.Sprint(s)
}

func formatConflict(s string) string {
	return colorConflict.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
