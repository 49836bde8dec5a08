// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // Base background
	BgHighlight string // Grid cells, subtle highlight
	BgSelection string // Cursor, selection
	Fg          string // Primary foreground
	FgMuted     string // Time labels, muted elements
	Accent      string // Title, borders
	Warning     string // Conflicts, confirm prompts
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Catppuccin variants plus a plain light theme.
var builtin = map[string]Theme{
	"mocha": {
		Name: "mocha",
		Bg:   "#1e1e2e", BgHighlight: "#313244", BgSelection: "#45475a",
		Fg: "#cdd6f4", FgMuted: "#6c7086",
		Accent: "#89b4fa", Warning: "#f38ba8",
	},
	"macchiato": {
		Name: "macchiato",
		Bg:   "#24273a", BgHighlight: "#363a4f", BgSelection: "#494d64",
		Fg: "#cad3f5", FgMuted: "#6e738d",
		Accent: "#8aadf4", Warning: "#ed8796",
	},
	"frappe": {
		Name: "frappe",
		Bg:   "#303446", BgHighlight: "#414559", BgSelection: "#51576d",
		Fg: "#c6d0f5", FgMuted: "#737994",
		Accent: "#8caaee", Warning: "#e78284",
	},
	"latte": {
		Name: "latte",
		Bg:   "#eff1f5", BgHighlight: "#ccd0da", BgSelection: "#bcc0cc",
		Fg: "#4c4f69", FgMuted: "#8c8fa1",
		Accent: "#1e66f5", Warning: "#d20f39",
	},
}

// Load resolves a theme by name. Falls back to mocha when the name is
// unknown.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	t, ok := builtin[strings.ToLower(name)]
	if !ok {
		if fallback, ok := builtin["mocha"]; ok {
			return &fallback, nil
		}
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return &t, nil
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	_, ok := builtin[strings.ToLower(name)]
	return ok
}
