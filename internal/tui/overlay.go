package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayModel composites an opaque box over already rendered content.
// The base keeps its styling outside the box, so the schedule stays
// visible around modals and class blocks.
type OverlayModel struct {
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel(bg lipgloss.Color) OverlayModel {
	return OverlayModel{bgColor: bg}
}

// Center draws the rendered block in the middle of the base content.
func (o OverlayModel) Center(base string, width, height int, block string) string {
	if width <= 0 || height <= 0 || block == "" {
		return base
	}

	blockLines := strings.Split(block, "\n")
	blockW := 0
	for _, line := range blockLines {
		if w := ansi.StringWidth(line); w > blockW {
			blockW = w
		}
	}
	blockH := len(blockLines)
	if blockW > width {
		blockW = width
	}
	if blockH > height {
		blockLines = blockLines[:height]
		blockH = height
	}

	top := (height - blockH) / 2
	left := (width - blockW) / 2
	return o.paint(base, width, height, blockLines, top, left, blockW)
}

// At draws the rendered block at the given row and column.
func (o OverlayModel) At(base string, width, height int, block string, top, left int) string {
	if width <= 0 || height <= 0 || block == "" {
		return base
	}
	blockLines := strings.Split(block, "\n")
	blockW := 0
	for _, line := range blockLines {
		if w := ansi.StringWidth(line); w > blockW {
			blockW = w
		}
	}
	return o.paint(base, width, height, blockLines, top, left, blockW)
}

func (o OverlayModel) paint(base string, width, height int, blockLines []string, top, left, blockW int) string {
	baseLines := normalizeLines(base, width, height)

	fill := lipgloss.NewStyle().Background(o.bgColor)
	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+len(blockLines) {
			lines = append(lines, baseLines[row])
			continue
		}

		blockLine := blockLines[row-top]
		if pad := blockW - ansi.StringWidth(blockLine); pad > 0 {
			blockLine += fill.Render(strings.Repeat(" ", pad))
		}
		blockLine = ansi.Truncate(blockLine, blockW, "")

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+blockW, width)
		lines = append(lines, leftSlice+blockLine+rightSlice)
	}

	return strings.Join(lines, "\n")
}

// normalizeLines pads the base to exactly width x height so slicing by
// column stays in bounds.
func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}
