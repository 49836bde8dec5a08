package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"mihorario/internal/horario"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Matemática", 20, "Matemática"},
		{"Matemática Aplicada", 10, "Matemátic…"},
		{"Física", 6, "Física"},
		{"Física", 3, "Fí…"},
		{"Física", 1, "Física"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestSummaryLine(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	block, err := horario.NewTimeBlock(horario.Viernes, "16:01", "17:20")
	if err != nil {
		t.Fatalf("NewTimeBlock: %v", err)
	}
	sel := horario.Selection{
		CourseCode: "QUI101",
		Section:    "003",
		Title:      "Química General",
		Blocks:     []horario.TimeBlock{block},
	}

	got := summaryLine(sel)
	for _, want := range []string{"QUI101 003", "Química General", "Vi 16:01-17:20"} {
		if !strings.Contains(got, want) {
			t.Errorf("summaryLine = %q, missing %q", got, want)
		}
	}
}
