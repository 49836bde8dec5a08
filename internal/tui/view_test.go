package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestViewRendersScheduleAndCards(t *testing.T) {
	m := testModel(t)
	if _, err := m.store.Add(mat101Section(t, "10", "001")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	out := ansi.Strip(m.View())

	for _, want := range []string{"MiHorario", "Lunes", "Sábado", "MAT101 001", "08:31 - 09:50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
	if !strings.Contains(out, "09:00") {
		t.Fatalf("view missing hour labels")
	}
}

func TestViewEmptyStoreShowsHint(t *testing.T) {
	m := testModel(t)
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "No courses selected") {
		t.Fatalf("view missing empty hint")
	}
}

func TestViewModals(t *testing.T) {
	m := testModel(t)
	m.courses = catalogFixture(t)

	m.mode = ModeCatalog
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Catalog") || !strings.Contains(out, "MAT101") {
		t.Fatalf("catalog modal missing content")
	}

	m.mode = ModeSections
	out = ansi.Strip(m.View())
	if !strings.Contains(out, "Matemática Aplicada") || !strings.Contains(out, "Lu 08:31-09:50") {
		t.Fatalf("sections modal missing content")
	}

	m.mode = ModeConfirm
	m.pending = &PendingReplacement{
		Current:   mat101Section(t, "10", "001"),
		Candidate: mat101Section(t, "11", "002"),
	}
	out = ansi.Strip(m.View())
	if !strings.Contains(out, "Replace section?") {
		t.Fatalf("confirm modal missing prompt")
	}

	m.mode = ModeSave
	out = ansi.Strip(m.View())
	if !strings.Contains(out, "Save schedule") {
		t.Fatalf("save modal missing prompt")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := testModel(t)
	m.width = 20
	if got := m.View(); got != "Terminal too small" {
		t.Fatalf("View() = %q", got)
	}
}

func TestListWindow(t *testing.T) {
	tests := []struct {
		cursor, length     int
		wantStart, wantEnd int
	}{
		{0, 5, 0, 5},
		{4, 5, 0, 5},
		{0, 30, 0, 12},
		{15, 30, 4, 16},
		{29, 30, 18, 30},
	}
	for _, tt := range tests {
		start, end := listWindow(tt.cursor, tt.length)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Fatalf("listWindow(%d, %d) = %d..%d, want %d..%d",
				tt.cursor, tt.length, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}
