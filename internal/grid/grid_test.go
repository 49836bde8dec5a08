package grid

import (
	"testing"

	"mihorario/internal/horario"
	"mihorario/internal/palette"
)

func webMeasurements() Measurements {
	return Measurements{
		HeaderHeight: 40,
		TimeColWidth: 60,
		RowHeight:    50,
		ColumnWidths: []float64{100, 100, 100, 100, 100, 100},
	}
}

func TestNewSkeleton(t *testing.T) {
	s := NewSkeleton()

	if len(s.Days) != 6 {
		t.Fatalf("len(Days) = %d, want 6", len(s.Days))
	}
	if s.Days[0] != horario.Lunes || s.Days[5] != horario.Sabado {
		t.Errorf("day order = %v", s.Days)
	}

	// 08:30 to 23:00 is 14.5 hours of 30-minute rows.
	if len(s.Rows) != 29 {
		t.Fatalf("len(Rows) = %d, want 29", len(s.Rows))
	}
	if s.Rows[0] != "" {
		t.Errorf("Rows[0] = %q, want empty half-hour label", s.Rows[0])
	}
	if s.Rows[1] != "09:00" {
		t.Errorf("Rows[1] = %q, want 09:00", s.Rows[1])
	}
	if s.Rows[2] != "" {
		t.Errorf("Rows[2] = %q, want empty", s.Rows[2])
	}
}

func TestLayoutGeometry(t *testing.T) {
	selections := []horario.Selection{
		{
			CourseCode: "MAT101",
			Section:    "001V",
			Title:      "Matemática Aplicada",
			Blocks: []horario.TimeBlock{
				{Day: horario.Miercoles, Start: "10:00", End: "11:30"},
			},
		},
	}

	cards := Layout(selections, webMeasurements(), palette.NewAssigner())
	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, want 1", len(cards))
	}
	c := cards[0]

	// 50px rows over 30-minute ticks: 90 minutes past 08:30, at
	// 50/30 px per minute, plus the 40px header.
	if want := 90*50.0/30 + 40; c.Top != want {
		t.Errorf("Top = %v, want %v", c.Top, want)
	}
	// Time column plus two day columns (Lunes, Martes).
	if want := 60 + 200.0; c.Left != want {
		t.Errorf("Left = %v, want %v", c.Left, want)
	}
	if want := 90 * 50.0 / 30; c.Height != want {
		t.Errorf("Height = %v, want %v", c.Height, want)
	}
	if c.Width != 100 {
		t.Errorf("Width = %v, want 100", c.Width)
	}
	if c.Label != "MAT101 001V" {
		t.Errorf("Label = %q", c.Label)
	}
	if c.TimeRange != "10:00 - 11:30" {
		t.Errorf("TimeRange = %q", c.TimeRange)
	}
}

func TestLayoutUnevenColumns(t *testing.T) {
	m := webMeasurements()
	m.ColumnWidths = []float64{80, 120, 90, 100, 100, 100}

	selections := []horario.Selection{
		{
			CourseCode: "FIS101",
			Blocks: []horario.TimeBlock{
				{Day: horario.Jueves, Start: "08:30", End: "09:30"},
			},
		},
	}

	cards := Layout(selections, m, palette.NewAssigner())
	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, want 1", len(cards))
	}
	// Left accumulates the measured widths of the first three days.
	if want := 60 + 80 + 120 + 90.0; cards[0].Left != want {
		t.Errorf("Left = %v, want %v", cards[0].Left, want)
	}
	if cards[0].Width != 100 {
		t.Errorf("Width = %v, want 100", cards[0].Width)
	}
}

func TestLayoutBeforeMeasurement(t *testing.T) {
	selections := []horario.Selection{
		{
			CourseCode: "MAT101",
			Blocks: []horario.TimeBlock{
				{Day: horario.Lunes, Start: "10:00", End: "11:00"},
			},
		},
	}

	tests := []struct {
		name string
		m    Measurements
	}{
		{name: "zero value", m: Measurements{}},
		{name: "no row height", m: Measurements{ColumnWidths: []float64{1, 1, 1, 1, 1, 1}}},
		{name: "missing columns", m: Measurements{RowHeight: 50, ColumnWidths: []float64{100}}},
		{name: "zero width column", m: Measurements{RowHeight: 50, ColumnWidths: []float64{100, 0, 100, 100, 100, 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cards := Layout(selections, tt.m, palette.NewAssigner()); cards != nil {
				t.Errorf("Layout = %v, want nil before measurement", cards)
			}
		})
	}
}

func TestLayoutDerivedFromStore(t *testing.T) {
	colors := palette.NewAssigner()
	m := webMeasurements()

	selections := []horario.Selection{
		{
			CourseCode: "MAT101",
			Blocks: []horario.TimeBlock{
				{Day: horario.Lunes, Start: "09:00", End: "10:00"},
				{Day: horario.Viernes, Start: "09:00", End: "10:00"},
			},
		},
	}

	first := Layout(selections, m, colors)
	second := Layout(selections, m, colors)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("card counts = %d, %d, want 2, 2", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("card %d differs across reruns: %+v vs %+v", i, first[i], second[i])
		}
	}
	// Both blocks of a course share its color.
	if first[0].Color != first[1].Color {
		t.Errorf("blocks of one course got colors %s and %s", first[0].Color, first[1].Color)
	}
}
