package horario

import (
	"errors"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Day
		wantErr bool
	}{
		{name: "full name", input: "Lunes", want: Lunes},
		{name: "lowercase", input: "martes", want: Martes},
		{name: "accented", input: "Miércoles", want: Miercoles},
		{name: "unaccented", input: "miercoles", want: Miercoles},
		{name: "short code", input: "Ju", want: Jueves},
		{name: "short lowercase", input: "vi", want: Viernes},
		{name: "saturday", input: "Sábado", want: Sabado},
		{name: "sunday rejected", input: "Domingo", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDay) {
					t.Fatalf("ParseDay(%q) error = %v, want ErrInvalidDay", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDayRoundTrip(t *testing.T) {
	for _, d := range Days {
		got, err := ParseDay(d.String())
		if err != nil {
			t.Fatalf("ParseDay(%q): %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDay(%q) = %v, want %v", d.String(), got, d)
		}
		got, err = ParseDay(d.Short())
		if err != nil {
			t.Fatalf("ParseDay(%q): %v", d.Short(), err)
		}
		if got != d {
			t.Errorf("ParseDay(%q) = %v, want %v", d.Short(), got, d)
		}
	}
}

func TestDayWeekday(t *testing.T) {
	if got := Lunes.Weekday(); got != time.Monday {
		t.Errorf("Lunes.Weekday() = %v, want Monday", got)
	}
	if got := Sabado.Weekday(); got != time.Saturday {
		t.Errorf("Sabado.Weekday() = %v, want Saturday", got)
	}
}

func TestNewTimeBlock(t *testing.T) {
	tests := []struct {
		name       string
		day        Day
		start, end string
		wantErr    error
	}{
		{name: "valid", day: Lunes, start: "08:31", end: "09:50"},
		{name: "end before start", day: Lunes, start: "10:00", end: "09:00", wantErr: ErrInvalidTimeRange},
		{name: "zero length", day: Lunes, start: "10:00", end: "10:00", wantErr: ErrInvalidTimeRange},
		{name: "bad start", day: Lunes, start: "8:31", end: "09:50", wantErr: ErrInvalidTime},
		{name: "bad end", day: Lunes, start: "08:31", end: "25:00", wantErr: ErrInvalidTime},
		{name: "bad day", day: Day(9), start: "08:31", end: "09:50", wantErr: ErrInvalidDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewTimeBlock(tt.day, tt.start, tt.end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewTimeBlock() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTimeBlock() unexpected error: %v", err)
			}
			if b.Day != tt.day || b.Start != tt.start || b.End != tt.end {
				t.Errorf("NewTimeBlock() = %+v", b)
			}
		})
	}
}

func TestTimeBlockOverlaps(t *testing.T) {
	a := TimeBlock{Day: Lunes, Start: "09:00", End: "10:00"}

	tests := []struct {
		name  string
		other TimeBlock
		want  bool
	}{
		{name: "same slot other day", other: TimeBlock{Day: Martes, Start: "09:00", End: "10:00"}, want: false},
		{name: "touching", other: TimeBlock{Day: Lunes, Start: "10:00", End: "11:00"}, want: false},
		{name: "overlapping", other: TimeBlock{Day: Lunes, Start: "09:30", End: "10:30"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestModuleCovers(t *testing.T) {
	mod := Module{Number: 7, Start: "13:01", End: "13:40"}

	tests := []struct {
		name  string
		block TimeBlock
		want  bool
	}{
		{name: "block spans module", block: TimeBlock{Day: Jueves, Start: "13:00", End: "14:20"}, want: true},
		{name: "exact match", block: TimeBlock{Day: Jueves, Start: "13:01", End: "13:40"}, want: true},
		{name: "starts too late", block: TimeBlock{Day: Jueves, Start: "13:10", End: "14:20"}, want: false},
		{name: "ends too early", block: TimeBlock{Day: Jueves, Start: "13:00", End: "13:30"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mod.Covers(tt.block); got != tt.want {
				t.Errorf("Covers(%v) = %v, want %v", tt.block, got, tt.want)
			}
		})
	}
}

func TestModulesOrdering(t *testing.T) {
	if len(Modules) != 13 {
		t.Fatalf("len(Modules) = %d, want 13", len(Modules))
	}
	for i, m := range Modules {
		if m.Number != i+1 {
			t.Errorf("Modules[%d].Number = %d, want %d", i, m.Number, i+1)
		}
		if m.End <= m.Start {
			t.Errorf("module %d range inverted: %s-%s", m.Number, m.Start, m.End)
		}
		if i > 0 && m.Start < Modules[i-1].End {
			t.Errorf("module %d starts before module %d ends", m.Number, Modules[i-1].Number)
		}
	}
}
