// Package horario holds the schedule domain: days, time blocks,
// course selections and the conflict rules between them.
package horario

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDay       = errors.New("invalid day")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInvalidTime      = errors.New("invalid time format, expected HH:MM")
)

// Day is a weekday of the academic week, Monday through Saturday.
// Sunday carries no classes and is not part of the enum.
type Day int

const (
	Lunes Day = iota
	Martes
	Miercoles
	Jueves
	Viernes
	Sabado
)

// Days lists the academic week in grid order.
var Days = []Day{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado}

var dayNames = [...]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

func (d Day) String() string {
	if d < Lunes || d > Sabado {
		return "???"
	}
	return dayNames[d]
}

// Weekday maps to the standard library's week, which counts Sunday
// as 0 where this enum counts Lunes as 0.
func (d Day) Weekday() time.Weekday {
	return time.Weekday(int(d) + 1)
}

// Short returns the two-letter code used by the catalog feed.
func (d Day) Short() string {
	switch d {
	case Lunes:
		return "Lu"
	case Martes:
		return "Ma"
	case Miercoles:
		return "Mi"
	case Jueves:
		return "Ju"
	case Viernes:
		return "Vi"
	case Sabado:
		return "Sa"
	}
	return "??"
}

// ParseDay resolves a day from its full name or its two-letter catalog
// code, case-insensitively and ignoring accents on the common forms.
func ParseDay(s string) (Day, error) {
	switch strings.ToLower(s) {
	case "lunes", "lu":
		return Lunes, nil
	case "martes", "ma":
		return Martes, nil
	case "miércoles", "miercoles", "mi":
		return Miercoles, nil
	case "jueves", "ju":
		return Jueves, nil
	case "viernes", "vi":
		return Viernes, nil
	case "sábado", "sabado", "sa":
		return Sabado, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

// TimeBlock is one meeting of a section: a day plus a half-open
// [Start, End) range in "HH:MM".
type TimeBlock struct {
	Day   Day    `json:"dia"`
	Start string `json:"inicio"`
	End   string `json:"fin"`
}

// NewTimeBlock validates day and range ordering. Times must be
// zero-padded "HH:MM"; End must be strictly after Start.
func NewTimeBlock(day Day, start, end string) (TimeBlock, error) {
	if day < Lunes || day > Sabado {
		return TimeBlock{}, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if !validTime(start) {
		return TimeBlock{}, fmt.Errorf("%w: %q", ErrInvalidTime, start)
	}
	if !validTime(end) {
		return TimeBlock{}, fmt.Errorf("%w: %q", ErrInvalidTime, end)
	}
	if end <= start {
		return TimeBlock{}, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}
	return TimeBlock{Day: day, Start: start, End: end}, nil
}

func validTime(t string) bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h < 24 && m < 60
}

// Minutes returns the block duration in minutes.
func (b TimeBlock) Minutes() int {
	return TimeToMinutes(b.End) - TimeToMinutes(b.Start)
}

// Overlaps reports whether two blocks collide: same day and
// intersecting time ranges. Touching blocks do not overlap.
func (b TimeBlock) Overlaps(other TimeBlock) bool {
	return b.Day == other.Day && TimesOverlap(b.Start, b.End, other.Start, other.End)
}

func (b TimeBlock) String() string {
	return fmt.Sprintf("%s %s-%s", b.Day, b.Start, b.End)
}

// Selection is one chosen section of a course with all of its weekly
// meetings.
type Selection struct {
	CourseCode string      `json:"sigla"`
	SectionID  string      `json:"seccion_id"`
	Section    string      `json:"seccion"`
	Title      string      `json:"asignatura"`
	Virtual    bool        `json:"virtual"`
	Instructor string      `json:"docente"`
	Blocks     []TimeBlock `json:"bloques"`
}

// Label is the short display form, course code plus section number.
func (s Selection) Label() string {
	return s.CourseCode + " " + s.Section
}

// Modality returns the human form of the virtual flag.
func (s Selection) Modality() string {
	if s.Virtual {
		return "Clase virtual sincrónica"
	}
	return "Clase presencial"
}

// Conflict identifies the already-selected section a candidate
// collides with. OverlapMinutes measures the first colliding block
// pair.
type Conflict struct {
	CourseCode     string
	Section        string
	Title          string
	OverlapMinutes int
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s %s (%s)", c.CourseCode, c.Section, c.Title)
}
