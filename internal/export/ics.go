// Package export encodes the selected schedule into shareable
// formats: an iCalendar file with weekly recurring events and a
// printable module table.
package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"mihorario/internal/horario"
)

var ErrNothingSelected = errors.New("no selections to export")

// weeklyRule is the recurrence attached to every class block. Built
// once through the rrule library so the serialized form stays a valid
// RFC 5545 RECUR value.
var weeklyRule = func() string {
	r, err := rrule.NewRRule(rrule.ROption{Freq: rrule.WEEKLY})
	if err != nil {
		panic(err)
	}
	return r.String()
}()

// NextWeekday returns the next calendar date after now that falls on
// day, at the given "HH:MM" clock time, in now's location. A matching
// today rolls forward a full week so the first emitted occurrence is
// never already in progress.
func NextWeekday(now time.Time, day horario.Day, clock string) time.Time {
	offset := (int(day.Weekday()) - int(now.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	date := now.AddDate(0, 0, offset)
	mins := horario.TimeToMinutes(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, now.Location())
}

// WriteICS emits one recurring VEVENT per block of every selection.
// Timestamps are UTC-normalized by the calendar serializer. Identical
// weekly patterns are not merged; each block stands alone.
func WriteICS(w io.Writer, selections []horario.Selection, now time.Time) error {
	if len(selections) == 0 {
		return ErrNothingSelected
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetCalscale("GREGORIAN")
	cal.SetProductId("-//mihorario//ES")

	for _, sel := range selections {
		for _, b := range sel.Blocks {
			ev := cal.AddEvent(uuid.NewString())
			ev.SetSummary(fmt.Sprintf("%s (%s)", sel.Title, sel.Section))
			ev.SetStartAt(NextWeekday(now, b.Day, b.Start))
			ev.SetEndAt(NextWeekday(now, b.Day, b.End))
			ev.AddRrule(weeklyRule)
			ev.SetDescription(sel.Modality())
			ev.SetDtStampTime(now)
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}
