package horario

import (
	"fmt"
	"iter"
)

// TickStep is the grid resolution in minutes: one skeleton row per tick.
const TickStep = 30

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Positional parsing with no bounds validation: malformed input
// produces a garbage offset rather than an error, matching the
// permissive behavior the catalog feed relies on.
func TimeToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// TimesOverlap returns true if two half-open time ranges overlap.
// Touching endpoints (end1 == start2) do not overlap, so back-to-back
// classes are allowed.
func TimesOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

// OverlapMinutes calculates the overlapping minutes between two time
// ranges in "HH:MM" format. Returns 0 when there is no overlap.
func OverlapMinutes(start1, end1, start2, end2 string) int {
	s1 := TimeToMinutes(start1)
	e1 := TimeToMinutes(end1)
	s2 := TimeToMinutes(start2)
	e2 := TimeToMinutes(end2)

	overlapStart := max(s1, s2)
	overlapEnd := min(e1, e2)

	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}

// Ticks returns the sequence of 30-minute grid positions from start
// (inclusive) to end (exclusive). Positions on the hour yield their
// "HH:MM" label; half-hour positions yield an empty placeholder, so a
// skeleton row exists for every tick but only hour marks are labeled.
// The sequence is finite and restartable: ranging over it again
// replays it from start.
func Ticks(start, end string) iter.Seq[string] {
	startMins := TimeToMinutes(start)
	endMins := TimeToMinutes(end)

	return func(yield func(string) bool) {
		for m := startMins; m < endMins; m += TickStep {
			label := ""
			if m%60 == 0 {
				label = MinutesToTime(m)
			}
			if !yield(label) {
				return
			}
		}
	}
}

// TickLabels collects Ticks into a slice for hosts that need indexed
// access to the skeleton rows.
func TickLabels(start, end string) []string {
	var labels []string
	for label := range Ticks(start, end) {
		labels = append(labels, label)
	}
	return labels
}
