package timetable

import (
	"time"
)

// DurationMinutes returns the elapsed minutes between a departure and an
// arrival instant, correcting the raw stored clock-times so the result is
// never negative.
//
// Source timetables store arrival dates inconsistently: a trip crossing
// midnight often keeps the departure date on its arrival, and some rows carry
// an arrival date earlier than the departure date. The corrections applied,
// in order:
//
//   - an arrival date before the departure date is pulled forward onto the
//     departure date
//   - an arrival clock-time earlier than the departure clock-time wraps to
//     the next day (overnight trip)
//   - an arrival overshooting the scheduled day delta is clamped to exactly
//     departure plus that many days, bounding pathological rows to a single
//     sane transit duration
//
// A missing time component yields 0, which callers must treat as "unusable",
// not as a zero-cost edge.
func DurationMinutes(departure Instant, arrival Instant) float64 {
	if !departure.IsComplete() || !arrival.IsComplete() {
		return 0
	}

	departureDateTime, err := departure.DateTime()
	if err != nil {
		return 0
	}
	arrivalDateTime, err := arrival.DateTime()
	if err != nil {
		return 0
	}

	dayDifference := daysBetween(departureDateTime, arrivalDateTime)

	if dayDifference < 0 {
		arrivalDateTime = arrivalDateTime.AddDate(0, 0, -dayDifference)
		dayDifference = 0
	}

	if arrivalDateTime.Before(departureDateTime) {
		arrivalDateTime = arrivalDateTime.AddDate(0, 0, 1)
		dayDifference++
	}

	if dayDifference > 0 {
		if limit := departureDateTime.AddDate(0, 0, dayDifference); arrivalDateTime.After(limit) {
			arrivalDateTime = limit
		}
	}

	return arrivalDateTime.Sub(departureDateTime).Minutes()
}

// TotalMinutes returns the raw elapsed minutes between two instants with no
// overnight correction. It is meant for reporting on a resolved journey whose
// instants are already known-correct; a negative result means the pair was
// misordered and should be surfaced as a warning by the caller.
func TotalMinutes(departure Instant, arrival Instant) int {
	departureDateTime, err := departure.DateTime()
	if err != nil {
		return 0
	}
	arrivalDateTime, err := arrival.DateTime()
	if err != nil {
		return 0
	}

	return int(arrivalDateTime.Sub(departureDateTime).Minutes())
}

// daysBetween counts whole calendar days from a's date to b's date, ignoring
// the time-of-day components.
func daysBetween(a time.Time, b time.Time) int {
	aDate := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	bDate := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())

	return int(bDate.Sub(aDate).Hours() / 24)
}
