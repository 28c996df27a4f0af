package timetable

import (
	"time"
)

// Wall-clock layouts used throughout the timetable graph. Dates and times are
// stored as separate string properties on the MOOVE relationships.
const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)

// Instant is a wall-clock point in time as stored in the timetable: a date
// and a time-of-day, either of which may be missing in dirty source data.
type Instant struct {
	Date string
	Time string
}

func NewInstant(date string, timeOfDay string) Instant {
	return Instant{Date: date, Time: timeOfDay}
}

// IsComplete reports whether both the date and time components are present.
// An incomplete instant must never be used as an edge of the search graph.
func (i Instant) IsComplete() bool {
	return i.Date != "" && i.Time != ""
}

func (i Instant) DateTime() (time.Time, error) {
	return time.Parse(DateLayout+" "+TimeLayout, i.Date+" "+i.Time)
}

func (i Instant) String() string {
	return i.Date + " " + i.Time
}

// After reports whether i is strictly later than other. Unparseable instants
// compare as not-after, which keeps them out of the forward frontier.
func (i Instant) After(other Instant) bool {
	a, err := i.DateTime()
	if err != nil {
		return false
	}
	b, err := other.DateTime()
	if err != nil {
		return false
	}
	return a.After(b)
}

func (i Instant) Before(other Instant) bool {
	a, err := i.DateTime()
	if err != nil {
		return false
	}
	b, err := other.DateTime()
	if err != nil {
		return false
	}
	return a.Before(b)
}

// AddDays shifts a DateLayout date string forward by the given number of days.
func AddDays(date string, days int) (string, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}

	return parsed.AddDate(0, 0, days).Format(DateLayout), nil
}
