package timetable

import (
	"context"
)

// Store exposes the scheduled connections of the timetable graph. Both query
// methods exclude connections with missing date or time fields and return
// results ordered by departure instant ascending.
type Store interface {
	// CandidateFirstLegs returns the connections leaving origin on exactly
	// notBefore.Date at or after notBefore.Time. These are the trains a
	// traveller can commit to as the very first hop of a journey.
	CandidateFirstLegs(ctx context.Context, origin string, notBefore Instant) ([]Connection, error)

	// DeparturesFrom returns the connections leaving origin on or after the
	// given instant, on any later date.
	DeparturesFrom(ctx context.Context, origin string, notBefore Instant) ([]Connection, error)
}
