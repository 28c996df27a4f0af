package timetable

import (
	"strings"
)

// Station is a named stop in the rail network. Stations are created by the
// data importer and are immutable afterwards; identity is the upper-cased
// name.
type Station struct {
	Code string
	Name string
}

// Connection is one scheduled train segment between two stations. Connections
// are facts retrieved from the store and are never mutated by the planner.
type Connection struct {
	Origin      string
	Destination string
	TrainNumber string
	Departure   Instant
	Arrival     Instant
}

// Complete reports whether every date and time field of the connection is
// present. Incomplete connections are filtered out at the store boundary and
// never reach the search.
func (c Connection) Complete() bool {
	return c.Departure.IsComplete() && c.Arrival.IsComplete()
}

// Segment is a scheduled connection keyed by station codes rather than
// display names, as produced by the bulk importer before the stations are
// resolved in the graph.
type Segment struct {
	OriginCode      string
	DestinationCode string
	TrainNumber     string
	Departure       Instant
	Arrival         Instant
}

// NormaliseStationName maps a user supplied station name onto the identity
// used by the graph.
func NormaliseStationName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
