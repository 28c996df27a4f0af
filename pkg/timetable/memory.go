package timetable

import (
	"context"
	"sort"
)

// MemoryStore is an in-memory Store used by tests and importer dry runs. It
// applies the same filtering and ordering contract as the Neo4j store.
type MemoryStore struct {
	departures map[string][]Connection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		departures: map[string][]Connection{},
	}
}

func (s *MemoryStore) Add(connections ...Connection) {
	for _, connection := range connections {
		origin := NormaliseStationName(connection.Origin)
		s.departures[origin] = append(s.departures[origin], connection)
	}

	for origin := range s.departures {
		sortConnections(s.departures[origin])
	}
}

func (s *MemoryStore) CandidateFirstLegs(ctx context.Context, origin string, notBefore Instant) ([]Connection, error) {
	legs := []Connection{}
	if !notBefore.IsComplete() {
		return legs, nil
	}
	for _, connection := range s.departures[NormaliseStationName(origin)] {
		if !connection.Complete() {
			continue
		}
		if connection.Departure.Date != notBefore.Date {
			continue
		}
		if connection.Departure.Time < notBefore.Time {
			continue
		}
		legs = append(legs, connection)
	}

	return legs, nil
}

func (s *MemoryStore) DeparturesFrom(ctx context.Context, origin string, notBefore Instant) ([]Connection, error) {
	connections := []Connection{}
	for _, connection := range s.departures[NormaliseStationName(origin)] {
		if !connection.Complete() {
			continue
		}
		if connection.Departure.Before(notBefore) {
			continue
		}
		connections = append(connections, connection)
	}

	return connections, nil
}

func sortConnections(connections []Connection) {
	sort.SliceStable(connections, func(i, j int) bool {
		a, errA := connections[i].Departure.DateTime()
		b, errB := connections[j].Departure.DateTime()
		if errA != nil || errB != nil {
			return errB != nil && errA == nil
		}

		return a.Before(b)
	})
}
