package timetable

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pkg/errors"
)

// Neo4jStore reads and writes the timetable graph. Stations are `Gare` nodes
// keyed by name and IATA code; scheduled connections are `MOOVE`
// relationships carrying the train number and the departure/arrival dates and
// times as string properties.
type Neo4jStore struct {
	driver   neo4j.DriverWithContext
	database string
}

func NewNeo4jStore(driver neo4j.DriverWithContext, database string) *Neo4jStore {
	return &Neo4jStore{
		driver:   driver,
		database: database,
	}
}

const departuresQuery = `
MATCH (origin:Gare {nom: $name})-[trip:MOOVE]->(next:Gare)
RETURN next.nom AS destination, trip.numtrain AS train,
       trip.datedepart AS departure_date, trip.hdepart AS departure_time,
       trip.datearrive AS arrival_date, trip.harrive AS arrival_time`

// The date equality makes the string comparison safe here; HH:MM is fixed
// width so the time comparison is chronological.
const candidateFirstLegsQuery = `
MATCH (origin:Gare {nom: $name})-[trip:MOOVE]->(next:Gare)
WHERE trip.datedepart = $date AND trip.hdepart >= $time
RETURN next.nom AS destination, trip.numtrain AS train,
       trip.datedepart AS departure_date, trip.hdepart AS departure_time,
       trip.datearrive AS arrival_date, trip.harrive AS arrival_time
ORDER BY trip.datedepart, trip.hdepart`

func (s *Neo4jStore) CandidateFirstLegs(ctx context.Context, origin string, notBefore Instant) ([]Connection, error) {
	if !notBefore.IsComplete() {
		return []Connection{}, nil
	}

	origin = NormaliseStationName(origin)

	return s.queryConnections(ctx, origin, candidateFirstLegsQuery, map[string]any{
		"name": origin,
		"date": notBefore.Date,
		"time": notBefore.Time,
	})
}

// DeparturesFrom fetches every connection leaving the origin and filters and
// orders chronologically on the client side. Dates are stored as DD/MM/YYYY
// strings, so an on-or-after comparison cannot be expressed as a Cypher
// string predicate.
func (s *Neo4jStore) DeparturesFrom(ctx context.Context, origin string, notBefore Instant) ([]Connection, error) {
	origin = NormaliseStationName(origin)

	connections, err := s.queryConnections(ctx, origin, departuresQuery, map[string]any{
		"name": origin,
	})
	if err != nil {
		return nil, err
	}

	departures := []Connection{}
	for _, connection := range connections {
		if connection.Departure.Before(notBefore) {
			continue
		}
		departures = append(departures, connection)
	}
	sortConnections(departures)

	return departures, nil
}

func (s *Neo4jStore) queryConnections(ctx context.Context, origin string, query string, params map[string]any) ([]Connection, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database, AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		connections := []Connection{}
		for records.Next(ctx) {
			record := records.Record()

			connection := Connection{
				Origin:      origin,
				Destination: NormaliseStationName(recordString(record, "destination")),
				TrainNumber: recordString(record, "train"),
				Departure:   NewInstant(recordString(record, "departure_date"), recordString(record, "departure_time")),
				Arrival:     NewInstant(recordString(record, "arrival_date"), recordString(record, "arrival_time")),
			}

			if !connection.Complete() {
				continue
			}

			connections = append(connections, connection)
		}

		return connections, records.Err()
	})
	if err != nil {
		return nil, errors.Wrapf(err, "querying connections from %s", origin)
	}

	return result.([]Connection), nil
}

func (s *Neo4jStore) InsertStation(ctx context.Context, station Station) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, "MERGE (:Gare {nom: $name, iata: $code})", map[string]any{
			"name": station.Name,
			"code": station.Code,
		})
	})

	return errors.Wrapf(err, "inserting station %s", station.Code)
}

func (s *Neo4jStore) InsertSegments(ctx context.Context, segments []Segment) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, segment := range segments {
			_, err := tx.Run(ctx, `
				MATCH (a:Gare {iata: $originCode}), (b:Gare {iata: $destinationCode})
				MERGE (a)-[:MOOVE {
					numtrain: $train,
					datedepart: $departureDate, hdepart: $departureTime,
					datearrive: $arrivalDate, harrive: $arrivalTime
				}]->(b)`,
				map[string]any{
					"originCode":      segment.OriginCode,
					"destinationCode": segment.DestinationCode,
					"train":           segment.TrainNumber,
					"departureDate":   segment.Departure.Date,
					"departureTime":   segment.Departure.Time,
					"arrivalDate":     segment.Arrival.Date,
					"arrivalTime":     segment.Arrival.Time,
				})
			if err != nil {
				return nil, err
			}
		}

		return nil, nil
	})

	return errors.Wrap(err, "inserting segments")
}

func recordString(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok {
		return ""
	}

	text, _ := value.(string)

	return text
}
