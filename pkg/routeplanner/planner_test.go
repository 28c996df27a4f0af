package routeplanner

import (
	"context"
	"testing"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connection(origin, destination, train, departureDate, departureTime, arrivalDate, arrivalTime string) timetable.Connection {
	return timetable.Connection{
		Origin:      origin,
		Destination: destination,
		TrainNumber: train,
		Departure:   timetable.NewInstant(departureDate, departureTime),
		Arrival:     timetable.NewInstant(arrivalDate, arrivalTime),
	}
}

func stations(path Path) []string {
	names := []string{}
	for _, node := range path.Nodes {
		names = append(names, node.Station)
	}

	return names
}

func TestFindPathDirect(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(connection("PARIS MONTPARNASSE", "RENNES", "8635", "01/06/2024", "08:30", "01/06/2024", "10:15"))

	planner := NewPlanner(store)

	notBefore := timetable.NewInstant("01/06/2024", "08:00")
	path, err := planner.FindPath(context.Background(), "PARIS MONTPARNASSE", "RENNES", notBefore)
	require.NoError(t, err)

	assert.Equal(t, []string{"PARIS MONTPARNASSE", "RENNES"}, stations(path))
	assert.Equal(t, timetable.NewInstant("01/06/2024", "08:30"), path.FirstDeparture())
	assert.Equal(t, timetable.NewInstant("01/06/2024", "10:15"), path.FinalArrival())

	// The label cost covers waiting at the origin from 08:00
	assert.Equal(t, timetable.DurationMinutes(notBefore, path.FinalArrival()), path.Cost)
	assert.Equal(t, 105, timetable.TotalMinutes(path.FirstDeparture(), path.FinalArrival()))
}

func TestFindPathSelf(t *testing.T) {
	planner := NewPlanner(timetable.NewMemoryStore())

	path, err := planner.FindPath(context.Background(), "RENNES", "rennes", timetable.NewInstant("01/06/2024", "08:00"))
	require.NoError(t, err)

	assert.Equal(t, []string{"RENNES"}, stations(path))
	assert.Zero(t, path.Cost)
}

func TestFindPathNoConnections(t *testing.T) {
	planner := NewPlanner(timetable.NewMemoryStore())

	_, err := planner.FindPath(context.Background(), "PARIS MONTPARNASSE", "RENNES", timetable.NewInstant("01/06/2024", "08:00"))
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestFindPathTransfer(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(
		connection("NICE VILLE", "MARSEILLE ST CHARLES", "6172", "01/06/2024", "08:30", "01/06/2024", "10:00"),
		connection("MARSEILLE ST CHARLES", "LYON PART DIEU", "6608", "01/06/2024", "10:30", "01/06/2024", "12:00"),
	)

	planner := NewPlanner(store)

	notBefore := timetable.NewInstant("01/06/2024", "08:00")
	path, err := planner.FindPath(context.Background(), "NICE VILLE", "LYON PART DIEU", notBefore)
	require.NoError(t, err)

	require.Equal(t, []string{"NICE VILLE", "MARSEILLE ST CHARLES", "LYON PART DIEU"}, stations(path))

	// Cumulative cost equals the sum of the per-leg corrected durations
	expected := timetable.DurationMinutes(notBefore, path.Nodes[1].Arrival) +
		timetable.DurationMinutes(path.Nodes[1].Arrival, path.Nodes[2].Arrival)
	assert.Equal(t, expected, path.Cost)
}

func TestFindPathReoptimisesFrontier(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(
		// Slow direct train
		connection("A", "C", "DIRECT", "01/06/2024", "08:10", "01/06/2024", "18:00"),
		// Faster with a change at B
		connection("A", "B", "HOP1", "01/06/2024", "08:05", "01/06/2024", "09:00"),
		connection("B", "C", "HOP2", "01/06/2024", "09:30", "01/06/2024", "10:30"),
	)

	planner := NewPlanner(store)

	path, err := planner.FindPath(context.Background(), "A", "C", timetable.NewInstant("01/06/2024", "08:00"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, stations(path))
	assert.Equal(t, "HOP2", path.Final().TrainNumber)
	assert.Equal(t, 150.0, path.Cost)
}

func TestFindPathSkipsMissedTrains(t *testing.T) {
	store := timetable.NewMemoryStore()
	// Departs at the exact search instant, so it is already missed
	store.Add(connection("A", "B", "MISSED", "01/06/2024", "08:00", "01/06/2024", "09:00"))

	planner := NewPlanner(store)

	_, err := planner.FindPath(context.Background(), "A", "B", timetable.NewInstant("01/06/2024", "08:00"))
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestFindPathOvernightConnection(t *testing.T) {
	store := timetable.NewMemoryStore()
	// Arrival date not advanced in the stored data
	store.Add(connection("A", "B", "NIGHT", "01/06/2024", "23:50", "01/06/2024", "00:20"))

	planner := NewPlanner(store)

	path, err := planner.FindPath(context.Background(), "A", "B", timetable.NewInstant("01/06/2024", "23:00"))
	require.NoError(t, err)

	assert.Equal(t, 80.0, path.Cost)
}

func TestFindPathIdempotent(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(
		connection("A", "B", "HOP1", "01/06/2024", "08:05", "01/06/2024", "09:00"),
		connection("B", "C", "HOP2", "01/06/2024", "09:30", "01/06/2024", "10:30"),
	)

	planner := NewPlanner(store)

	first, err := planner.FindPath(context.Background(), "A", "C", timetable.NewInstant("01/06/2024", "08:00"))
	require.NoError(t, err)
	second, err := planner.FindPath(context.Background(), "A", "C", timetable.NewInstant("01/06/2024", "08:00"))
	require.NoError(t, err)

	assert.Equal(t, stations(first), stations(second))
	assert.Equal(t, first.Cost, second.Cost)
}

func TestFindPathCancelledContext(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(connection("A", "B", "HOP", "01/06/2024", "08:30", "01/06/2024", "09:00"))

	planner := NewPlanner(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := planner.FindPath(ctx, "A", "B", timetable.NewInstant("01/06/2024", "08:00"))
	assert.ErrorIs(t, err, context.Canceled)
}
