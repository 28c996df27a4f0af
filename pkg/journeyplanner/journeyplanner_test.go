package journeyplanner

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

func TestPlanEarliestDirect(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(connection("PARIS MONTPARNASSE", "RENNES", "8635", "01/06/2024", "08:30", "01/06/2024", "10:15"))

	planner := NewPlanner(store)

	journey, err := planner.PlanEarliest(context.Background(), "paris montparnasse", "RENNES", timetable.NewInstant("01/06/2024", "08:00"))
	require.NoError(t, err)

	assert.Equal(t, "PARIS MONTPARNASSE", journey.Origin)
	assert.Equal(t, "RENNES", journey.Destination)
	assert.Equal(t, "8635", journey.FirstLeg.TrainNumber)
	assert.Len(t, journey.Path.Nodes, 2)
	assert.Equal(t, timetable.NewInstant("01/06/2024", "08:30"), journey.Departure)
	assert.Equal(t, timetable.NewInstant("01/06/2024", "10:15"), journey.Arrival)
	assert.Equal(t, 105, journey.TotalMinutes)
}

func TestPlanEarliestMultiLeg(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(
		connection("NICE VILLE", "MARSEILLE ST CHARLES", "6172", "01/06/2024", "08:30", "01/06/2024", "10:00"),
		connection("MARSEILLE ST CHARLES", "LYON PART DIEU", "6608", "01/06/2024", "10:30", "01/06/2024", "12:00"),
	)

	planner := NewPlanner(store)

	journey, err := planner.PlanEarliest(context.Background(), "NICE VILLE", "LYON PART DIEU", timetable.NewInstant("01/06/2024", "08:00"))
	require.NoError(t, err)

	require.Len(t, journey.Path.Nodes, 3)
	assert.Equal(t, "6172", journey.FirstLeg.TrainNumber)
	assert.Equal(t, "6608", journey.Path.Final().TrainNumber)
	assert.Equal(t, 210, journey.TotalMinutes)

	// Committed leg plus onward legs add up to the path cost
	expected := timetable.DurationMinutes(journey.FirstLeg.Departure, journey.FirstLeg.Arrival) +
		timetable.DurationMinutes(journey.Path.Nodes[1].Arrival, journey.Path.Nodes[2].Arrival)
	assert.Equal(t, expected, journey.Path.Cost)
}

func TestPlanEarliestSkipsDeadEndCandidates(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(
		// Earliest train goes somewhere the journey cannot continue from
		connection("A", "X", "DEADEND", "01/06/2024", "08:30", "01/06/2024", "09:30"),
		connection("A", "B", "GOOD", "01/06/2024", "09:30", "01/06/2024", "10:30"),
		connection("B", "C", "ONWARD", "01/06/2024", "11:00", "01/06/2024", "12:00"),
	)

	planner := NewPlanner(store)

	journey, err := planner.PlanEarliest(context.Background(), "A", "C", timetable.NewInstant("01/06/2024", "08:00"))
	require.NoError(t, err)

	assert.Equal(t, "GOOD", journey.FirstLeg.TrainNumber)
}

func TestPlanEarliestNoCandidates(t *testing.T) {
	planner := NewPlanner(timetable.NewMemoryStore())

	_, err := planner.PlanEarliest(context.Background(), "A", "B", timetable.NewInstant("01/06/2024", "08:00"))
	assert.ErrorIs(t, err, ErrNoJourney)
}

func TestPlanEarliestNoCompletableCandidate(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(connection("A", "X", "DEADEND", "01/06/2024", "08:30", "01/06/2024", "09:30"))

	planner := NewPlanner(store)

	_, err := planner.PlanEarliest(context.Background(), "A", "B", timetable.NewInstant("01/06/2024", "08:00"))
	assert.ErrorIs(t, err, ErrNoJourney)
}

func TestPlanArrivalWindow(t *testing.T) {
	store := timetable.NewMemoryStore()
	// Against a desired arrival of 12:00 the first-hop scores are
	// 45, -10, 12 and 90 minutes
	store.Add(
		connection("A", "B", "T1", "01/06/2024", "09:15", "01/06/2024", "11:15"),
		connection("A", "B", "T2", "01/06/2024", "10:10", "01/06/2024", "12:10"),
		connection("A", "B", "T3", "01/06/2024", "09:48", "01/06/2024", "11:48"),
		connection("A", "B", "T4", "01/06/2024", "08:30", "01/06/2024", "10:30"),
	)

	planner := NewPlanner(store)

	journey, err := planner.PlanArrivalWindow(context.Background(), "A", "B", timetable.NewInstant("01/06/2024", "00:00"), "12:00")
	require.NoError(t, err)

	assert.Equal(t, "T3", journey.FirstLeg.TrainNumber)
	assert.Equal(t, timetable.NewInstant("01/06/2024", "11:48"), journey.Arrival)
}

func TestPlanArrivalWindowAllTooLate(t *testing.T) {
	store := timetable.NewMemoryStore()
	store.Add(
		connection("A", "B", "T1", "01/06/2024", "12:30", "01/06/2024", "14:30"),
		connection("A", "B", "T2", "01/06/2024", "15:00", "01/06/2024", "17:00"),
	)

	planner := NewPlanner(store)

	_, err := planner.PlanArrivalWindow(context.Background(), "A", "B", timetable.NewInstant("01/06/2024", "00:00"), "12:00")
	assert.ErrorIs(t, err, ErrNoJourney)
}
