package itinerary

import (
	"context"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/journeyplanner"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Each stage departs at the start of the day so the earliest train of the day
// can be considered.
const stageDepartureTime = "00:00"

// Stage is the outcome of one waypoint-to-waypoint leg of an itinerary.
// Journey is nil when Err is set.
type Stage struct {
	From    string
	To      string
	Journey *journeyplanner.Journey
	Err     error
}

// Composer chains the earliest-departure policy across an ordered list of
// waypoints, advancing the travel date between stages.
type Composer struct {
	planner *journeyplanner.Planner
}

func NewComposer(planner *journeyplanner.Planner) *Composer {
	return &Composer{
		planner: planner,
	}
}

// Compose plans each consecutive pair of waypoints in turn. A successful
// stage moves the traveller to its destination and sets the next stage's date
// to the day after arrival; a failed stage is recorded and composition
// carries on from the unchanged city and date.
func (c *Composer) Compose(ctx context.Context, waypoints []string, startDate string) ([]Stage, error) {
	if len(waypoints) < 2 {
		return nil, errors.New("an itinerary needs at least two waypoints")
	}

	currentCity := timetable.NormaliseStationName(waypoints[0])
	currentDate := startDate

	stages := []Stage{}

	for _, waypoint := range waypoints[1:] {
		goal := timetable.NormaliseStationName(waypoint)

		journey, err := c.planner.PlanEarliest(ctx, currentCity, goal, timetable.NewInstant(currentDate, stageDepartureTime))

		stages = append(stages, Stage{
			From:    currentCity,
			To:      goal,
			Journey: journey,
			Err:     err,
		})

		if err != nil {
			log.Warn().
				Str("from", currentCity).
				Str("to", goal).
				Str("date", currentDate).
				Msg("No journey for itinerary stage")

			continue
		}

		currentCity = goal

		if nextDate, err := timetable.AddDays(journey.Arrival.Date, 1); err == nil {
			currentDate = nextDate
		}
	}

	return stages, nil
}
