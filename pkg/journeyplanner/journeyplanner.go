package journeyplanner

import (
	"context"
	"errors"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/routeplanner"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrNoJourney is returned when no candidate first leg leads to a complete
// journey, or when the arrival-window policy finds no journey landing before
// the desired arrival.
var ErrNoJourney = errors.New("no journey found")

// Journey is a resolved end-to-end journey: the committed first train, the
// full path and the derived summary fields used for reporting.
type Journey struct {
	Origin      string
	Destination string
	FirstLeg    timetable.Connection
	Path        routeplanner.Path
	Departure   timetable.Instant
	Arrival     timetable.Instant

	// TotalMinutes is the raw elapsed time from first departure to final
	// arrival, without the overnight corrections the search cost carries.
	TotalMinutes int
}

// Planner assembles journeys by committing to a candidate first leg and
// letting the search engine finish the rest of the route from wherever that
// leg lands.
type Planner struct {
	store  timetable.Store
	engine *routeplanner.Planner
}

func NewPlanner(store timetable.Store) *Planner {
	return &Planner{
		store:  store,
		engine: routeplanner.NewPlanner(store),
	}
}

// PlanEarliest returns the journey starting with the earliest candidate first
// leg that can complete the trip at all. Candidates whose onward search fails
// are skipped, not fatal.
func (p *Planner) PlanEarliest(ctx context.Context, origin string, destination string, notBefore timetable.Instant) (*Journey, error) {
	origin = timetable.NormaliseStationName(origin)
	destination = timetable.NormaliseStationName(destination)

	legs, err := p.store.CandidateFirstLegs(ctx, origin, notBefore)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "listing first legs from %s", origin)
	}

	for _, leg := range legs {
		journey, err := p.commit(ctx, origin, destination, notBefore, leg)
		if err != nil {
			if errors.Is(err, routeplanner.ErrNoRoute) {
				log.Debug().
					Str("train", leg.TrainNumber).
					Str("origin", origin).
					Str("destination", destination).
					Msg("Candidate train cannot complete the journey")

				continue
			}

			return nil, err
		}

		return journey, nil
	}

	return nil, ErrNoJourney
}

// PlanArrivalWindow returns the journey landing closest to, but not after,
// the desired arrival time. Each successful candidate is scored by the
// elapsed minutes from its first-hop arrival to the desired time on that
// hop's own arrival date; non-positive scores already exceed the window and
// are discarded.
func (p *Planner) PlanArrivalWindow(ctx context.Context, origin string, destination string, notBefore timetable.Instant, arriveBy string) (*Journey, error) {
	origin = timetable.NormaliseStationName(origin)
	destination = timetable.NormaliseStationName(destination)

	legs, err := p.store.CandidateFirstLegs(ctx, origin, notBefore)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "listing first legs from %s", origin)
	}

	var bestJourney *Journey
	var bestScore int

	for _, leg := range legs {
		journey, err := p.commit(ctx, origin, destination, notBefore, leg)
		if err != nil {
			if errors.Is(err, routeplanner.ErrNoRoute) {
				log.Debug().
					Str("train", leg.TrainNumber).
					Str("origin", origin).
					Str("destination", destination).
					Msg("Candidate train cannot complete the journey")

				continue
			}

			return nil, err
		}

		desired := timetable.NewInstant(leg.Arrival.Date, arriveBy)
		score := timetable.TotalMinutes(leg.Arrival, desired)
		if score <= 0 {
			continue
		}

		if bestJourney == nil || score < bestScore {
			bestJourney = journey
			bestScore = score
		}
	}

	if bestJourney == nil {
		return nil, ErrNoJourney
	}

	return bestJourney, nil
}

// commit boards the given first leg and searches onward from its arrival
// station and instant, then stitches the committed leg onto the front of the
// resulting path.
func (p *Planner) commit(ctx context.Context, origin string, destination string, notBefore timetable.Instant, leg timetable.Connection) (*Journey, error) {
	firstStop := timetable.NormaliseStationName(leg.Destination)

	onward, err := p.engine.FindPath(ctx, firstStop, destination, leg.Arrival)
	if err != nil {
		return nil, err
	}

	nodes := make([]routeplanner.Node, 0, len(onward.Nodes)+1)
	nodes = append(nodes, routeplanner.Node{
		Station: origin,
		Arrival: notBefore,
	})
	nodes = append(nodes, routeplanner.Node{
		Station:     firstStop,
		TrainNumber: leg.TrainNumber,
		Departure:   leg.Departure,
		Arrival:     leg.Arrival,
	})
	nodes = append(nodes, onward.Nodes[1:]...)

	path := routeplanner.Path{
		Nodes: nodes,
		Cost:  timetable.DurationMinutes(leg.Departure, leg.Arrival) + onward.Cost,
	}

	totalMinutes := timetable.TotalMinutes(path.FirstDeparture(), path.FinalArrival())
	if totalMinutes < 0 {
		log.Warn().
			Str("departure", path.FirstDeparture().String()).
			Str("arrival", path.FinalArrival().String()).
			Msg("Journey instants are misordered")
	}

	return &Journey{
		Origin:       origin,
		Destination:  destination,
		FirstLeg:     leg,
		Path:         path,
		Departure:    leg.Departure,
		Arrival:      path.FinalArrival(),
		TotalMinutes: totalMinutes,
	}, nil
}
