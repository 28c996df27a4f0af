package routeplanner

import (
	"container/heap"
	"context"
	"errors"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	pkgerrors "github.com/pkg/errors"
)

// ErrNoRoute is returned when the frontier empties without reaching the
// destination. It is an expected outcome, not a failure.
var ErrNoRoute = errors.New("no route found")

// Planner runs a time-dependent label-correcting search over the implicit
// graph of scheduled connections. Each call allocates its own frontier and
// node arena, so a single Planner can serve independent searches.
type Planner struct {
	store timetable.Store
}

func NewPlanner(store timetable.Store) *Planner {
	return &Planner{
		store: store,
	}
}

// searchNode is a label in the arena: a station together with the instant it
// becomes available from, the connection that reached it, the best known
// cumulative cost and a back-reference to the parent label.
type searchNode struct {
	station   string
	train     string
	departure timetable.Instant
	arrival   timetable.Instant
	cost      float64
	parent    int
}

// FindPath finds the minimal-duration path from origin to destination using
// connections departing strictly after notBefore. Edge costs are the
// corrected elapsed minutes from the expanding label's instant to the
// connection's arrival, so waiting time at a station counts towards the cost.
func (p *Planner) FindPath(ctx context.Context, origin string, destination string, notBefore timetable.Instant) (Path, error) {
	origin = timetable.NormaliseStationName(origin)
	destination = timetable.NormaliseStationName(destination)

	arena := []searchNode{{
		station: origin,
		arrival: notBefore,
		parent:  -1,
	}}

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, frontierEntry{node: 0})

	// station -> arena index of its current live frontier label
	best := map[string]int{origin: 0}
	settled := map[string]bool{}

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Path{}, err
		}

		entry := heap.Pop(open).(frontierEntry)
		current := arena[entry.node]

		if settled[current.station] || best[current.station] != entry.node {
			// superseded by a cheaper label
			continue
		}

		if current.station == destination {
			return buildPath(arena, entry.node), nil
		}

		settled[current.station] = true
		delete(best, current.station)

		connections, err := p.store.DeparturesFrom(ctx, current.station, current.arrival)
		if err != nil {
			return Path{}, pkgerrors.Wrapf(err, "expanding %s", current.station)
		}

		for _, connection := range connections {
			next := timetable.NormaliseStationName(connection.Destination)
			if settled[next] {
				continue
			}

			// A train departing at the exact instant we become available is
			// notionally already missed.
			if !connection.Departure.After(current.arrival) {
				continue
			}

			cost := current.cost + timetable.DurationMinutes(current.arrival, connection.Arrival)

			if index, ok := best[next]; ok && cost >= arena[index].cost {
				continue
			}

			arena = append(arena, searchNode{
				station:   next,
				train:     connection.TrainNumber,
				departure: connection.Departure,
				arrival:   connection.Arrival,
				cost:      cost,
				parent:    entry.node,
			})
			best[next] = len(arena) - 1
			open.push(len(arena)-1, cost)
		}
	}

	return Path{}, ErrNoRoute
}
