package routeplanner

import (
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
)

// Node is one station of a resolved path, carrying the connection that was
// used to reach it. The first node of a path has no train: its Arrival is the
// instant the search was seeded with.
type Node struct {
	Station     string
	TrainNumber string
	Departure   timetable.Instant
	Arrival     timetable.Instant
}

// Path is an ordered sequence of nodes from origin to destination. Cost is
// the cumulative corrected duration in minutes accumulated by the search; it
// includes time spent waiting at each station for the chosen connection.
type Path struct {
	Nodes []Node
	Cost  float64
}

func (p Path) Origin() Node {
	return p.Nodes[0]
}

func (p Path) Final() Node {
	return p.Nodes[len(p.Nodes)-1]
}

// FirstDeparture is the departure instant of the first train taken. A
// single-node path never boards a train, so the seed instant is returned.
func (p Path) FirstDeparture() timetable.Instant {
	if len(p.Nodes) < 2 {
		return p.Origin().Arrival
	}

	return p.Nodes[1].Departure
}

func (p Path) FinalArrival() timetable.Instant {
	return p.Final().Arrival
}

func buildPath(arena []searchNode, last int) Path {
	nodes := []Node{}
	for index := last; index >= 0; index = arena[index].parent {
		nodes = append(nodes, Node{
			Station:     arena[index].station,
			TrainNumber: arena[index].train,
			Departure:   arena[index].departure,
			Arrival:     arena[index].arrival,
		})
	}

	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{
		Nodes: nodes,
		Cost:  arena[last].cost,
	}
}
