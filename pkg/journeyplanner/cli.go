package journeyplanner

import (
	"context"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/database"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "journey-planner",
		Usage: "Find journeys over the scheduled timetable graph",
		Subcommands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "plan a single journey between two stations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "Departure station name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "Arrival station name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "date",
						Usage:    "Departure date (DD/MM/YYYY)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "time",
						Value: "00:00",
						Usage: "Earliest departure time (HH:MM)",
					},
					&cli.StringFlag{
						Name:  "arrive-by",
						Usage: "Desired arrival time (HH:MM); picks the journey landing closest before it",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Dump the raw resolved path",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					ctx := context.Background()
					defer database.Disconnect(ctx)

					store := timetable.NewNeo4jStore(database.GlobalDriver, database.Database())
					planner := NewPlanner(store)

					notBefore := timetable.NewInstant(c.String("date"), c.String("time"))

					var journey *Journey
					var err error
					if arriveBy := c.String("arrive-by"); arriveBy != "" {
						journey, err = planner.PlanArrivalWindow(ctx, c.String("from"), c.String("to"), notBefore, arriveBy)
					} else {
						journey, err = planner.PlanEarliest(ctx, c.String("from"), c.String("to"), notBefore)
					}
					if err != nil {
						return err
					}

					if c.Bool("debug") {
						pretty.Println(journey.Path)
					}

					LogJourney(journey)

					return nil
				},
			},
		},
	}
}

// LogJourney writes a resolved journey to the log, one line per leg.
func LogJourney(journey *Journey) {
	log.Info().
		Str("origin", journey.Origin).
		Str("destination", journey.Destination).
		Str("train", journey.FirstLeg.TrainNumber).
		Str("departure", journey.Departure.String()).
		Str("arrival", journey.Arrival.String()).
		Int("minutes", journey.TotalMinutes).
		Msg("Journey found")

	for i := 1; i < len(journey.Path.Nodes); i++ {
		leg := journey.Path.Nodes[i]

		log.Info().
			Str("from", journey.Path.Nodes[i-1].Station).
			Str("to", leg.Station).
			Str("train", leg.TrainNumber).
			Str("departure", leg.Departure.String()).
			Str("arrival", leg.Arrival.String()).
			Msgf("Leg %d", i)
	}
}
