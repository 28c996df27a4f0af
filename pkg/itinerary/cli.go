package itinerary

import (
	"context"
	"fmt"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/database"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/journeyplanner"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "itinerary",
		Usage: "Compose multi-stage journeys across a list of waypoints",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list the preset itineraries",
				Action: func(c *cli.Context) error {
					for _, name := range PresetNames() {
						log.Info().
							Str("name", name).
							Strs("waypoints", Presets[name]).
							Msg("Preset itinerary")
					}

					return nil
				},
			},
			{
				Name:  "run",
				Usage: "compose an itinerary stage by stage",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "preset",
						Usage: "Name of a preset itinerary",
					},
					&cli.StringSliceFlag{
						Name:  "waypoint",
						Usage: "Waypoint station, repeatable; overrides --preset",
					},
					&cli.StringFlag{
						Name:     "date",
						Usage:    "Start date of the first stage (DD/MM/YYYY)",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					waypoints := c.StringSlice("waypoint")
					if len(waypoints) == 0 {
						preset, found := Presets[c.String("preset")]
						if !found {
							return fmt.Errorf("unknown preset %q", c.String("preset"))
						}
						waypoints = preset
					}

					if err := database.Connect(); err != nil {
						return err
					}
					ctx := context.Background()
					defer database.Disconnect(ctx)

					store := timetable.NewNeo4jStore(database.GlobalDriver, database.Database())
					composer := NewComposer(journeyplanner.NewPlanner(store))

					stages, err := composer.Compose(ctx, waypoints, c.String("date"))
					if err != nil {
						return err
					}

					for i, stage := range stages {
						if stage.Err != nil {
							log.Warn().
								Int("stage", i+1).
								Str("from", stage.From).
								Str("to", stage.To).
								Msg("Stage has no journey")

							continue
						}

						log.Info().
							Int("stage", i+1).
							Str("from", stage.From).
							Str("to", stage.To).
							Msg("Stage resolved")
						journeyplanner.LogJourney(stage.Journey)
					}

					return nil
				},
			},
		},
	}
}
