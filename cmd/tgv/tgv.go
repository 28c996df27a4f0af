package main

import (
	"os"
	"time"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/api"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/dataimporter"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/itinerary"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/journeyplanner"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TGV_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TGV_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "tgv",
		Description: "Journey planner over the TGV timetable graph - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			dataimporter.RegisterCLI(),
			itinerary.RegisterCLI(),
			journeyplanner.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
