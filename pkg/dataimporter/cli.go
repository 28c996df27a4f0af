package dataimporter

import (
	"context"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/database"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const insertBatchSize = 1000

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Import a timetable export into the graph",
		Subcommands: []*cli.Command{
			{
				Name:  "file",
				Usage: "import a semicolon separated timetable export",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Path of the timetable CSV file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					ctx := context.Background()
					defer database.Disconnect(ctx)

					store := timetable.NewNeo4jStore(database.GlobalDriver, database.Database())

					return Import(ctx, store, c.String("file"))
				},
			},
		},
	}
}

// Import loads the export file, creates the stations and inserts the
// scheduled segments in batches.
func Import(ctx context.Context, store *timetable.Neo4jStore, path string) error {
	rows, err := ParseScheduleFile(path)
	if err != nil {
		return err
	}
	log.Info().Str("file", path).Int("rows", len(rows)).Msg("Loaded timetable export")

	stations := Stations(rows)
	for _, station := range stations {
		if err := store.InsertStation(ctx, station); err != nil {
			return err
		}
	}
	log.Info().Int("stations", len(stations)).Msg("Inserted stations")

	segments := BuildSegments(rows)
	for start := 0; start < len(segments); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(segments) {
			end = len(segments)
		}

		if err := store.InsertSegments(ctx, segments[start:end]); err != nil {
			return err
		}

		log.Debug().Int("inserted", end).Int("total", len(segments)).Msg("Inserting segments")
	}
	log.Info().Int("segments", len(segments)).Msg("Inserted scheduled segments")

	return nil
}
