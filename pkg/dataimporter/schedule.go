package dataimporter

import (
	"encoding/csv"
	"io"
	"os"
	"sort"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// ScheduleRow is one record of the cleaned TGV timetable export. The file is
// semicolon separated and lists one origin/destination pair per train stop.
type ScheduleRow struct {
	Date            string `csv:"DATE"`
	TrainNumber     string `csv:"TRAIN_NO"`
	OriginCode      string `csv:"Origine IATA"`
	OriginName      string `csv:"Origine"`
	DestinationCode string `csv:"Destination IATA"`
	DestinationName string `csv:"Destination"`
	Departure       string `csv:"Heure_depart"`
	Arrival         string `csv:"Heure_arrivee"`
}

func ParseScheduleFile(path string) ([]ScheduleRow, error) {
	// Semicolon separator, and allow the naughty records with missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = ';'
		r.FieldsPerRecord = -1
		return r
	})

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening schedule file")
	}
	defer file.Close()

	var rows []ScheduleRow
	if err := gocsv.Unmarshal(file, &rows); err != nil {
		return nil, errors.Wrap(err, "parsing schedule file")
	}

	return rows, nil
}

// Stations collects the station code to display name dictionary from both
// sides of every row.
func Stations(rows []ScheduleRow) []timetable.Station {
	names := map[string]string{}
	for _, row := range rows {
		if row.OriginCode != "" {
			names[row.OriginCode] = row.OriginName
		}
		if row.DestinationCode != "" {
			names[row.DestinationCode] = row.DestinationName
		}
	}

	stations := make([]timetable.Station, 0, len(names))
	for code, name := range names {
		stations = append(stations, timetable.Station{Code: code, Name: name})
	}
	sort.Slice(stations, func(i, j int) bool {
		return stations[i].Code < stations[j].Code
	})

	return stations
}

type groupKey struct {
	date  string
	train string
}

type stopEvent struct {
	code    string
	time    string
	nextDay bool
}

// BuildSegments turns the per-stop rows into directed scheduled segments. The
// rows of one (date, train) group form a chain of stops; a stop whose arrival
// clock-time precedes its departure clock-time happens after midnight, so it
// and every date it contributes is shifted to the next day before the chain
// is stitched into consecutive pairs.
func BuildSegments(rows []ScheduleRow) []timetable.Segment {
	grouped := map[groupKey][]ScheduleRow{}
	order := []groupKey{}
	for _, row := range rows {
		key := groupKey{date: row.Date, train: row.TrainNumber}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], row)
	}

	segments := []timetable.Segment{}

	for _, key := range order {
		stops := []stopEvent{}
		for _, row := range grouped[key] {
			if row.Departure == "" || row.Arrival == "" {
				continue
			}

			overnight := row.Departure > row.Arrival
			stops = append(stops, stopEvent{code: row.OriginCode, time: row.Departure})
			stops = append(stops, stopEvent{code: row.DestinationCode, time: row.Arrival, nextDay: overnight})
		}

		// Same-day stops in clock order first, then the post-midnight tail
		sort.SliceStable(stops, func(i, j int) bool {
			if stops[i].nextDay != stops[j].nextDay {
				return !stops[i].nextDay
			}
			return stops[i].time < stops[j].time
		})

		nextDate, err := timetable.AddDays(key.date, 1)
		if err != nil {
			continue
		}

		for i := 0; i < len(stops)-1; i++ {
			if stops[i].code == stops[i+1].code {
				// dwell at an intermediate station, not a movement
				continue
			}

			departureDate := key.date
			if stops[i].nextDay {
				departureDate = nextDate
			}
			arrivalDate := key.date
			if stops[i+1].nextDay {
				arrivalDate = nextDate
			}

			segments = append(segments, timetable.Segment{
				OriginCode:      stops[i].code,
				DestinationCode: stops[i+1].code,
				TrainNumber:     key.train,
				Departure:       timetable.NewInstant(departureDate, stops[i].time),
				Arrival:         timetable.NewInstant(arrivalDate, stops[i+1].time),
			})
		}
	}

	return segments
}
