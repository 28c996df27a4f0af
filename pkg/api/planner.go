package api

import (
	"errors"

	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/journeyplanner"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type journeyRequest struct {
	Origin      string `validate:"required"`
	Destination string `validate:"required"`
	Date        string `validate:"required,datetime=02/01/2006"`
	Time        string `validate:"omitempty,datetime=15:04"`
	ArriveBy    string `validate:"omitempty,datetime=15:04"`
}

func PlannerRouter(router fiber.Router, planner *journeyplanner.Planner) {
	router.Get("/:origin/:destination", func(c *fiber.Ctx) error {
		return getJourneyPlan(c, planner)
	})
}

func getJourneyPlan(c *fiber.Ctx, planner *journeyplanner.Planner) error {
	request := journeyRequest{
		Origin:      c.Params("origin"),
		Destination: c.Params("destination"),
		Date:        c.Query("date"),
		Time:        c.Query("time", "00:00"),
		ArriveBy:    c.Query("arriveby"),
	}

	if err := validate.Struct(request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameters date (DD/MM/YYYY), time and arriveby (HH:MM) must be well formed",
		})
	}

	notBefore := timetable.NewInstant(request.Date, request.Time)

	var journey *journeyplanner.Journey
	var err error
	if request.ArriveBy != "" {
		journey, err = planner.PlanArrivalWindow(c.Context(), request.Origin, request.Destination, notBefore, request.ArriveBy)
	} else {
		journey, err = planner.PlanEarliest(c.Context(), request.Origin, request.Destination, notBefore)
	}

	if err != nil {
		if errors.Is(err, journeyplanner.ErrNoJourney) {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "No journey found",
			})
		}

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(journey)
}
