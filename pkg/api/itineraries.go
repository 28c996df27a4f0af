package api

import (
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/itinerary"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/journeyplanner"
	"github.com/gofiber/fiber/v2"
)

type itineraryStage struct {
	From    string
	To      string
	Journey *journeyplanner.Journey
	Error   string
}

func ItinerariesRouter(router fiber.Router, composer *itinerary.Composer) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(itinerary.PresetNames())
	})

	router.Get("/:name", func(c *fiber.Ctx) error {
		return getItinerary(c, composer)
	})
}

func getItinerary(c *fiber.Ctx, composer *itinerary.Composer) error {
	waypoints, found := itinerary.Presets[c.Params("name")]
	if !found {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Unknown itinerary",
		})
	}

	request := struct {
		Date string `validate:"required,datetime=02/01/2006"`
	}{
		Date: c.Query("date"),
	}
	if err := validate.Struct(request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter date should be a DD/MM/YYYY date",
		})
	}

	stages, err := composer.Compose(c.Context(), waypoints, request.Date)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response := make([]itineraryStage, 0, len(stages))
	for _, stage := range stages {
		item := itineraryStage{
			From:    stage.From,
			To:      stage.To,
			Journey: stage.Journey,
		}
		if stage.Err != nil {
			item.Error = stage.Err.Error()
		}
		response = append(response, item)
	}

	return c.JSON(response)
}
