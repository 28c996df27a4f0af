package api

import (
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/database"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/itinerary"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/journeyplanner"
	"github.com/DumeM2b/Projet-TGV-Neo4j/pkg/timetable"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string) error {
	store := timetable.NewNeo4jStore(database.GlobalDriver, database.Database())
	planner := journeyplanner.NewPlanner(store)
	composer := itinerary.NewComposer(planner)

	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", apiVersion)

	PlannerRouter(group.Group("/planner"), planner)
	ItinerariesRouter(group.Group("/itineraries"), composer)

	return webApp.Listen(listen)
}

func apiVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": "1.0",
	})
}
