package main

import (
	"fmt"
	"log"

	"dayout-server/config"
	"dayout-server/di"
	"dayout-server/models"
	"dayout-server/util"
)

func testRouteService(container *di.Container) {
	log.Println("Running: testRouteService")
	locations := []models.Location{
		{Lat: 12.9716, Lng: 77.5946}, // MG Road
		{Lat: 12.9352, Lng: 77.6245}, // Koramangala
		{Lat: 12.9784, Lng: 77.6408}, // Indiranagar
	}

	matrix, err := container.RouteService.Matrix(locations, config.DEFAULT_PROFILE, nil, nil)
	if err != nil {
		log.Println("Error while running testRouteService: ", err)
		return
	}
	for i, row := range matrix.Distances {
		fmt.Printf("distances[%d]: %v\n", i, row)
	}

	geometry, err := container.RouteService.Geometry(locations, config.DEFAULT_PROFILE)
	if err != nil {
		log.Println("Error computing route geometry: ", err)
		return
	}
	util.PlotRouteGeometry(*geometry, "route_map.html")
}

func testPlanItineraries(container *di.Container) {
	log.Println("Running: testPlanItineraries")
	rating := 4.0
	request := models.PlanItineraryRequest{
		Constraints: models.Constraints{
			Budget:          5000,
			NumberOfPeople:  2,
			TravelTolerance: []string{"low", "medium"},
			StartLocation:   models.Location{Lat: 12.9716, Lng: 77.5946},
			PreferredTypes: []models.TypeSlot{
				{Category: models.CATEGORY_DININGS, Filters: &models.FilterSpec{Cuisines: []string{"Italian"}, Rating: &rating}},
				{Category: models.CATEGORY_MOVIES, Filters: &models.FilterSpec{Genre: []string{"Comedy"}}},
			},
		},
	}

	response, err := container.ItineraryService.Plan(request)
	if err != nil {
		log.Println("Error while running testPlanItineraries: ", err)
		return
	}
	fmt.Printf("session=%s combinations=%d results=%d\n",
		response.SessionID, response.TotalCombinations, len(response.Itineraries))
	for _, ranked := range response.Itineraries {
		fmt.Printf("score=%d signature=%s\n", ranked.Score, ranked.Itinerary.Signature())
	}
}

func main() {
	container := di.NewContainer("prod")

	// testRouteService(container)
	// testPlanItineraries(container)

	fmt.Println("starting server!")
	container.DayOutHttpServer.Start()
}
