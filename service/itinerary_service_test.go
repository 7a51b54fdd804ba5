package services

import (
	"context"
	"errors"
	"testing"

	"dayout-server/api/openroute"
	redisdao "dayout-server/dao/redis"
	"dayout-server/db"
	"dayout-server/models"
)

func italianDining(id string, lat, lng float64) models.Venue {
	return models.Venue{
		VenueID:        id,
		Name:           "Dining " + id,
		Category:       models.CATEGORY_DININGS,
		Location:       models.Location{Lat: lat, Lng: lng},
		PricePerPerson: 600,
		Rating:         4.2,
		Cuisines:       []string{"Italian"},
		Type:           []string{"veg", "non-veg"},
	}
}

func comedyMovie(id string, lat, lng float64) models.Venue {
	return models.Venue{
		VenueID:        id,
		Name:           "Movie " + id,
		Category:       models.CATEGORY_MOVIES,
		Location:       models.Location{Lat: lat, Lng: lng},
		PricePerPerson: 400,
		Rating:         4.0,
		Genre:          []string{"Comedy"},
		Language:       []string{"Hindi"},
	}
}

func newTestItineraryService(t *testing.T, venues []models.Venue) *ItineraryService {
	t.Helper()
	mockClient := db.NewMockRedisClient(context.Background())
	venueDao := redisdao.NewRedisVenueDAO(mockClient)
	for _, v := range venues {
		if err := venueDao.UpsertVenue(v); err != nil {
			t.Fatalf("seeding venue %s: %v", v.VenueID, err)
		}
	}

	sessionDao := redisdao.NewRedisPlanSessionDAO(mockClient)
	routeSvc := NewRouteService(openroute.NewOpenRouteApiClientMock())
	ranker := NewBatchRanker(&countingScorer{scores: map[string]int{}})
	return NewItineraryService(venueDao, sessionDao, routeSvc, ranker)
}

func planRequest() models.PlanItineraryRequest {
	return models.PlanItineraryRequest{
		Constraints: models.Constraints{
			Budget:         5000,
			NumberOfPeople: 2,
			StartLocation:  models.Location{Lat: 12.9716, Lng: 77.5946},
			PreferredTypes: []models.TypeSlot{
				{Category: models.CATEGORY_DININGS, Filters: &models.FilterSpec{Cuisines: []string{"Italian"}}},
				{Category: models.CATEGORY_MOVIES, Filters: &models.FilterSpec{Genre: []string{"Comedy"}}},
			},
		},
	}
}

func TestPlan_RanksAllCombinations(t *testing.T) {
	svc := newTestItineraryService(t, []models.Venue{
		italianDining("din-1", 12.96, 77.60),
		italianDining("din-2", 12.94, 77.62),
		comedyMovie("mov-1", 12.98, 77.64),
	})

	response, err := svc.Plan(planRequest())
	if err != nil {
		t.Fatal(err)
	}

	if !response.Success {
		t.Fatal("expected success")
	}
	if response.SessionID == "" {
		t.Error("expected a generated session ID")
	}
	if response.TotalCombinations != 2 {
		t.Errorf("TotalCombinations = %d; want 2", response.TotalCombinations)
	}
	if len(response.Itineraries) != 2 {
		t.Fatalf("itineraries = %d; want 2", len(response.Itineraries))
	}

	seen := map[string]bool{}
	for _, ranked := range response.Itineraries {
		if len(ranked.Itinerary.Stops) != 2 {
			t.Fatalf("stops = %d; want 2", len(ranked.Itinerary.Stops))
		}
		if got := ranked.Itinerary.Stops[0].Venue.Category; got != models.CATEGORY_DININGS {
			t.Errorf("stop order broken: first stop category = %s", got)
		}
		seen[ranked.Itinerary.Signature()] = true
	}
	if !seen["din-1|mov-1"] || !seen["din-2|mov-1"] {
		t.Errorf("expected both dining combinations, got %v", seen)
	}
}

func TestPlan_AnnotatesDirectionalTravelLegs(t *testing.T) {
	svc := newTestItineraryService(t, []models.Venue{
		italianDining("din-1", 12.96, 77.60),
		comedyMovie("mov-1", 12.98, 77.64),
	})

	response, err := svc.Plan(planRequest())
	if err != nil {
		t.Fatal(err)
	}

	stops := response.Itineraries[0].Itinerary.Stops
	for i, stop := range stops {
		if stop.Venue.DistanceKm <= 0 {
			t.Errorf("stop %d DistanceKm = %v; want positive leg from previous stop", i, stop.Venue.DistanceKm)
		}
		if stop.Venue.TravelTimeMinutes <= 0 {
			t.Errorf("stop %d TravelTimeMinutes = %v; want positive", i, stop.Venue.TravelTimeMinutes)
		}
	}
}

func TestPlan_SecondPassExhaustsPermutations(t *testing.T) {
	svc := newTestItineraryService(t, []models.Venue{
		italianDining("din-1", 12.96, 77.60),
		italianDining("din-2", 12.94, 77.62),
		comedyMovie("mov-1", 12.98, 77.64),
	})

	first, err := svc.Plan(planRequest())
	if err != nil {
		t.Fatal(err)
	}
	if first.NoNewPermutations {
		t.Fatal("first pass must serve fresh combinations")
	}

	// Regenerate within the same session: everything was already served.
	req := planRequest()
	req.SessionID = first.SessionID
	second, err := svc.Plan(req)
	if err != nil {
		t.Fatal(err)
	}

	if !second.NoNewPermutations {
		t.Error("expected noNewPermutations once the session served every combination")
	}
	if second.SessionID != first.SessionID {
		t.Errorf("session changed: %s -> %s", first.SessionID, second.SessionID)
	}
}

func TestPlan_FreshSessionStartsClean(t *testing.T) {
	svc := newTestItineraryService(t, []models.Venue{
		italianDining("din-1", 12.96, 77.60),
		comedyMovie("mov-1", 12.98, 77.64),
	})

	first, err := svc.Plan(planRequest())
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Itineraries) != 1 {
		t.Fatalf("itineraries = %d; want 1", len(first.Itineraries))
	}

	// A new session has no served history.
	second, err := svc.Plan(planRequest())
	if err != nil {
		t.Fatal(err)
	}
	if second.NoNewPermutations {
		t.Error("a fresh session must not inherit another session's exclusions")
	}
}

func TestPlan_FixedVenueSlot(t *testing.T) {
	svc := newTestItineraryService(t, []models.Venue{
		italianDining("din-1", 12.96, 77.60),
		comedyMovie("mov-1", 12.98, 77.64),
	})

	req := planRequest()
	req.Constraints.PreferredTypes[1] = models.TypeSlot{
		Category: models.CATEGORY_MOVIES,
		VenueID:  "mov-1",
	}

	response, err := svc.Plan(req)
	if err != nil {
		t.Fatal(err)
	}
	if response.TotalCombinations != 1 {
		t.Errorf("TotalCombinations = %d; want 1 with a pinned venue", response.TotalCombinations)
	}
	if got := response.Itineraries[0].Itinerary.Stops[1].Venue.VenueID; got != "mov-1" {
		t.Errorf("pinned venue = %s; want mov-1", got)
	}
}

func TestPlan_UnresolvableSlotFails(t *testing.T) {
	svc := newTestItineraryService(t, []models.Venue{
		italianDining("din-1", 12.96, 77.60),
	})

	// No movie in the catalog matches the second slot.
	_, err := svc.Plan(planRequest())

	if !errors.Is(err, ErrSlotUnresolved) {
		t.Fatalf("err = %v; want ErrSlotUnresolved", err)
	}
}

func TestPlan_InvalidConstraintsFail(t *testing.T) {
	svc := newTestItineraryService(t, nil)

	req := planRequest()
	req.Constraints.Budget = -100

	if _, err := svc.Plan(req); err == nil {
		t.Fatal("expected validation error for negative budget")
	}
}
