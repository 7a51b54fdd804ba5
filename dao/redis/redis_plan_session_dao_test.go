package redis

import (
	"context"
	"testing"

	"dayout-server/db"
	"dayout-server/models"
)

func TestRedisPlanSessionDAO_MarkAndCheckServed(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPlanSessionDAO(mockClient)

	// Act
	if err := dao.MarkServed("session-1", "din-1|mov-1", "din-2|mov-1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert
	served, err := dao.WasServed("session-1", "din-1|mov-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !served {
		t.Error("Expected din-1|mov-1 to be served")
	}

	served, err = dao.WasServed("session-1", "din-1|mov-2")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if served {
		t.Error("Expected din-1|mov-2 to be unserved")
	}

	count, err := dao.ServedCount("session-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 served signatures, got %d", count)
	}
}

func TestRedisPlanSessionDAO_SessionsAreIsolated(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPlanSessionDAO(mockClient)

	if err := dao.MarkServed("session-a", "din-1|mov-1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Act
	served, err := dao.WasServed("session-b", "din-1|mov-1")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if served {
		t.Error("Expected a different session to have no served history")
	}
}

func TestRedisPlanSessionDAO_MarkServed_NoSignatures(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPlanSessionDAO(mockClient)

	// Act
	err := dao.MarkServed("session-1")

	// Assert
	if err != nil {
		t.Fatalf("Expected marking zero signatures to be a no-op, got %v", err)
	}
}

func TestRedisPlanSessionDAO_LatestResultsRoundTrip(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPlanSessionDAO(mockClient)

	results := []models.RankedItinerary{
		{
			Itinerary: models.Itinerary{Stops: []models.Stop{
				{Venue: models.Venue{VenueID: "din-1", Name: "Dining One"}},
				{Venue: models.Venue{VenueID: "mov-1", Name: "Movie One"}},
			}},
			Score:     82,
			Reasoning: "Fits the budget with a short hop between stops",
		},
	}

	// Act
	if err := dao.SetLatestResults("session-1", results); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got, err := dao.GetLatestResults("session-1")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(got))
	}
	if got[0].Score != 82 {
		t.Errorf("Expected score 82, got %d", got[0].Score)
	}
	if got[0].Itinerary.Signature() != "din-1|mov-1" {
		t.Errorf("Expected signature din-1|mov-1, got %s", got[0].Itinerary.Signature())
	}
}

func TestRedisPlanSessionDAO_GetLatestResults_Missing(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPlanSessionDAO(mockClient)

	// Act
	_, err := dao.GetLatestResults("unknown-session")

	// Assert
	if err == nil {
		t.Fatal("Expected an error for a session with no cached results")
	}
}
