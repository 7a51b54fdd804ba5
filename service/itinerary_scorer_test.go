package services

import (
	"errors"
	"testing"

	"dayout-server/models"
)

// stubGroqAPI returns a canned completion or error.
type stubGroqAPI struct {
	content   string
	err       error
	noChoices bool
	lastReq   models.ChatCompletionRequest
}

func (s *stubGroqAPI) SetCredentials(apiKey string) {}

func (s *stubGroqAPI) ChatCompletion(request models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
	s.lastReq = request
	if s.err != nil {
		return nil, s.err
	}
	if s.noChoices {
		return &models.ChatCompletionResponse{}, nil
	}
	return &models.ChatCompletionResponse{
		Choices: []models.ChatCompletionChoice{
			{Message: models.ChatMessage{Role: "assistant", Content: s.content}},
		},
	}, nil
}

func testItinerary() models.Itinerary {
	return models.Itinerary{Stops: []models.Stop{
		{
			Slot:  models.TypeSlot{Category: models.CATEGORY_DININGS, Filters: &models.FilterSpec{}},
			Venue: models.Venue{VenueID: "din-001", Name: "Via Milano", Location: models.Location{Lat: 12.97, Lng: 77.64}},
		},
	}}
}

func newTestScorer(stub *stubGroqAPI) *ItineraryScorer {
	return NewItineraryScorer(stub, NewPromptCompiler(), "test-model")
}

func TestScore_ValidJSONResponse(t *testing.T) {
	stub := &stubGroqAPI{content: `{"score": 84, "reasoning": "fits budget and cuisine"}`}
	scorer := newTestScorer(stub)

	result := scorer.Score(testItinerary(), basicConstraints())

	if result.Score != 84 {
		t.Errorf("Score = %d; want 84", result.Score)
	}
	if result.Reasoning != "fits budget and cuisine" {
		t.Errorf("Reasoning = %q", result.Reasoning)
	}

	// the request must use deterministic sampling
	if stub.lastReq.Temperature != 0 || stub.lastReq.TopP != 1 {
		t.Errorf("sampling = (%v, %v); want (0, 1)", stub.lastReq.Temperature, stub.lastReq.TopP)
	}
	if len(stub.lastReq.Messages) != 2 {
		t.Fatalf("messages = %d; want 2", len(stub.lastReq.Messages))
	}
	if stub.lastReq.Messages[0].Role != "system" || stub.lastReq.Messages[1].Role != "user" {
		t.Errorf("unexpected message roles: %+v", stub.lastReq.Messages)
	}
}

func TestScore_BareIntegerFallback(t *testing.T) {
	stub := &stubGroqAPI{content: "85"}
	scorer := newTestScorer(stub)

	result := scorer.Score(testItinerary(), basicConstraints())

	if result.Score != 85 {
		t.Errorf("Score = %d; want 85 from plain integer extraction", result.Score)
	}
}

func TestScore_LeadingIntegerInProse(t *testing.T) {
	stub := &stubGroqAPI{content: "73 would be my overall rating for this plan"}
	scorer := newTestScorer(stub)

	result := scorer.Score(testItinerary(), basicConstraints())

	if result.Score != 73 {
		t.Errorf("Score = %d; want 73", result.Score)
	}
}

func TestScore_UnparseableResponseDefaultsToNeutral(t *testing.T) {
	stub := &stubGroqAPI{content: "entirely not json"}
	scorer := newTestScorer(stub)

	result := scorer.Score(testItinerary(), basicConstraints())

	if result.Score != 50 {
		t.Errorf("Score = %d; want neutral 50", result.Score)
	}
}

func TestScore_OutOfRangeDefaultsToNeutral(t *testing.T) {
	for _, content := range []string{
		`{"score": 150, "reasoning": "too enthusiastic"}`,
		`{"score": -10, "reasoning": "too harsh"}`,
		"500",
	} {
		stub := &stubGroqAPI{content: content}
		scorer := newTestScorer(stub)

		result := scorer.Score(testItinerary(), basicConstraints())

		if result.Score != 50 {
			t.Errorf("content %q: Score = %d; want 50", content, result.Score)
		}
	}
}

func TestScore_TransportFailureDefaultsToNeutral(t *testing.T) {
	stub := &stubGroqAPI{err: errors.New("connection refused")}
	scorer := newTestScorer(stub)

	result := scorer.Score(testItinerary(), basicConstraints())

	if result.Score != 50 {
		t.Errorf("Score = %d; want neutral 50 on transport failure", result.Score)
	}
}

func TestScore_EmptyChoicesDefaultsToNeutral(t *testing.T) {
	stub := &stubGroqAPI{noChoices: true}
	scorer := newTestScorer(stub)

	result := scorer.Score(testItinerary(), basicConstraints())

	if result.Score != 50 {
		t.Errorf("Score = %d; want neutral 50 on empty choices", result.Score)
	}
}

func TestScore_MissingReasoningGetsPlaceholder(t *testing.T) {
	stub := &stubGroqAPI{content: `{"score": 60}`}
	scorer := newTestScorer(stub)

	result := scorer.Score(testItinerary(), basicConstraints())

	if result.Score != 60 {
		t.Errorf("Score = %d; want 60", result.Score)
	}
	if result.Reasoning != "No reasoning provided" {
		t.Errorf("Reasoning = %q; want placeholder", result.Reasoning)
	}
}
