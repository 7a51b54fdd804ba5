package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockItineraryHandler is a mock implementation of the itinerary routes.
type MockItineraryHandler struct{}

func (h *MockItineraryHandler) PlanItineraries(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "planned"}`))
}

func (h *MockItineraryHandler) Route(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "routed"}`))
}

type MockMetadataHandler struct{}

func (h *MockMetadataHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "options"}`))
}

type MockGeocodeHandler struct{}

func (h *MockGeocodeHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "suggestions"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockItineraryHandler{}, &MockMetadataHandler{}, &MockGeocodeHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Plan Itineraries",
			method:     "POST",
			path:       "/v1/itineraries/plan",
			statusCode: http.StatusOK,
			response:   `{"message": "planned"}`,
		},
		{
			name:       "Route",
			method:     "POST",
			path:       "/v1/itineraries/route",
			statusCode: http.StatusOK,
			response:   `{"message": "routed"}`,
		},
		{
			name:       "Metadata Options",
			method:     "GET",
			path:       "/v1/metadata/dinings",
			statusCode: http.StatusOK,
			response:   `{"message": "options"}`,
		},
		{
			name:       "Autocomplete",
			method:     "GET",
			path:       "/v1/geocode/autocomplete?text=koramangala",
			statusCode: http.StatusOK,
			response:   `{"message": "suggestions"}`,
		},
		{
			name:       "Plan With GET Rejected",
			method:     "GET",
			path:       "/v1/itineraries/plan",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
