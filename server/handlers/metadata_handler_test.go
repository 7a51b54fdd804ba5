package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"dayout-server/models"
	"dayout-server/models/catalog"
)

func metadataRouter() *mux.Router {
	router := mux.NewRouter()
	handler := NewMetadataHandler()
	router.HandleFunc("/v1/metadata/{category}", handler.GetOptions).Methods("GET")
	return router
}

func TestGetOptions_KnownCategory(t *testing.T) {
	// Setup
	router := metadataRouter()
	req := httptest.NewRequest("GET", "/v1/metadata/dinings", nil)
	rr := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rr, req)

	// Assert
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var response models.MetadataResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !response.Success {
		t.Error("Expected success")
	}
	if response.Version != catalog.Version {
		t.Errorf("Expected version %s, got %s", catalog.Version, response.Version)
	}
	if len(response.Options["cuisines"]) == 0 {
		t.Error("Expected dining cuisines in options")
	}
	if len(response.Options["amenities"]) == 0 {
		t.Error("Expected common amenity filters merged into options")
	}
	if len(response.Options["crowdTolerance"]) == 0 {
		t.Error("Expected crowd tolerance merged into options")
	}
}

func TestGetOptions_UnknownCategory(t *testing.T) {
	// Setup
	router := metadataRouter()
	req := httptest.NewRequest("GET", "/v1/metadata/museums", nil)
	rr := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rr, req)

	// Assert
	if rr.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rr.Code)
	}
}

func TestGetOptions_DoesNotMutateCatalogTables(t *testing.T) {
	// Setup
	router := metadataRouter()

	// Act
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/v1/metadata/plays", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
	}

	// Assert
	if _, leaked := catalog.PlayOptions["amenities"]; leaked {
		t.Error("Common filters must never leak into the catalog tables")
	}
}
