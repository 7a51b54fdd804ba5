package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// OpenRouteService endpoints
const OPENROUTE_ENDPOINT_BASE = "https://api.openrouteservice.org"
const OPENROUTE_API_KEY_ENV = "OPENROUTE_API_KEY"

// Transport profiles accepted by the routing provider. Passed through verbatim;
// an unknown profile is the provider's error to report.
const PROFILE_DRIVING_CAR = "driving-car"
const PROFILE_CYCLING_ELECTRIC = "cycling-electric"
const PROFILE_FOOT_WALKING = "foot-walking"
const DEFAULT_PROFILE = PROFILE_DRIVING_CAR

// Groq reasoning service
const GROQ_ENDPOINT_BASE_V1 = "https://api.groq.com/openai/v1"
const GROQ_API_KEY_ENV = "GROQ_API_KEY"
const GROQ_MODEL_ENV = "GROQ_MODEL"
const GROQ_DEFAULT_MODEL = "llama-3.3-70b-versatile"

// Scoring config
const SCORING_BATCH_SIZE = 5
const SCORING_DEFAULT_SCORE = 50

// Itinerary generation config
const MAX_CANDIDATES_PER_SLOT = 4
const MAX_CANDIDATES_PER_PASS = 12
const RANKED_RESULTS_LIMIT = 4
const VENUE_SEARCH_RADIUS_KM = 25.0

// Autocomplete config
const AUTOCOMPLETE_SUGGESTION_LIMIT = 5
const AUTOCOMPLETE_COUNTRY = "IN"
const AUTOCOMPLETE_MIN_QUERY_LEN = 2

// Server config
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CHAT_COMPLETION_RESOURCE = "chat_completion.json"
const VENUES_CATALOG_RESOURCE = "venues_catalog.json"

// GroqAPIKey reads the reasoning-service key from the environment.
func GroqAPIKey() string {
	return os.Getenv(GROQ_API_KEY_ENV)
}

// GroqModel returns the configured model, falling back to the default.
func GroqModel() string {
	if m := os.Getenv(GROQ_MODEL_ENV); m != "" {
		return m
	}
	return GROQ_DEFAULT_MODEL
}

// OpenRouteAPIKey reads the routing-provider key from the environment.
func OpenRouteAPIKey() string {
	return os.Getenv(OPENROUTE_API_KEY_ENV)
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
