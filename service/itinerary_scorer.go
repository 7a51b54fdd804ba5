package services

import (
	"encoding/json"
	"log"
	"regexp"
	"strconv"
	"strings"

	"dayout-server/api/groq"
	"dayout-server/config"
	"dayout-server/models"
)

// Scorer rates one itinerary against the user's constraints. Implementations
// must always return a result; there is no error path so one bad response can
// never fail a whole ranking batch.
type Scorer interface {
	Score(itinerary models.Itinerary, constraints models.Constraints) models.ScoreResult
}

// leadingInt recovers a bare integer from the start of a non-JSON reply.
var leadingInt = regexp.MustCompile(`^-?\d+`)

// ItineraryScorer scores itineraries via the Groq reasoning service with
// deterministic sampling. Transport failures, malformed documents, and
// out-of-range scores all degrade to a neutral default of
// config.SCORING_DEFAULT_SCORE.
type ItineraryScorer struct {
	groqApi  groq.GroqAPI
	compiler *PromptCompiler
	model    string
}

// NewItineraryScorer constructs an ItineraryScorer with its dependencies.
func NewItineraryScorer(groqApi groq.GroqAPI, compiler *PromptCompiler, model string) *ItineraryScorer {
	return &ItineraryScorer{
		groqApi:  groqApi,
		compiler: compiler,
		model:    model,
	}
}

// Score rates one itinerary from 0-100. Never fails: any provider or parse
// problem yields the neutral default with a diagnostic reasoning.
func (s *ItineraryScorer) Score(itinerary models.Itinerary, constraints models.Constraints) models.ScoreResult {
	systemPrompt := s.compiler.Compile(constraints)

	itineraryJSON, err := json.MarshalIndent(itinerary, "", "  ")
	if err != nil {
		log.Printf("[ItineraryScorer] Failed to serialize itinerary: %v", err)
		return neutralResult("itinerary serialization failed")
	}

	request := models.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0,
		TopP:        1,
		Messages: []models.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Itinerary:\n```json\n" + string(itineraryJSON) + "\n```\n\nScore this plan."},
		},
	}

	response, err := s.groqApi.ChatCompletion(request)
	if err != nil {
		log.Printf("[ItineraryScorer] Scoring request failed: %v", err)
		return neutralResult("scoring service unavailable")
	}
	if len(response.Choices) == 0 {
		log.Printf("[ItineraryScorer] Scoring response has no choices")
		return neutralResult("empty scoring response")
	}

	result := parseScoreDocument(response.Choices[0].Message.Content)
	log.Printf("[ItineraryScorer] Score: %d", result.Score)
	log.Printf("[ItineraryScorer] Reasoning: %s", result.Reasoning)
	return result
}

// parseScoreDocument tries strict JSON first, then falls back to extracting a
// bare integer from the raw text.
func parseScoreDocument(content string) models.ScoreResult {
	text := strings.TrimSpace(content)

	var doc struct {
		Score     json.Number `json:"score"`
		Reasoning string      `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(text), &doc); err == nil {
		score, convErr := doc.Score.Int64()
		if convErr != nil || score < 0 || score > 100 {
			log.Printf("[ItineraryScorer] Invalid score from AI: %s", doc.Score)
			return neutralResult("invalid score in response")
		}
		reasoning := doc.Reasoning
		if reasoning == "" {
			reasoning = "No reasoning provided"
		}
		return models.ScoreResult{Score: int(score), Reasoning: reasoning}
	}

	// Fallback: plain integer extraction
	log.Printf("[ItineraryScorer] Failed to parse JSON response, trying plain integer extraction")
	match := leadingInt.FindString(text)
	if match == "" {
		log.Printf("[ItineraryScorer] Invalid score from AI: %s", text)
		return neutralResult("unparseable scoring response")
	}
	score, err := strconv.Atoi(match)
	if err != nil || score < 0 || score > 100 {
		log.Printf("[ItineraryScorer] Invalid score from AI: %s", text)
		return neutralResult("score out of range")
	}
	return models.ScoreResult{Score: score, Reasoning: ""}
}

func neutralResult(reason string) models.ScoreResult {
	return models.ScoreResult{Score: config.SCORING_DEFAULT_SCORE, Reasoning: reason}
}
