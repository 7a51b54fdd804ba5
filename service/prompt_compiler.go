package services

import (
	"fmt"
	"strconv"
	"strings"

	"dayout-server/models"
)

// singularNames maps wire category names to the singular used in directives.
var singularNames = map[string]string{
	models.CATEGORY_DININGS:    "dining",
	models.CATEGORY_MOVIES:     "movie",
	models.CATEGORY_EVENTS:     "event",
	models.CATEGORY_ACTIVITIES: "activity",
	models.CATEGORY_PLAYS:      "play",
}

const scoringPromptTemplate = `You are a precise itinerary scoring engine. %s

Analyze the itinerary object and rate it from 0-100 based on the user's intent. For context, distanceKm represents the distance from the previous location, and travelTimeMinutes represents the travel time from the previous location.

Each venue has: name, description, location, pricePerPerson, duration, availableTimeStart, availableTimeEnd, distanceKm, travelTimeMinutes, and amenities (wifi, washroom, wheelchair, parking, rating). Type-specific fields: dinings (type, cuisines, alcohol), movies (genre, language, format, cast), events (type, venue), activities (type, venue, intensity), plays (type, venue, intensity, cafe). Consider all venue details and type-specific fields for scoring. Provide detailed reasoning for the score.

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "score": <integer 0-100>,
  "reasoning": "<detailed explanation with specific constraint analysis and weight distribution>"
}`

// PromptCompiler renders a user's structural constraints into the scoring
// directive. Pure: the same constraints always produce the identical string,
// so prompts are reproducible independent of the remote scorer.
type PromptCompiler struct {
}

func NewPromptCompiler() *PromptCompiler {
	return &PromptCompiler{}
}

// Compile builds the full system prompt for one scoring request.
func (pc *PromptCompiler) Compile(constraints models.Constraints) string {
	clauses := pc.constraintClauses(constraints)

	constraintsText := "Evaluate all aspects."
	if len(clauses) > 0 {
		constraintsText = "Evaluate based on: " + strings.Join(clauses, ", ") + "."
	}

	return fmt.Sprintf(scoringPromptTemplate, constraintsText)
}

func (pc *PromptCompiler) constraintClauses(c models.Constraints) []string {
	var clauses []string

	if c.Budget > 0 {
		clauses = append(clauses, fmt.Sprintf("budget (₹%d for %d people)", c.Budget, c.NumberOfPeople))
	}

	if len(c.TravelTolerance) > 0 {
		clauses = append(clauses, fmt.Sprintf("travel tolerance: %s (evaluate travel times accordingly)",
			strings.Join(c.TravelTolerance, ", ")))
	}

	if c.ExtraInfo != "" {
		clauses = append(clauses, fmt.Sprintf("user preferences: %q (match against venue name, description, type, cuisines, genre, and other attributes for scoring)",
			c.ExtraInfo))
	}

	for i, slot := range c.PreferredTypes {
		if slot.Filters == nil {
			continue
		}
		filters := slotFilterClauses(slot.Category, *slot.Filters)
		if len(filters) == 0 {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s #%d (%s)",
			singularNames[slot.Category], i+1, strings.Join(filters, "; ")))
	}

	return clauses
}

// slotFilterClauses lists only the filters actually present, restricted to
// the keys whitelisted for the category, then the common filters.
func slotFilterClauses(category string, f models.FilterSpec) []string {
	var out []string

	appendList := func(name string, values []string) {
		if len(values) > 0 {
			out = append(out, name+": "+strings.Join(values, ","))
		}
	}
	appendBool := func(name string, value *bool) {
		if value != nil {
			out = append(out, fmt.Sprintf("%s: %t", name, *value))
		}
	}

	switch category {
	case models.CATEGORY_DININGS:
		appendList("type", f.Type)
		appendList("cuisines", f.Cuisines)
		appendBool("alcohol", f.Alcohol)
	case models.CATEGORY_EVENTS:
		appendList("type", f.Type)
		appendList("venue", f.Venue)
	case models.CATEGORY_ACTIVITIES:
		appendList("type", f.Type)
		appendList("venue", f.Venue)
		appendList("intensity", f.Intensity)
	case models.CATEGORY_PLAYS:
		appendList("type", f.Type)
		appendList("venue", f.Venue)
		appendList("intensity", f.Intensity)
		appendBool("cafe", f.Cafe)
	case models.CATEGORY_MOVIES:
		appendList("genre", f.Genre)
		appendList("language", f.Language)
		appendList("format", f.Format)
		appendList("cast", f.Cast)
	}

	appendBool("wifi", f.Wifi)
	appendBool("washroom", f.Washroom)
	appendBool("wheelchair", f.Wheelchair)
	appendBool("parking", f.Parking)
	if f.Rating != nil {
		out = append(out, "rating: "+strconv.FormatFloat(*f.Rating, 'f', -1, 64)+"+")
	}
	appendList("crowd tolerance", f.CrowdTolerance)

	return out
}
