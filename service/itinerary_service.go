package services

import (
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"dayout-server/config"
	redisdao "dayout-server/dao/redis"
	"dayout-server/models"
)

// ItineraryService owns the planning flow: resolve each slot to candidate
// venues, enumerate stop combinations not yet served in the session, annotate
// travel legs from one matrix call, rank with the batch ranker, and remember
// what was served so regeneration never repeats itself.
type ItineraryService struct {
	venueDao   *redisdao.RedisVenueDAO
	sessionDao *redisdao.RedisPlanSessionDAO
	routeSvc   *RouteService
	ranker     *BatchRanker
}

// NewItineraryService constructs an ItineraryService with its dependencies.
func NewItineraryService(
	venueDao *redisdao.RedisVenueDAO,
	sessionDao *redisdao.RedisPlanSessionDAO,
	routeSvc *RouteService,
	ranker *BatchRanker,
) *ItineraryService {
	return &ItineraryService{
		venueDao:   venueDao,
		sessionDao: sessionDao,
		routeSvc:   routeSvc,
		ranker:     ranker,
	}
}

// Plan generates, annotates, and ranks candidate itineraries for a request.
// A route failure is a hard failure of the whole request; scoring failures
// degrade per-itinerary inside the ranker.
func (s *ItineraryService) Plan(req models.PlanItineraryRequest) (*models.PlanItineraryResponse, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	profile := req.Profile
	if profile == "" {
		profile = config.DEFAULT_PROFILE
	}

	pools, err := s.resolveSlots(req.Constraints)
	if err != nil {
		return nil, err
	}

	totalCombinations := 1
	for _, pool := range pools {
		totalCombinations *= len(pool)
	}

	candidates, err := s.enumerateUnserved(sessionID, req.Constraints.PreferredTypes, pools)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		log.Printf("[ItineraryService] Session %s exhausted all %d combinations", sessionID, totalCombinations)
		return &models.PlanItineraryResponse{
			SessionID:         sessionID,
			NoNewPermutations: true,
			TotalCombinations: totalCombinations,
		}, nil
	}

	if err := s.annotateTravelLegs(req.Constraints.StartLocation, candidates, pools, profile); err != nil {
		return nil, err
	}

	ranked := s.ranker.Rank(candidates, req.Constraints, config.SCORING_BATCH_SIZE)
	if len(ranked) > config.RANKED_RESULTS_LIMIT {
		ranked = ranked[:config.RANKED_RESULTS_LIMIT]
	}

	// Only the served results are marked, so later passes can still surface
	// the unserved remainder.
	signatures := make([]string, len(ranked))
	for i, r := range ranked {
		signatures[i] = r.Itinerary.Signature()
	}
	if err := s.sessionDao.MarkServed(sessionID, signatures...); err != nil {
		return nil, err
	}
	if err := s.sessionDao.SetLatestResults(sessionID, ranked); err != nil {
		log.Printf("[ItineraryService] Failed to cache results for session %s: %v", sessionID, err)
	}

	return &models.PlanItineraryResponse{
		Success:           true,
		SessionID:         sessionID,
		Itineraries:       ranked,
		TotalCombinations: totalCombinations,
	}, nil
}

// resolveSlots builds the candidate venue pool for every slot. A fixed venue
// reference resolves to exactly that venue; a filter spec resolves to nearby
// catalog venues matching the filters, capped per slot.
func (s *ItineraryService) resolveSlots(c models.Constraints) ([][]models.Venue, error) {
	pools := make([][]models.Venue, len(c.PreferredTypes))
	for i, slot := range c.PreferredTypes {
		if slot.Fixed() {
			v, err := s.venueDao.GetVenue(slot.VenueID)
			if err != nil {
				return nil, fmt.Errorf("slot #%d: %w: %v", i+1, ErrSlotUnresolved, err)
			}
			pools[i] = []models.Venue{*v}
			continue
		}

		nearby, err := s.venueDao.GetNearbyVenues(c.StartLocation.Lat, c.StartLocation.Lng, config.VENUE_SEARCH_RADIUS_KM)
		if err != nil {
			return nil, err
		}

		var pool []models.Venue
		for _, v := range nearby {
			if v.Category != slot.Category {
				continue
			}
			if !venueMatchesFilters(v, slot.Category, *slot.Filters) {
				continue
			}
			pool = append(pool, v)
			if len(pool) == config.MAX_CANDIDATES_PER_SLOT {
				break
			}
		}
		if len(pool) == 0 {
			return nil, fmt.Errorf("slot #%d (%s): %w", i+1, slot.Category, ErrSlotUnresolved)
		}
		pools[i] = pool
	}
	return pools, nil
}

// enumerateUnserved walks the cartesian product of the slot pools in order
// and keeps combinations whose signature the session has not seen, up to the
// per-pass cap.
func (s *ItineraryService) enumerateUnserved(sessionID string, slots []models.TypeSlot, pools [][]models.Venue) ([]models.Itinerary, error) {
	indices := make([]int, len(pools))
	var candidates []models.Itinerary

	for {
		stops := make([]models.Stop, len(pools))
		for i, idx := range indices {
			stops[i] = models.Stop{Slot: slots[i], Venue: pools[i][idx]}
		}
		itinerary := models.Itinerary{Stops: stops}

		served, err := s.sessionDao.WasServed(sessionID, itinerary.Signature())
		if err != nil {
			return nil, err
		}
		if !served {
			candidates = append(candidates, itinerary)
			if len(candidates) == config.MAX_CANDIDATES_PER_PASS {
				break
			}
		}

		// Advance the odometer.
		pos := len(indices) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(pools[pos]) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return candidates, nil
}

// annotateTravelLegs fills each candidate's directional DistanceKm and
// TravelTimeMinutes from a single matrix over the start location plus every
// distinct pool venue. This is the presentation boundary: meters become km
// with one decimal, seconds become minutes rounded up.
func (s *ItineraryService) annotateTravelLegs(start models.Location, candidates []models.Itinerary, pools [][]models.Venue, profile string) error {
	locations := []models.Location{start}
	indexByVenue := map[string]int{}
	for _, pool := range pools {
		for _, v := range pool {
			if _, seen := indexByVenue[v.VenueID]; !seen {
				indexByVenue[v.VenueID] = len(locations)
				locations = append(locations, v.Location)
			}
		}
	}

	matrix, err := s.routeSvc.Matrix(locations, profile, nil, nil)
	if err != nil {
		return err
	}

	for ci := range candidates {
		prev := 0 // start location
		for si := range candidates[ci].Stops {
			venue := &candidates[ci].Stops[si].Venue
			cur := indexByVenue[venue.VenueID]
			meters := matrix.Distances[prev][cur]
			seconds := matrix.Durations[prev][cur]
			venue.DistanceKm = math.Round(meters/1000*10) / 10
			venue.TravelTimeMinutes = int(math.Ceil(seconds / 60))
			prev = cur
		}
	}
	return nil
}
