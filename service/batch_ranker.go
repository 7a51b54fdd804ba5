package services

import (
	"log"
	"sort"
	"sync"

	"dayout-server/config"
	"dayout-server/models"
)

// BatchRanker fans itineraries out to the scorer in fixed-size batches and
// returns them sorted best-first. At most batchSize scoring calls are in
// flight at any instant; each batch completes fully before the next starts.
type BatchRanker struct {
	scorer Scorer
}

// NewBatchRanker constructs a BatchRanker over the given scorer.
func NewBatchRanker(scorer Scorer) *BatchRanker {
	return &BatchRanker{scorer: scorer}
}

// Rank scores every itinerary and returns (itinerary, score) pairs sorted by
// score descending. The sort is stable, so ties keep their input order. The
// output is always a permutation of the input: scorer fallbacks yield a
// low-confidence score rather than dropping an entry.
func (r *BatchRanker) Rank(itineraries []models.Itinerary, constraints models.Constraints, batchSize int) []models.RankedItinerary {
	if batchSize <= 0 {
		batchSize = config.SCORING_BATCH_SIZE
	}

	results := make([]models.RankedItinerary, len(itineraries))

	for start := 0; start < len(itineraries); start += batchSize {
		end := start + batchSize
		if end > len(itineraries) {
			end = len(itineraries)
		}

		log.Printf("[BatchRanker] Scoring batch %d-%d of %d", start, end-1, len(itineraries))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				scored := r.scorer.Score(itineraries[idx], constraints)
				results[idx] = models.RankedItinerary{
					Itinerary: itineraries[idx],
					Score:     scored.Score,
					Reasoning: scored.Reasoning,
				}
			}(i)
		}
		wg.Wait()
	}

	// Final order depends only on scores and original relative order, never
	// on completion order of the concurrent calls.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}
