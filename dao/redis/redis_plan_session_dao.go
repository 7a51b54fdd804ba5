package redis

import (
	"encoding/json"
	"fmt"

	"dayout-server/db"
	"dayout-server/models"
)

const PLAN_SESSION_SERVED_KEY_FORMAT_V1 = "plan_session_served_v1:%s"
const PLAN_SESSION_RESULTS_KEY_FORMAT_V1 = "plan_session_results_v1:%s"

// RedisPlanSessionDAO tracks per-session planning state: the permutation
// signatures already served (so regeneration never repeats a stop ordering)
// and the latest ranked results shown to the user.
type RedisPlanSessionDAO struct {
	client db.RedisClient
}

// NewRedisPlanSessionDAO initializes a RedisPlanSessionDAO with the Redis client.
func NewRedisPlanSessionDAO(client db.RedisClient) *RedisPlanSessionDAO {
	return &RedisPlanSessionDAO{client: client}
}

// MarkServed records itinerary signatures as served for the session.
func (dao *RedisPlanSessionDAO) MarkServed(sessionID string, signatures ...string) error {
	if len(signatures) == 0 {
		return nil
	}
	key := fmt.Sprintf(PLAN_SESSION_SERVED_KEY_FORMAT_V1, sessionID)
	if err := dao.client.SAdd(key, signatures...); err != nil {
		return fmt.Errorf("failed to mark served signatures for session %s: %w", sessionID, err)
	}
	return nil
}

// WasServed reports whether a signature was already served in the session.
func (dao *RedisPlanSessionDAO) WasServed(sessionID, signature string) (bool, error) {
	key := fmt.Sprintf(PLAN_SESSION_SERVED_KEY_FORMAT_V1, sessionID)
	served, err := dao.client.SIsMember(key, signature)
	if err != nil {
		return false, fmt.Errorf("failed to check served signature for session %s: %w", sessionID, err)
	}
	return served, nil
}

// ServedCount returns how many signatures the session has consumed.
func (dao *RedisPlanSessionDAO) ServedCount(sessionID string) (int, error) {
	key := fmt.Sprintf(PLAN_SESSION_SERVED_KEY_FORMAT_V1, sessionID)
	members, err := dao.client.SMembers(key)
	if err != nil {
		return 0, fmt.Errorf("failed to list served signatures for session %s: %w", sessionID, err)
	}
	return len(members), nil
}

// SetLatestResults caches the ranked results last returned for the session.
func (dao *RedisPlanSessionDAO) SetLatestResults(sessionID string, results []models.RankedItinerary) error {
	key := fmt.Sprintf(PLAN_SESSION_RESULTS_KEY_FORMAT_V1, sessionID)
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results for session %s: %w", sessionID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set results in redis: %w", err)
	}
	return nil
}

// GetLatestResults retrieves the cached ranked results for the session.
func (dao *RedisPlanSessionDAO) GetLatestResults(sessionID string) ([]models.RankedItinerary, error) {
	key := fmt.Sprintf(PLAN_SESSION_RESULTS_KEY_FORMAT_V1, sessionID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get results from redis: %w", err)
	}
	var results []models.RankedItinerary
	if err := json.Unmarshal([]byte(str), &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results JSON: %w", err)
	}
	return results, nil
}
