package services

import "errors"

// Failure classes surfaced by the services. Scoring never returns these to a
// caller (it degrades to a neutral score instead); route and generation
// failures always propagate so callers can distinguish "route unavailable"
// from bad input.
var (
	ErrNotEnoughLocations = errors.New("at least 2 locations are required")
	ErrRouteUnavailable   = errors.New("route unavailable")
	ErrMalformedResponse  = errors.New("malformed provider response")
	ErrSlotUnresolved     = errors.New("no venues match the slot filters")
	ErrNoNewPermutations  = errors.New("no new stop combinations left for this session")
)
