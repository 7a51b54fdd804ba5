package services

import (
	"dayout-server/models"
)

// venueMatchesFilters checks a resolved venue against a slot's filter spec.
// Only the keys whitelisted for the category are consulted; an unset filter
// never excludes a venue.
func venueMatchesFilters(v models.Venue, category string, f models.FilterSpec) bool {
	switch category {
	case models.CATEGORY_DININGS:
		if !overlap(f.Type, v.Type) || !overlap(f.Cuisines, v.Cuisines) {
			return false
		}
		if f.Alcohol != nil && v.Alcohol != *f.Alcohol {
			return false
		}
	case models.CATEGORY_EVENTS:
		if !overlap(f.Type, v.Type) || !contains(f.Venue, v.VenueKind) {
			return false
		}
	case models.CATEGORY_ACTIVITIES:
		if !overlap(f.Type, v.Type) || !contains(f.Venue, v.VenueKind) || !contains(f.Intensity, v.Intensity) {
			return false
		}
	case models.CATEGORY_PLAYS:
		if !overlap(f.Type, v.Type) || !contains(f.Venue, v.VenueKind) || !contains(f.Intensity, v.Intensity) {
			return false
		}
		if f.Cafe != nil && v.Cafe != *f.Cafe {
			return false
		}
	case models.CATEGORY_MOVIES:
		if !overlap(f.Genre, v.Genre) || !overlap(f.Language, v.Language) ||
			!overlap(f.Format, v.Format) || !overlap(f.Cast, v.Cast) {
			return false
		}
	}

	if f.Wifi != nil && v.Wifi != *f.Wifi {
		return false
	}
	if f.Washroom != nil && v.Washroom != *f.Washroom {
		return false
	}
	if f.Wheelchair != nil && v.Wheelchair != *f.Wheelchair {
		return false
	}
	if f.Parking != nil && v.Parking != *f.Parking {
		return false
	}
	if f.Rating != nil && v.Rating < *f.Rating {
		return false
	}
	if !contains(f.CrowdTolerance, v.Crowd) {
		return false
	}

	return true
}

// overlap is true when the filter is unset or shares at least one value with
// the venue attribute.
func overlap(filter, attr []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, want := range filter {
		for _, have := range attr {
			if want == have {
				return true
			}
		}
	}
	return false
}

// contains is true when the filter is unset or includes the attribute value.
func contains(filter []string, attr string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, want := range filter {
		if want == attr {
			return true
		}
	}
	return false
}
