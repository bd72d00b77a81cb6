package logic

import (
	"strings"

	"cityscout/internal/domain"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds the edit distance for "did you mean" hints
const maxSuggestionDistance = 2

// Filter narrows events by the criteria's city, category and date. Every
// predicate is optional and they are AND-combined; the relative order of
// events is preserved. CityKnown tells whether the city criterion names a
// directory city at all, independent of which events matched.
func Filter(events []domain.Event, criteria domain.FilterCriteria, directory Directory) domain.FilterResult {
	city := Normalize(criteria.City)
	category := strings.TrimSpace(criteria.Category)
	date := strings.TrimSpace(criteria.Date)

	matched := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if city != "" && Normalize(event.City) != city {
			continue
		}
		if category != "" && string(event.Category) != category {
			continue
		}
		if date != "" && event.Date != date {
			continue
		}
		matched = append(matched, event)
	}

	result := domain.FilterResult{
		Events:    matched,
		CityKnown: city == "",
	}
	if !result.CityKnown {
		_, result.CityKnown = directory.Lookup(criteria.City)
	}
	if !result.CityKnown {
		result.Suggestion = DidYouMean(criteria.City, directory.Cities())
	}
	return result
}

// DidYouMean returns the directory city closest to name by edit distance,
// or "" when nothing is close enough.
func DidYouMean(name string, directory []domain.City) string {
	key := Normalize(name)
	if key == "" {
		return ""
	}

	best := ""
	bestDist := maxSuggestionDistance + 1
	bestCount := 0
	for _, city := range directory {
		dist := levenshtein.ComputeDistance(key, Normalize(city.Name))
		switch {
		case dist < bestDist,
			dist == bestDist && city.EventCount > bestCount,
			dist == bestDist && city.EventCount == bestCount && city.Name < best:
			best, bestDist, bestCount = city.Name, dist, city.EventCount
		}
	}
	if bestDist > maxSuggestionDistance {
		return ""
	}
	return best
}

// Featured returns the events flagged for the home page, in order
func Featured(events []domain.Event) []domain.Event {
	featured := make([]domain.Event, 0)
	for _, event := range events {
		if event.Featured {
			featured = append(featured, event)
		}
	}
	return featured
}
