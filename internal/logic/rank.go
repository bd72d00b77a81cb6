package logic

import (
	"cmp"
	"slices"

	"cityscout/internal/domain"
)

type candidate struct {
	city domain.City
	key  string // normalized name
	pos  int
	span *domain.Span
}

// Rank matches query against the directory and returns at most limit
// suggestions. An empty query yields the most popular cities. Otherwise a
// city qualifies when its normalized name contains the normalized query;
// earlier matches rank first, then busier cities, then names alphabetically.
func Rank(query string, directory []domain.City, limit int) domain.SuggestionList {
	if limit <= 0 {
		return domain.SuggestionList{}
	}

	q := Normalize(query)
	seen := make(map[string]bool, len(directory))
	candidates := make([]candidate, 0, len(directory))

	for _, city := range directory {
		key := Normalize(city.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		if q == "" {
			candidates = append(candidates, candidate{city: city, key: key})
			continue
		}

		pos, span, ok := locate(city.Name, q)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{city: city, key: key, pos: pos, span: &span})
	}

	slices.SortStableFunc(candidates, compareCandidates)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	list := make(domain.SuggestionList, len(candidates))
	for i, c := range candidates {
		list[i] = domain.Suggestion{City: c.city, Span: c.span}
	}
	return list
}

// PopularCities is the empty-query ranking
func PopularCities(directory []domain.City, limit int) domain.SuggestionList {
	return Rank("", directory, limit)
}

func compareCandidates(a, b candidate) int {
	if c := cmp.Compare(a.pos, b.pos); c != 0 {
		return c
	}
	if c := cmp.Compare(b.city.EventCount, a.city.EventCount); c != 0 {
		return c
	}
	if c := cmp.Compare(a.city.Name, b.city.Name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	return cmp.Compare(a.city.Country, b.city.Country)
}
