package logic

import (
	"strings"
	"testing"

	"cityscout/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCategoryTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Music", CategoryTitle("music"))
	assert.Equal(t, "Technology", CategoryTitle(" technology "))
	assert.Equal(t, "", CategoryTitle(""))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sat, Jun 14, 2025", FormatDate("2025-06-14"))
	assert.Equal(t, "next week", FormatDate("next week"))
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2025-02-29"))
}

func TestResultsTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		criteria domain.FilterCriteria
		want     string
	}{
		{domain.FilterCriteria{}, "Events"},
		{domain.FilterCriteria{City: "Paris"}, "Events in Paris"},
		{domain.FilterCriteria{Category: "music", City: "Paris"}, "Music Events in Paris"},
		{domain.FilterCriteria{Category: "arts", City: "Paris", Date: "2025-06-14"}, "Arts Events in Paris on Sat, Jun 14, 2025"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResultsTitle(tt.criteria))
	}
}

func TestResultsSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Found 1 event in Paris", ResultsSummary(1, domain.FilterCriteria{City: "Paris"}))
	assert.Equal(t,
		"Found 3 events in Paris in music category on Sat, Jun 14, 2025",
		ResultsSummary(3, domain.FilterCriteria{City: "Paris", Category: "music", Date: "2025-06-14"}),
	)
}

func TestNoResultsMessage(t *testing.T) {
	t.Parallel()

	msg, hint := NoResultsMessage(
		domain.FilterCriteria{City: "Pariss", Category: "music"},
		domain.FilterResult{CityKnown: false, Suggestion: "Paris"},
	)
	assert.Equal(t, `No events found in "Pariss".`, msg)
	assert.True(t, strings.HasPrefix(hint, "Did you mean Paris?"))

	msg, hint = NoResultsMessage(domain.FilterCriteria{City: "Paris", Category: "music"}, domain.FilterResult{CityKnown: true})
	assert.Equal(t, "No music events found in Paris.", msg)
	assert.Equal(t, "Try selecting a different category or location.", hint)

	msg, _ = NoResultsMessage(domain.FilterCriteria{Category: "food"}, domain.FilterResult{CityKnown: true})
	assert.Equal(t, "No food events found.", msg)

	msg, hint = NoResultsMessage(domain.FilterCriteria{City: "Paris"}, domain.FilterResult{CityKnown: true})
	assert.Equal(t, "No events found.", msg)
	assert.Equal(t, "Try changing your search criteria.", hint)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", Preview("short"))

	long := strings.Repeat("é", 150)
	got := Preview(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, 103, len([]rune(got)))
}
