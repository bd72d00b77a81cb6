package logic

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cityscout/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	isoDate     = "2006-01-02"
	displayDate = "Mon, Jan 2, 2006"

	descriptionPreview = 100
)

// CategoryTitle capitalizes a category for headings
func CategoryTitle(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	return cases.Title(language.English).String(category)
}

// FormatDate renders an ISO date for display. Unparsable input is returned as is.
func FormatDate(iso string) string {
	t, err := time.Parse(isoDate, strings.TrimSpace(iso))
	if err != nil {
		return iso
	}
	return t.Format(displayDate)
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date
func ValidDate(s string) bool {
	_, err := time.Parse(isoDate, s)
	return err == nil
}

// ResultsTitle builds the heading for a results page, e.g.
// "Music Events in Paris on Sat, Jun 14, 2025".
func ResultsTitle(criteria domain.FilterCriteria) string {
	title := "Events"
	if criteria.Category != "" {
		title = CategoryTitle(criteria.Category) + " Events"
	}
	if criteria.City != "" {
		title += " in " + criteria.City
	}
	if criteria.Date != "" {
		title += " on " + FormatDate(criteria.Date)
	}
	return title
}

// ResultsSummary describes a non-empty result set
func ResultsSummary(count int, criteria domain.FilterCriteria) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d event", count)
	if count != 1 {
		b.WriteString("s")
	}
	if criteria.City != "" {
		b.WriteString(" in " + criteria.City)
	}
	if criteria.Category != "" {
		b.WriteString(" in " + criteria.Category + " category")
	}
	if criteria.Date != "" {
		b.WriteString(" on " + FormatDate(criteria.Date))
	}
	return b.String()
}

// NoResultsMessage explains an empty result set and suggests what to try next.
// An unknown city takes precedence over a category miss.
func NoResultsMessage(criteria domain.FilterCriteria, result domain.FilterResult) (string, string) {
	switch {
	case criteria.City != "" && !result.CityKnown:
		hint := "Try searching for a different city or check the spelling."
		if result.Suggestion != "" {
			hint = fmt.Sprintf("Did you mean %s? ", result.Suggestion) + hint
		}
		return fmt.Sprintf("No events found in %q.", criteria.City), hint
	case criteria.Category != "":
		where := ""
		if criteria.City != "" {
			where = " in " + criteria.City
		}
		return fmt.Sprintf("No %s events found%s.", criteria.Category, where),
			"Try selecting a different category or location."
	default:
		return "No events found.", "Try changing your search criteria."
	}
}

// Preview shortens an event description for list cards
func Preview(description string) string {
	if utf8.RuneCountInString(description) <= descriptionPreview {
		return description
	}
	r := []rune(description)
	return strings.TrimSpace(string(r[:descriptionPreview])) + "..."
}
