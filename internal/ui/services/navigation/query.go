package navigation

import (
	"net/url"
	"strings"

	"cityscout/internal/domain"
)

// query keys, in the order they are written
const (
	keyCity     = "city"
	keyCategory = "category"
	keyDate     = "date"
)

// BuildQuery encodes criteria as a query string. Empty fields are omitted
// and keys always appear in the order city, category, date.
func BuildQuery(c domain.FilterCriteria) string {
	parts := make([]string, 0, 3)
	for _, kv := range [][2]string{
		{keyCity, c.City},
		{keyCategory, c.Category},
		{keyDate, c.Date},
	} {
		if v := strings.TrimSpace(kv[1]); v != "" {
			parts = append(parts, kv[0]+"="+url.QueryEscape(v))
		}
	}
	return strings.Join(parts, "&")
}

// ParseQuery decodes a query string, with or without the leading "?".
// Unknown keys and malformed pairs are ignored; the first value of a
// repeated key wins.
func ParseQuery(raw string) domain.FilterCriteria {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[i+1:]
	}

	values, _ := url.ParseQuery(raw)
	return domain.FilterCriteria{
		City:     strings.TrimSpace(values.Get(keyCity)),
		Category: strings.TrimSpace(values.Get(keyCategory)),
		Date:     strings.TrimSpace(values.Get(keyDate)),
	}
}
