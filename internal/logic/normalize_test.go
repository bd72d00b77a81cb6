package logic

import (
	"testing"

	"cityscout/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  Paris  ", want: "paris"},
		{name: "lowercase", input: "NEW YORK", want: "new york"},
		{name: "collapse inner spaces", input: "New   York", want: "new york"},
		{name: "tabs and newlines", input: "\tNew\n York ", want: "new york"},
		{name: "diacritics folded", input: "Zürich", want: "zurich"},
		{name: "several diacritics", input: "São Paulo", want: "sao paulo"},
		{name: "uppercase diacritics", input: "ÅRHUS", want: "arhus"},
		{name: "decomposed input", input: "Zu\u0308rich", want: "zurich"},
		{name: "dotted capital i", input: "İstanbul", want: "istanbul"},
		{name: "punctuation preserved", input: "Saint-Étienne", want: "saint-etienne"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", " ", "Paris", "  Rio  de   Janeiro ", "Zürich", "İstanbul",
		"Zu\u0308rich", "ÅRHUS", "K\u0301\u0301x", "\u00a0Kraków\u2003", "a\xffb",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestEquivalent(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		a, b string
		want bool
	}{
		{"Paris", "  paris ", true},
		{"New York", "new   york", true},
		{"Zürich", "ZURICH", true},
		{"Paris", "Prague", false},
		{"", "   ", true},
	}
	for _, p := range pairs {
		assert.Equal(t, p.want, Equivalent(p.a, p.b), "%q vs %q", p.a, p.b)
		assert.Equal(t, Equivalent(p.a, p.b), Equivalent(p.b, p.a), "symmetry %q vs %q", p.a, p.b)
	}
}

func TestLocateSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		city    string
		query   string
		wantPos int
		want    domain.Span
	}{
		{name: "prefix", city: "Prague", query: "pr", wantPos: 0, want: domain.Span{Start: 0, End: 2}},
		{name: "case insensitive", city: "Rio de Janeiro", query: "DE J", wantPos: 4, want: domain.Span{Start: 4, End: 8}},
		{name: "after accented rune", city: "São Paulo", query: "paulo", wantPos: 4, want: domain.Span{Start: 5, End: 10}},
		{name: "covers accented rune", city: "Zürich", query: "zur", wantPos: 0, want: domain.Span{Start: 0, End: 4}},
		{name: "combining mark inside", city: "Zu\u0308rich", query: "zur", wantPos: 0, want: domain.Span{Start: 0, End: 5}},
		{name: "collapsed whitespace", city: "Rio  de Janeiro", query: "o d", wantPos: 2, want: domain.Span{Start: 2, End: 6}},
		{name: "across whitespace run", city: "Rich  Old", query: "rich old", wantPos: 0, want: domain.Span{Start: 0, End: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, span, ok := locate(tt.city, Normalize(tt.query))
			require.True(t, ok)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.want, span)
		})
	}

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		_, _, ok := locate("Paris", "xyz")
		assert.False(t, ok)
	})

	t.Run("empty query", func(t *testing.T) {
		t.Parallel()
		_, _, ok := locate("Paris", Normalize("  "))
		assert.False(t, ok)
	})
}
