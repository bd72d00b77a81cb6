package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"cityscout/internal/domain"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a city string for comparison: lower-cased,
// diacritics folded, surrounding whitespace trimmed and inner whitespace
// runs collapsed to a single space.
func Normalize(s string) string {
	folded, _ := FoldMap(s)
	return folded
}

// Equivalent reports whether a and b name the same city
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// locate finds the first occurrence of the normalized query q inside name.
// It returns the byte position of the match in the normalized name and the
// range of the original name it covers.
func locate(name, q string) (int, domain.Span, bool) {
	if q == "" {
		return -1, domain.Span{}, false
	}
	folded, offsets := FoldMap(name)
	pos := strings.Index(folded, q)
	if pos < 0 {
		return -1, domain.Span{}, false
	}

	last := offsets[pos+len(q)-1]
	_, size := utf8.DecodeRuneInString(name[last:])
	return pos, domain.Span{Start: offsets[pos], End: last + size}, true
}

// FoldMap returns the normalized form of s and, for every byte of it, the
// byte offset in s of the rune that produced it.
func FoldMap(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s))

	pendingSpace := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			// leading whitespace never produces output
			if b.Len() > 0 && pendingSpace < 0 {
				pendingSpace = i
			}
			continue
		}

		piece := foldRune(r)
		if piece == "" {
			continue
		}

		if pendingSpace >= 0 {
			b.WriteByte(' ')
			offsets = append(offsets, pendingSpace)
			pendingSpace = -1
		}

		b.WriteString(piece)
		for range len(piece) {
			offsets = append(offsets, i)
		}
	}

	return b.String(), offsets
}

// foldRune lower-cases r and strips combining marks from its decomposition
func foldRune(r rune) string {
	if r < utf8.RuneSelf {
		return string(unicode.ToLower(r))
	}

	lowered := strings.ToLower(string(r))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return folded
}
