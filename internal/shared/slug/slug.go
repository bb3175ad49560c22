// Package slug provides the Slug value object used as the human-readable unique key
// for courses, categories and user profiles.
package slug

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmpty is returned when the source text contains no letters or digits
// that survive normalization (e.g. "", "   ", "!!!").
var ErrEmpty = errors.New("slug: text has no sluggable characters")

// Letters that do not decompose into an ASCII base plus combining marks.
var foldings = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'ø': "o",
	'œ': "oe",
	'đ': "d",
	'ł': "l",
	'þ': "th",
	'ı': "i",
}

// Slug is a lowercase, ASCII-only, hyphen-separated token.
type Slug struct {
	value string
}

// CreateFromText derives a Slug from free text.
//
// Diacritics are stripped, letters are lowercased, and every run of characters
// that is not an ASCII letter or digit becomes a single hyphen. Leading and
// trailing hyphens are trimmed. The result is a pure function of text.
func CreateFromText(text string) (Slug, error) {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		return Slug{}, fmt.Errorf("slug: normalize text: %w", err)
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	write := func(s string) {
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteString(s)
	}

	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			write(string(r))
		default:
			if f, ok := foldings[r]; ok {
				write(f)
				continue
			}
			pendingHyphen = true
		}
	}

	if b.Len() == 0 {
		return Slug{}, ErrEmpty
	}
	return Slug{value: b.String()}, nil
}

// Value returns the slug string.
func (s Slug) Value() string {
	return s.value
}

// String implements fmt.Stringer.
func (s Slug) String() string {
	return s.value
}

// IsZero reports whether s was never produced by CreateFromText.
func (s Slug) IsZero() bool {
	return s.value == ""
}
