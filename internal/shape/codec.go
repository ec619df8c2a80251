package shape

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxSuggestDistance bounds how far a suggestion may be from the unknown token.
const maxSuggestDistance = 4

// minSubsequenceLen is the shortest token tried as an abbreviation.
const minSubsequenceLen = 3

// Codec maps shapes to and from their persisted tokens.
type Codec struct {
	vocab *Vocabulary
}

// NewCodec returns a codec backed by vocab, or by the default vocabulary when nil.
func NewCodec(vocab *Vocabulary) *Codec {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Codec{vocab: vocab}
}

// Vocabulary returns the vocabulary the codec resolves against.
func (c *Codec) Vocabulary() *Vocabulary {
	return c.vocab
}

// Encode returns the canonical token for s.
func (c *Codec) Encode(s Shape) string {
	return s.String()
}

// Decode resolves token. An unknown token is not an error: it yields
// (None, false) and the caller reports the drift.
func (c *Codec) Decode(token string) (Shape, bool) {
	if token == "" {
		return None, false
	}
	return c.vocab.Lookup(token)
}

// Suggest returns the canonical name closest to token, or "" when nothing is
// near enough to be a plausible rename or typo.
func (c *Codec) Suggest(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if s, ok := c.vocab.Lookup(token); ok {
		return s.String()
	}
	lowered := strings.ToLower(token)
	limit := min(maxSuggestDistance, max(1, len(token)/3))
	best := ""
	bestDistance := limit + 1
	for _, name := range c.vocab.names {
		d := fuzzy.LevenshteinDistance(lowered, strings.ToLower(name))
		if d < bestDistance {
			best, bestDistance = name, d
		}
	}
	if best != "" {
		return best
	}
	if len(token) < minSubsequenceLen {
		return ""
	}
	// Fall back to a subsequence match for abbreviated tokens ("nhBlack").
	ranks := fuzzy.RankFindFold(token, c.vocab.names)
	if len(ranks) == 0 {
		return ""
	}
	top := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < top.Distance {
			top = r
		}
	}
	return top.Target
}

// Label returns a human readable label for s ("noteheadBlack" -> "Notehead Black").
func Label(s Shape) string {
	if !s.Valid() {
		return ""
	}
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(splitWords(s.String()))
}

func splitWords(name string) string {
	var b strings.Builder
	var prev rune
	for i, r := range name {
		if i > 0 {
			switch {
			case unicode.IsUpper(r) && !unicode.IsUpper(prev):
				b.WriteByte(' ')
			case unicode.IsDigit(r) && !unicode.IsDigit(prev):
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
