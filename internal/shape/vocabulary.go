package shape

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrUnknownAliasTarget is returned when an alias points at a name outside the vocabulary.
var ErrUnknownAliasTarget = errors.New("alias target is not a canonical shape name")

// Vocabulary resolves persisted tokens against the closed shape enumeration.
// Beside canonical names it may carry legacy aliases for shapes that were
// renamed between dataset versions.
type Vocabulary struct {
	byName  map[string]Shape
	aliases map[string]Shape
	names   []string
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// DefaultVocabulary returns the built-in vocabulary without aliases.
func DefaultVocabulary() *Vocabulary {
	defaultOnce.Do(func() {
		defaultVocab = newVocabulary()
	})
	return defaultVocab
}

// NewVocabulary builds a vocabulary with the given legacy aliases
// (legacy token -> canonical name). Aliases may not shadow canonical names.
func NewVocabulary(aliases map[string]string) (*Vocabulary, error) {
	v := newVocabulary()
	for legacy, target := range aliases {
		legacy = strings.TrimSpace(legacy)
		target = strings.TrimSpace(target)
		if legacy == "" {
			return nil, errors.New("alias: empty legacy token")
		}
		s, ok := v.byName[target]
		if !ok {
			return nil, fmt.Errorf("alias %q -> %q: %w", legacy, target, ErrUnknownAliasTarget)
		}
		if _, clash := v.byName[legacy]; clash {
			return nil, fmt.Errorf("alias %q shadows a canonical shape name", legacy)
		}
		v.aliases[legacy] = s
	}
	return v, nil
}

func newVocabulary() *Vocabulary {
	v := &Vocabulary{
		byName:  make(map[string]Shape, int(shapeCount)),
		aliases: make(map[string]Shape),
		names:   make([]string, 0, int(shapeCount)),
	}
	for _, s := range All() {
		name := names[s]
		v.byName[name] = s
		v.names = append(v.names, name)
	}
	return v
}

// Lookup resolves token against canonical names first, then aliases.
// Matching is exact and case-sensitive.
func (v *Vocabulary) Lookup(token string) (Shape, bool) {
	if v == nil {
		v = DefaultVocabulary()
	}
	if s, ok := v.byName[token]; ok {
		return s, true
	}
	if s, ok := v.aliases[token]; ok {
		return s, true
	}
	return None, false
}

// Names returns the canonical names in declaration order.
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Aliases returns the legacy tokens that resolve to s, sorted.
func (v *Vocabulary) Aliases(s Shape) []string {
	var out []string
	for legacy, target := range v.aliases {
		if target == s {
			out = append(out, legacy)
		}
	}
	sort.Strings(out)
	return out
}

// Filter returns the shapes whose canonical name fuzzily contains term,
// ignoring case. An empty term returns every shape.
func (v *Vocabulary) Filter(term string) []Shape {
	term = strings.TrimSpace(term)
	if term == "" {
		return All()
	}
	matches := fuzzy.FindFold(term, v.names)
	out := make([]Shape, 0, len(matches))
	for _, name := range matches {
		out = append(out, v.byName[name])
	}
	return out
}
