package match

import (
	"math"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Default ranking parameters.
const (
	DefaultLimit    = 20
	DefaultMinScore = 40
)

// Substring hits score 200-index so they always outrank pure similarity
// matches, whose ceiling is 100.
const substringBase = 200

// Service ranks candidate strings against a free-text query.
type Service struct{}

// New creates a new matcher.
func New() *Service {
	return &Service{}
}

// Rank scores choices against query and returns up to limit winners in
// descending score order; ties keep input order. A blank query skips
// scoring and returns the first limit choices as-is. Choices scoring
// below minScore are discarded.
func (s *Service) Rank(query string, choices []string, limit, minScore int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		if len(choices) > limit {
			choices = choices[:limit]
		}
		return append([]string(nil), choices...)
	}

	type scoredChoice struct {
		choice string
		score  int
	}
	kept := make([]scoredChoice, 0, len(choices))
	for _, choice := range choices {
		sc := score(q, strings.ToLower(choice))
		if sc >= minScore {
			kept = append(kept, scoredChoice{choice: choice, score: sc})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}

	out := make([]string, len(kept))
	for i, k := range kept {
		out[i] = k.choice
	}
	return out
}

// score prefers substring hits, earlier occurrences ranking higher;
// otherwise the sequence similarity ratio scaled to [0,100].
func score(q, choice string) int {
	if idx := strings.Index(choice, q); idx >= 0 {
		return substringBase - idx
	}
	matcher := difflib.NewMatcher(chars(q), chars(choice))
	return int(math.Round(matcher.Ratio() * 100))
}

// chars splits a string into single-character tokens for the
// line-oriented SequenceMatcher.
func chars(s string) []string {
	return strings.Split(s, "")
}

// Interface for dependency injection
type ServiceInterface interface {
	Rank(query string, choices []string, limit, minScore int) []string
}

var _ ServiceInterface = (*Service)(nil)
