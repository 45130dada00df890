package aiquiz

import (
	"strings"

	"github.com/saulo-duarte/chronos-quiz/internal/question"
)

const DefaultDuplicateThreshold = 0.6

// WordOverlap is |A ∩ B| / max(|A|, |B|) over the lowercase word sets.
func WordOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	denom := max(len(setA), len(setB))
	if denom == 0 {
		return 0
	}

	shared := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(denom)
}

// IsDuplicate reports whether candidate overlaps any existing question's
// text by more than threshold.
func IsDuplicate(candidate question.Question, existing []question.Question, threshold float64) bool {
	for _, q := range existing {
		if WordOverlap(candidate.Text, q.Text) > threshold {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}
