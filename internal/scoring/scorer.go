package scoring

import (
	"strconv"
	"strings"

	"github.com/saulo-duarte/chronos-quiz/internal/question"
)

const DefaultSimilarityThreshold = 0.8

type Outcome struct {
	Index       int    `json:"index"`
	Question    string `json:"question"`
	Correct     bool   `json:"correct"`
	Expected    string `json:"expected"`
	Given       string `json:"given"`
	Explanation string `json:"explanation,omitempty"`
}

type Result struct {
	Correct    int       `json:"correct_count"`
	Total      int       `json:"total_count"`
	Percentage float64   `json:"percentage"`
	Outcomes   []Outcome `json:"outcomes"`
}

type Scorer struct {
	threshold float64
}

// NewScorer builds a scorer accepting short answers whose similarity to the
// expected answer is strictly above threshold. A non-positive threshold uses
// DefaultSimilarityThreshold.
func NewScorer(threshold float64) *Scorer {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &Scorer{threshold: threshold}
}

// Score grades answers keyed by the zero-based question index. Missing
// answers count as empty; malformed questions count as incorrect.
func (s *Scorer) Score(questions []question.Question, answers map[string]string) Result {
	res := Result{Total: len(questions), Outcomes: make([]Outcome, 0, len(questions))}

	for i, q := range questions {
		given := answers[strconv.Itoa(i)]
		ok := s.isCorrect(q, given)
		if ok {
			res.Correct++
		}
		res.Outcomes = append(res.Outcomes, Outcome{
			Index:       i,
			Question:    q.Text,
			Correct:     ok,
			Expected:    q.CorrectAnswer(),
			Given:       given,
			Explanation: q.Explanation,
		})
	}

	if res.Total > 0 {
		res.Percentage = float64(res.Correct) / float64(res.Total) * 100
	}
	return res
}

func (s *Scorer) isCorrect(q question.Question, given string) bool {
	expected := normalize(q.CorrectAnswer())
	if expected == "" {
		return false
	}
	answer := normalize(given)

	switch q.Type {
	case question.TypeMultipleChoice, question.TypeTrueFalse:
		return answer == expected
	case question.TypeShortAnswer:
		return SequenceRatio(answer, expected) > s.threshold
	default:
		return false
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
