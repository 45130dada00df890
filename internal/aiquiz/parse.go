package aiquiz

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/saulo-duarte/chronos-quiz/internal/question"
)

var ErrNoJSONObject = errors.New("no JSON object found in response")

// jsonObject is greedy on purpose: first "{" to last "}".
var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// ParseResponse extracts the JSON object from a model response and decodes
// it as a question of the requested type.
func ParseResponse(raw string, t question.Type) (question.Question, error) {
	match := jsonObject.FindString(raw)
	if match == "" {
		return question.Question{}, ErrNoJSONObject
	}

	q, err := question.Parse(t, []byte(match))
	if err != nil {
		return question.Question{}, fmt.Errorf("invalid %s question: %w", t, err)
	}
	return q, nil
}
