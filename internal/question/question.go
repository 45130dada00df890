package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownType   = errors.New("unknown question type")
	ErrMissingText   = errors.New("question text is required")
	ErrMissingAnswer = errors.New("correct answer is required")
	ErrInvalidOption = errors.New("multiple choice questions need exactly 4 options")
	ErrInvalidLetter = errors.New("multiple choice answer must be one of a, b, c, d")
	ErrInvalidBool   = errors.New("true/false answer must be \"true\" or \"false\"")
)

// OptionLetters are the labels of the four multiple choice options, in order.
var OptionLetters = []string{"a", "b", "c", "d"}

type MultipleChoice struct {
	Options [4]string
	Answer  string
}

type TrueFalse struct {
	Answer bool
}

type ShortAnswer struct {
	Answer string
}

// Question is a tagged union: exactly one of the variant pointers matching
// Type is set on a valid question.
type Question struct {
	Type        Type
	Text        string
	Explanation string

	MultipleChoice *MultipleChoice
	TrueFalse      *TrueFalse
	ShortAnswer    *ShortAnswer
}

func NewMultipleChoice(text string, options [4]string, answer, explanation string) (Question, error) {
	q := Question{
		Type:           TypeMultipleChoice,
		Text:           strings.TrimSpace(text),
		Explanation:    strings.TrimSpace(explanation),
		MultipleChoice: &MultipleChoice{Options: options, Answer: normalizeLetter(answer)},
	}
	return q, q.Validate()
}

func NewTrueFalse(text string, answer bool, explanation string) (Question, error) {
	q := Question{
		Type:        TypeTrueFalse,
		Text:        strings.TrimSpace(text),
		Explanation: strings.TrimSpace(explanation),
		TrueFalse:   &TrueFalse{Answer: answer},
	}
	return q, q.Validate()
}

func NewShortAnswer(text, answer, explanation string) (Question, error) {
	q := Question{
		Type:        TypeShortAnswer,
		Text:        strings.TrimSpace(text),
		Explanation: strings.TrimSpace(explanation),
		ShortAnswer: &ShortAnswer{Answer: strings.TrimSpace(answer)},
	}
	return q, q.Validate()
}

// CorrectAnswer returns the stored answer in its wire form, or "" when the
// variant for Type is missing.
func (q Question) CorrectAnswer() string {
	switch q.Type {
	case TypeMultipleChoice:
		if q.MultipleChoice != nil {
			return q.MultipleChoice.Answer
		}
	case TypeTrueFalse:
		if q.TrueFalse != nil {
			return strconv.FormatBool(q.TrueFalse.Answer)
		}
	case TypeShortAnswer:
		if q.ShortAnswer != nil {
			return q.ShortAnswer.Answer
		}
	}
	return ""
}

func (q Question) Options() []string {
	if q.Type != TypeMultipleChoice || q.MultipleChoice == nil {
		return nil
	}
	return q.MultipleChoice.Options[:]
}

func (q Question) Validate() error {
	if !q.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, q.Type)
	}
	if strings.TrimSpace(q.Text) == "" {
		return ErrMissingText
	}

	switch q.Type {
	case TypeMultipleChoice:
		if q.MultipleChoice == nil {
			return ErrMissingAnswer
		}
		for _, opt := range q.MultipleChoice.Options {
			if strings.TrimSpace(opt) == "" {
				return ErrInvalidOption
			}
		}
		if q.MultipleChoice.Answer == "" {
			return ErrMissingAnswer
		}
		if !isLetter(q.MultipleChoice.Answer) {
			return ErrInvalidLetter
		}
	case TypeTrueFalse:
		if q.TrueFalse == nil {
			return ErrMissingAnswer
		}
	case TypeShortAnswer:
		if q.ShortAnswer == nil || strings.TrimSpace(q.ShortAnswer.Answer) == "" {
			return ErrMissingAnswer
		}
	}
	return nil
}

// wire is the flat JSON shape used for storage, export and model output.
type wire struct {
	Type          Type     `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{
		Type:          q.Type,
		Question:      q.Text,
		Options:       q.Options(),
		CorrectAnswer: q.CorrectAnswer(),
		Explanation:   q.Explanation,
	})
}

// UnmarshalJSON is lenient so that a stored quiz with a damaged record stays
// readable; the damaged question simply has no variant and fails Validate.
func (q *Question) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := fromWire(w.Type, w)
	if err != nil {
		*q = Question{Type: w.Type, Text: w.Question, Explanation: w.Explanation}
		return nil
	}
	*q = built
	return nil
}

// Parse decodes a raw JSON object as a question of type t, ignoring any type
// the payload claims, and validates it.
func Parse(t Type, data []byte) (Question, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return Question{}, fmt.Errorf("decode question: %w", err)
	}
	return fromWire(t, w)
}

func fromWire(t Type, w wire) (Question, error) {
	switch t {
	case TypeMultipleChoice:
		if len(w.Options) != 4 {
			return Question{}, ErrInvalidOption
		}
		var opts [4]string
		for i, o := range w.Options {
			opts[i] = strings.TrimSpace(o)
		}
		return NewMultipleChoice(w.Question, opts, w.CorrectAnswer, w.Explanation)

	case TypeTrueFalse:
		switch strings.ToLower(strings.TrimSpace(w.CorrectAnswer)) {
		case "true":
			return NewTrueFalse(w.Question, true, w.Explanation)
		case "false":
			return NewTrueFalse(w.Question, false, w.Explanation)
		case "":
			return Question{}, ErrMissingAnswer
		default:
			return Question{}, ErrInvalidBool
		}

	case TypeShortAnswer:
		return NewShortAnswer(w.Question, w.CorrectAnswer, w.Explanation)

	default:
		return Question{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
}

// normalizeLetter accepts "a", "A", "a)" or "A) text" and returns "a".
func normalizeLetter(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > 1 && (s[1] == ')' || s[1] == '.') {
		s = s[:1]
	}
	return s
}

func isLetter(s string) bool {
	for _, l := range OptionLetters {
		if s == l {
			return true
		}
	}
	return false
}
