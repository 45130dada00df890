package scoring_test

import (
	"math"
	"testing"

	"github.com/saulo-duarte/chronos-quiz/internal/question"
	"github.com/saulo-duarte/chronos-quiz/internal/scoring"
)

func mustQ(t *testing.T) func(question.Question, error) question.Question {
	return func(q question.Question, err error) question.Question {
		t.Helper()
		if err != nil {
			t.Fatalf("build question: %v", err)
		}
		return q
	}
}

func TestScore_Empty(t *testing.T) {
	got := scoring.NewScorer(0).Score(nil, map[string]string{})
	if got.Correct != 0 || got.Total != 0 || got.Percentage != 0 {
		t.Errorf("expected zero result, got %+v", got)
	}
}

func TestScore_PerType(t *testing.T) {
	must := mustQ(t)
	tf := must(question.NewTrueFalse("The sky is blue.", true, ""))
	sa := must(question.NewShortAnswer("Capital of France?", "Paris", "It is Paris."))
	mc := must(question.NewMultipleChoice("2+2?", [4]string{"A) 3", "B) 4", "C) 5", "D) 6"}, "b", ""))

	tests := []struct {
		name  string
		q     question.Question
		given string
		want  bool
	}{
		{"TrueFalseCaseInsensitive", tf, "True", true},
		{"TrueFalseWrong", tf, "false", false},
		{"ShortAnswerTrailingSpace", sa, "paris ", true},
		{"ShortAnswerTypo", sa, "Pariss", true},
		{"ShortAnswerWrong", sa, "London", false},
		{"ShortAnswerEmpty", sa, "", false},
		{"MultipleChoiceUpperLetter", mc, "B", true},
		{"MultipleChoiceWrong", mc, "a", false},
		{"MultipleChoiceOutOfRange", mc, "e", false},
	}

	s := scoring.NewScorer(0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score([]question.Question{tt.q}, map[string]string{"0": tt.given})
			if got.Outcomes[0].Correct != tt.want {
				t.Errorf("correct = %v, want %v", got.Outcomes[0].Correct, tt.want)
			}
		})
	}
}

func TestScore_MalformedQuestionsAreIncorrect(t *testing.T) {
	questions := []question.Question{
		{Text: "No type at all"},
		{Type: question.TypeShortAnswer, Text: "No answer variant"},
		{Type: question.TypeMultipleChoice, Text: "Empty variant", MultipleChoice: &question.MultipleChoice{}},
	}
	got := scoring.NewScorer(0).Score(questions, map[string]string{"0": "", "1": "", "2": ""})
	if got.Correct != 0 || got.Total != 3 {
		t.Errorf("expected 0/3, got %d/%d", got.Correct, got.Total)
	}
}

func TestScore_PercentageAndMissingAnswers(t *testing.T) {
	must := mustQ(t)
	questions := []question.Question{
		must(question.NewTrueFalse("a", true, "")),
		must(question.NewTrueFalse("b", false, "")),
		must(question.NewShortAnswer("c", "mitochondria", "")),
	}
	got := scoring.NewScorer(0).Score(questions, map[string]string{"0": "true", "2": "Mitochondria"})
	if got.Correct != 2 || got.Total != 3 {
		t.Fatalf("expected 2/3, got %d/%d", got.Correct, got.Total)
	}
	if math.Abs(got.Percentage-200.0/3) > 1e-9 {
		t.Errorf("percentage = %v", got.Percentage)
	}
	if got.Outcomes[1].Given != "" || got.Outcomes[1].Expected != "false" {
		t.Errorf("unexpected outcome for missing answer: %+v", got.Outcomes[1])
	}
}

func TestScore_ThresholdIsConfigurable(t *testing.T) {
	q, _ := question.NewShortAnswer("Largest planet?", "jupiter", "")
	answers := map[string]string{"0": "jupyter"}

	if !scoring.NewScorer(0.8).Score([]question.Question{q}, answers).Outcomes[0].Correct {
		t.Error("one-letter typo should pass at 0.8")
	}
	if scoring.NewScorer(0.9).Score([]question.Question{q}, answers).Outcomes[0].Correct {
		t.Error("one-letter typo should fail at 0.9")
	}
}

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"abc", "", 0},
		{"paris", "paris", 1.0},
		{"abcd", "bcde", 0.75},
		{"london", "paris", 0.0},
		{"jupyter", "jupiter", 2.0 * 6 / 14},
	}
	for _, tt := range tests {
		if got := scoring.SequenceRatio(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SequenceRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
