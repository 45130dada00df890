package aiquiz

import "github.com/saulo-duarte/chronos-quiz/internal/question"

// FocusAspects bias the angle the model takes on a chunk.
var FocusAspects = []string{"concepts", "details", "applications", "examples", "relationships"}

type GenerateRequest struct {
	Content       string
	QuestionCount int
	Difficulty    question.Difficulty
	QuestionTypes []question.Type
}

// PreviewRequest is the body of the preview endpoint, which generates
// questions from ad-hoc text without storing them.
type PreviewRequest struct {
	Content       string   `json:"content" validate:"required,min=20"`
	NumQuestions  int      `json:"num_questions" validate:"min=1,max=20"`
	Difficulty    string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	QuestionTypes []string `json:"question_types" validate:"omitempty,dive,oneof=multiple_choice true_false short_answer"`
}

type PreviewResponse struct {
	Questions []question.Question `json:"questions"`
}

// CompletionRequest is what a Provider sends to the remote model.
type CompletionRequest struct {
	System      string
	User        string
	Model       string
	Temperature float32
	MaxTokens   int
	TopP        float32
}
