package attempt

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/saulo-duarte/chronos-quiz/internal/scoring"
)

const RecentAttemptsLimit = 20

type SubmitAttemptDTO struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type AttemptResponse struct {
	ID           uuid.UUID `json:"id"`
	QuizID       uuid.UUID `json:"quiz_id"`
	QuizTitle    string    `json:"quiz_title"`
	CourseTitle  string    `json:"course_title"`
	Score        float64   `json:"score"`
	CorrectCount int       `json:"correct_count"`
	TotalCount   int       `json:"total_count"`
	CompletedAt  time.Time `json:"completed_at"`
}

type AttemptResultResponse struct {
	AttemptResponse
	Answers  map[string]string `json:"answers"`
	Outcomes []scoring.Outcome `json:"outcomes"`
}

type QuizHistory struct {
	quiz.QuizSummaryResponse
	AttemptCount int64 `json:"attempt_count"`
}

type HistoryResponse struct {
	Quizzes        []QuizHistory     `json:"quizzes"`
	RecentAttempts []AttemptResponse `json:"recent_attempts"`
}

func ToResponse(a *Attempt) AttemptResponse {
	return AttemptResponse{
		ID:           a.ID,
		QuizID:       a.QuizID,
		QuizTitle:    a.Quiz.Title,
		CourseTitle:  a.Quiz.Course.Title,
		Score:        a.Score,
		CorrectCount: a.CorrectCount,
		TotalCount:   a.TotalCount,
		CompletedAt:  a.CompletedAt,
	}
}
