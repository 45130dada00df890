package course

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/content"
)

const (
	RecentCoursesLimit = 10
	RecentQuizzesLimit = 5
)

type UploadCourseDTO struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required,min=100"`
}

type CourseResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	ContentLength int       `json:"content_length"`
	CreatedAt     time.Time `json:"created_at"`
}

type CourseDetailResponse struct {
	CourseResponse
	Content       string             `json:"content"`
	Topics        []string           `json:"topics"`
	ChunkCount    int                `json:"chunk_count"`
	Validation    content.Validation `json:"validation"`
	RecentQuizzes []QuizSummary      `json:"recent_quizzes"`
}

// QuizSummary is the slice of a quiz shown on the course page.
type QuizSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Difficulty   string    `json:"difficulty"`
	NumQuestions int       `json:"num_questions"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuizLister lists the quizzes generated from a course, newest first.
type QuizLister interface {
	RecentByCourse(ctx context.Context, courseID uuid.UUID, limit int) ([]QuizSummary, error)
}

func ToResponse(c *Course) CourseResponse {
	return CourseResponse{
		ID:            c.ID,
		Title:         c.Title,
		ContentLength: utf8.RuneCountInString(c.Content),
		CreatedAt:     c.CreatedAt,
	}
}
