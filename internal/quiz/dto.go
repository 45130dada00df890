package quiz

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/course"
	"github.com/saulo-duarte/chronos-quiz/internal/question"
	util "github.com/saulo-duarte/chronos-quiz/internal/utils"
)

const (
	DefaultQuestionCount = 5
	MaxQuestionCount     = 20
)

type GenerateQuizDTO struct {
	CourseID      string   `json:"course_id" validate:"required,uuid"`
	NumQuestions  int      `json:"num_questions" validate:"min=1,max=20"`
	Difficulty    string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	QuestionTypes []string `json:"question_types" validate:"omitempty,dive,oneof=multiple_choice true_false short_answer"`
}

// PublicQuestion is a question as shown to a learner, without its answer.
type PublicQuestion struct {
	Index    int           `json:"index"`
	Type     question.Type `json:"type"`
	Question string        `json:"question"`
	Options  []string      `json:"options,omitempty"`
}

type QuizResponse struct {
	ID           uuid.UUID           `json:"id"`
	CourseID     uuid.UUID           `json:"course_id"`
	CourseTitle  string              `json:"course_title"`
	Title        string              `json:"title"`
	Difficulty   question.Difficulty `json:"difficulty"`
	NumQuestions int                 `json:"num_questions"`
	CreatedAt    time.Time           `json:"created_at"`
	Questions    []PublicQuestion    `json:"questions"`
}

type QuizSummaryResponse struct {
	ID           uuid.UUID           `json:"id"`
	CourseID     uuid.UUID           `json:"course_id"`
	CourseTitle  string              `json:"course_title"`
	Title        string              `json:"title"`
	Difficulty   question.Difficulty `json:"difficulty"`
	NumQuestions int                 `json:"num_questions"`
	CreatedAt    time.Time           `json:"created_at"`
}

type ExportResponse struct {
	Title      string              `json:"title"`
	Course     string              `json:"course"`
	Difficulty question.Difficulty `json:"difficulty"`
	CreatedAt  util.ISOTime        `json:"created_at"`
	Questions  []question.Question `json:"questions"`
}

func ToResponse(q *Quiz) QuizResponse {
	questions := make([]PublicQuestion, 0, len(q.Questions))
	for i, item := range q.Questions {
		questions = append(questions, PublicQuestion{
			Index:    i,
			Type:     item.Type,
			Question: item.Text,
			Options:  item.Options(),
		})
	}

	return QuizResponse{
		ID:           q.ID,
		CourseID:     q.CourseID,
		CourseTitle:  q.Course.Title,
		Title:        q.Title,
		Difficulty:   q.Difficulty,
		NumQuestions: q.NumQuestions,
		CreatedAt:    q.CreatedAt,
		Questions:    questions,
	}
}

func ToSummary(q *Quiz) QuizSummaryResponse {
	return QuizSummaryResponse{
		ID:           q.ID,
		CourseID:     q.CourseID,
		CourseTitle:  q.Course.Title,
		Title:        q.Title,
		Difficulty:   q.Difficulty,
		NumQuestions: q.NumQuestions,
		CreatedAt:    q.CreatedAt,
	}
}

func ToExport(q *Quiz) ExportResponse {
	questions := []question.Question(q.Questions)
	if questions == nil {
		questions = []question.Question{}
	}
	return ExportResponse{
		Title:      q.Title,
		Course:     q.Course.Title,
		Difficulty: q.Difficulty,
		CreatedAt:  util.NewISOTime(q.CreatedAt),
		Questions:  questions,
	}
}

type courseQuizLister struct {
	repo QuizRepository
}

// NewCourseQuizLister exposes a course's recent quizzes to the course package.
func NewCourseQuizLister(repo QuizRepository) course.QuizLister {
	return &courseQuizLister{repo: repo}
}

func (l *courseQuizLister) RecentByCourse(ctx context.Context, courseID uuid.UUID, limit int) ([]course.QuizSummary, error) {
	quizzes, err := l.repo.ListByCourse(courseID.String(), limit)
	if err != nil {
		return nil, err
	}

	out := make([]course.QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, course.QuizSummary{
			ID:           q.ID,
			Title:        q.Title,
			Difficulty:   string(q.Difficulty),
			NumQuestions: q.NumQuestions,
			CreatedAt:    q.CreatedAt,
		})
	}
	return out, nil
}
