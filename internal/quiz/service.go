package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/course"
	"github.com/saulo-duarte/chronos-quiz/internal/events"
	"github.com/saulo-duarte/chronos-quiz/internal/question"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuizNotFound          = errors.New("quiz not found")
	ErrInvalidQuestionCount  = fmt.Errorf("question count must be between 1 and %d", MaxQuestionCount)
	ErrInvalidDifficulty     = errors.New("difficulty must be one of easy, medium, hard")
	ErrGenerationUnavailable = errors.New("question generation is not configured")
	ErrNoQuestionsGenerated  = errors.New("unable to generate quiz questions")
)

type Service interface {
	Generate(ctx context.Context, dto GenerateQuizDTO) (*QuizResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*QuizResponse, error)
	Export(ctx context.Context, id uuid.UUID) (*ExportResponse, error)
	ListAll(ctx context.Context) ([]QuizSummaryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      QuizRepository
	courses   course.CourseRepository
	generator aiquiz.Service
	publisher events.Publisher
}

func NewService(repo QuizRepository, courses course.CourseRepository, generator aiquiz.Service, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		courses:   courses,
		generator: generator,
		publisher: publisher,
	}
}

func (s *service) Generate(ctx context.Context, dto GenerateQuizDTO) (*QuizResponse, error) {
	log := config.WithContext(ctx)

	count := dto.NumQuestions
	if count == 0 {
		count = DefaultQuestionCount
	}
	if count < 1 || count > MaxQuestionCount {
		return nil, ErrInvalidQuestionCount
	}

	difficulty := question.Difficulty(dto.Difficulty)
	if difficulty == "" {
		difficulty = question.DifficultyMedium
	}
	if !difficulty.IsValid() {
		return nil, ErrInvalidDifficulty
	}

	types := make([]question.Type, 0, len(dto.QuestionTypes))
	for _, t := range dto.QuestionTypes {
		types = append(types, question.Type(t))
	}

	courseID, err := uuid.Parse(dto.CourseID)
	if err != nil {
		return nil, course.ErrCourseNotFound
	}
	c, err := s.courses.GetByID(courseID.String())
	if err != nil {
		log.WithError(err).Error("Failed to fetch course")
		return nil, err
	}
	if c == nil {
		return nil, course.ErrCourseNotFound
	}

	if !s.generator.Enabled() {
		log.Warn("Quiz requested while question generation is disabled")
		return nil, ErrGenerationUnavailable
	}

	questions, err := s.generator.GenerateQuestions(ctx, aiquiz.GenerateRequest{
		Content:       c.Content,
		QuestionCount: count,
		Difficulty:    difficulty,
		QuestionTypes: types,
	})
	if err != nil {
		log.WithError(err).Error("Question generation failed")
		return nil, err
	}
	if len(questions) == 0 {
		log.WithField("course_id", c.ID.String()).Warn("No questions generated")
		return nil, ErrNoQuestionsGenerated
	}

	q := &Quiz{
		CourseID:   c.ID,
		Course:     *c,
		Title:      fmt.Sprintf("%s - Quiz (%s)", c.Title, difficulty.Label()),
		Questions:  questions,
		Difficulty: difficulty,
	}
	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"quiz_id":   q.ID.String(),
		"requested": count,
		"generated": q.NumQuestions,
	}).Info("Quiz generated")
	events.Emit(ctx, s.publisher, events.New(events.QuizGenerated, q.ID, map[string]any{
		"course_id":     c.ID.String(),
		"difficulty":    string(difficulty),
		"num_questions": q.NumQuestions,
	}))

	resp := ToResponse(q)
	return &resp, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*QuizResponse, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(q)
	return &resp, nil
}

func (s *service) Export(ctx context.Context, id uuid.UUID) (*ExportResponse, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	export := ToExport(q)
	return &export, nil
}

func (s *service) ListAll(ctx context.Context) ([]QuizSummaryResponse, error) {
	quizzes, err := s.repo.ListAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quizzes")
		return nil, err
	}

	out := make([]QuizSummaryResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, ToSummary(q))
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id.String()); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.WithField("quiz_id", id.String()).Info("Quiz deleted")
	return nil
}

func (s *service) find(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	q, err := s.repo.GetByID(id.String())
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}
	return q, nil
}
