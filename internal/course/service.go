package course

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/content"
	"github.com/saulo-duarte/chronos-quiz/internal/events"
	"github.com/sirupsen/logrus"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrEmptyCourse    = errors.New("course title and content must not be blank")
)

type Service interface {
	Upload(ctx context.Context, dto UploadCourseDTO) (*CourseResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*CourseDetailResponse, error)
	ListRecent(ctx context.Context) ([]CourseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      CourseRepository
	quizzes   QuizLister
	publisher events.Publisher
}

func NewService(repo CourseRepository, quizzes QuizLister, publisher events.Publisher) Service {
	return &service{repo: repo, quizzes: quizzes, publisher: publisher}
}

func (s *service) Upload(ctx context.Context, dto UploadCourseDTO) (*CourseResponse, error) {
	log := config.WithContext(ctx)

	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, ErrEmptyCourse
	}

	res := content.Process(dto.Content)
	if errors.Is(res.Err, content.ErrEmptyInput) || strings.TrimSpace(res.Content) == "" {
		return nil, ErrEmptyCourse
	}
	if res.FellBack {
		log.WithError(res.Err).Warn("Content normalization fell back to raw text")
	}

	c := &Course{
		Title:   title,
		Content: res.Content,
	}
	if err := s.repo.Create(c); err != nil {
		log.WithError(err).Error("Failed to create course")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"course_id": c.ID.String(),
		"length":    len(c.Content),
	}).Info("Course uploaded")
	events.Emit(ctx, s.publisher, events.New(events.CourseUploaded, c.ID, map[string]any{"title": c.Title}))

	resp := ToResponse(c)
	return &resp, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*CourseDetailResponse, error) {
	log := config.WithContext(ctx)

	c, err := s.repo.GetByID(id.String())
	if err != nil {
		log.WithError(err).Error("Failed to fetch course")
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}

	recent := []QuizSummary{}
	if s.quizzes != nil {
		recent, err = s.quizzes.RecentByCourse(ctx, c.ID, RecentQuizzesLimit)
		if err != nil {
			log.WithError(err).Error("Failed to list course quizzes")
			return nil, err
		}
	}

	topics := content.ExtractTopics(c.Content)
	if topics == nil {
		topics = []string{}
	}

	return &CourseDetailResponse{
		CourseResponse: ToResponse(c),
		Content:        c.Content,
		Topics:         topics,
		ChunkCount:     len(content.Chunk(c.Content, content.DefaultChunkSize)),
		Validation:     content.Validate(c.Content),
		RecentQuizzes:  recent,
	}, nil
}

func (s *service) ListRecent(ctx context.Context) ([]CourseResponse, error) {
	courses, err := s.repo.ListRecent(RecentCoursesLimit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list courses")
		return nil, err
	}

	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, ToResponse(c))
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	c, err := s.repo.GetByID(id.String())
	if err != nil {
		log.WithError(err).Error("Failed to fetch course")
		return err
	}
	if c == nil {
		return ErrCourseNotFound
	}

	if err := s.repo.Delete(id.String()); err != nil {
		log.WithError(err).Error("Failed to delete course")
		return err
	}

	log.WithField("course_id", id.String()).Info("Course deleted")
	events.Emit(ctx, s.publisher, events.New(events.CourseDeleted, id, nil))
	return nil
}
