package attempt

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/events"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/saulo-duarte/chronos-quiz/internal/scoring"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var ErrAttemptNotFound = errors.New("attempt not found")

type Service interface {
	Submit(ctx context.Context, quizID uuid.UUID, dto SubmitAttemptDTO) (*AttemptResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*AttemptResultResponse, error)
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]AttemptResponse, error)
	History(ctx context.Context) (*HistoryResponse, error)
}

type service struct {
	repo      AttemptRepository
	quizRepo  quiz.QuizRepository
	quizzes   quiz.Service
	scorer    *scoring.Scorer
	publisher events.Publisher
}

func NewService(repo AttemptRepository, quizRepo quiz.QuizRepository, quizzes quiz.Service, scorer *scoring.Scorer, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		quizRepo:  quizRepo,
		quizzes:   quizzes,
		scorer:    scorer,
		publisher: publisher,
	}
}

func (s *service) Submit(ctx context.Context, quizID uuid.UUID, dto SubmitAttemptDTO) (*AttemptResponse, error) {
	log := config.WithContext(ctx)

	q, err := s.quizRepo.GetByID(quizID.String())
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if q == nil {
		return nil, quiz.ErrQuizNotFound
	}

	answers := dto.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	result := s.scorer.Score(q.Questions, answers)

	a := &Attempt{
		QuizID:       q.ID,
		Quiz:         *q,
		Answers:      datatypes.NewJSONType(answers),
		Score:        result.Percentage,
		CorrectCount: result.Correct,
		TotalCount:   result.Total,
	}
	if err := s.repo.Create(a); err != nil {
		log.WithError(err).Error("Failed to save attempt")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"attempt_id": a.ID.String(),
		"quiz_id":    q.ID.String(),
		"score":      a.Score,
	}).Info("Attempt submitted")
	events.Emit(ctx, s.publisher, events.New(events.AttemptSubmitted, a.ID, map[string]any{
		"quiz_id": q.ID.String(),
		"score":   a.Score,
	}))

	resp := ToResponse(a)
	return &resp, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*AttemptResultResponse, error) {
	a, err := s.repo.GetByID(id.String())
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch attempt")
		return nil, err
	}
	if a == nil {
		return nil, ErrAttemptNotFound
	}

	answers := a.Answers.Data()
	if answers == nil {
		answers = map[string]string{}
	}
	result := s.scorer.Score(a.Quiz.Questions, answers)

	return &AttemptResultResponse{
		AttemptResponse: ToResponse(a),
		Answers:         answers,
		Outcomes:        result.Outcomes,
	}, nil
}

// ListByQuiz returns every attempt at one quiz, newest first.
func (s *service) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]AttemptResponse, error) {
	log := config.WithContext(ctx)

	q, err := s.quizRepo.GetByID(quizID.String())
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if q == nil {
		return nil, quiz.ErrQuizNotFound
	}

	attempts, err := s.repo.ListByQuiz(q.ID.String())
	if err != nil {
		log.WithError(err).Error("Failed to list quiz attempts")
		return nil, err
	}

	out := make([]AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		a.Quiz = *q
		out = append(out, ToResponse(a))
	}
	return out, nil
}

func (s *service) History(ctx context.Context) (*HistoryResponse, error) {
	log := config.WithContext(ctx)

	summaries, err := s.quizzes.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	quizzes := make([]QuizHistory, 0, len(summaries))
	for _, sum := range summaries {
		n, err := s.repo.CountByQuiz(sum.ID.String())
		if err != nil {
			log.WithError(err).Error("Failed to count quiz attempts")
			return nil, err
		}
		quizzes = append(quizzes, QuizHistory{QuizSummaryResponse: sum, AttemptCount: n})
	}

	attempts, err := s.repo.ListRecent(RecentAttemptsLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list attempts")
		return nil, err
	}

	recent := make([]AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		recent = append(recent, ToResponse(a))
	}

	return &HistoryResponse{Quizzes: quizzes, RecentAttempts: recent}, nil
}
