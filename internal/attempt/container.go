package attempt

import (
	"github.com/saulo-duarte/chronos-quiz/internal/events"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/saulo-duarte/chronos-quiz/internal/scoring"
	"gorm.io/gorm"
)

type AttemptContainer struct {
	Repo    AttemptRepository
	Service Service
	Handler *Handler
}

func NewAttemptContainer(db *gorm.DB, quizzes *quiz.QuizContainer, similarityThreshold float64, publisher events.Publisher) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo, quizzes.Repo, quizzes.Service, scoring.NewScorer(similarityThreshold), publisher)
	handler := NewHandler(service)

	return &AttemptContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
