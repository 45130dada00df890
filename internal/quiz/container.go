package quiz

import (
	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-quiz/internal/course"
	"github.com/saulo-duarte/chronos-quiz/internal/events"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Repo    QuizRepository
	Service Service
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, courses course.CourseRepository, generator aiquiz.Service, publisher events.Publisher) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, courses, generator, publisher)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
