package course

import (
	"github.com/saulo-duarte/chronos-quiz/internal/events"
	"gorm.io/gorm"
)

type CourseContainer struct {
	Repo    CourseRepository
	Service Service
	Handler *Handler
}

func NewCourseContainer(db *gorm.DB, quizzes QuizLister, publisher events.Publisher) *CourseContainer {
	repo := NewRepository(db)
	service := NewService(repo, quizzes, publisher)
	handler := NewHandler(service)

	return &CourseContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
