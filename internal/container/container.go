package container

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-quiz/internal/attempt"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/course"
	"github.com/saulo-duarte/chronos-quiz/internal/events"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/saulo-duarte/chronos-quiz/internal/router"
	"gorm.io/gorm"
)

type Container struct {
	Settings         config.Settings
	Publisher        events.Publisher
	AIQuizContainer  *aiquiz.AIQuizContainer
	CourseContainer  *course.CourseContainer
	QuizContainer    *quiz.QuizContainer
	AttemptContainer *attempt.AttemptContainer
}

// New loads settings, connects and migrates the database, and wires every
// feature. It exits the process when the database is unreachable.
func New(ctx context.Context) *Container {
	settings := config.Load()
	config.Init()

	if err := config.Connect(ctx, settings.DBDriver, settings.DBDSN); err != nil {
		config.Logger.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.Migrate(config.DB, &course.Course{}, &quiz.Quiz{}, &attempt.Attempt{}); err != nil {
		config.Logger.Fatalf("failed to migrate DB: %v", err)
	}

	publisher, err := events.FromSettings(ctx, settings)
	if err != nil {
		config.Logger.WithError(err).Error("Redis unavailable, domain events disabled")
		publisher = events.NewNoopPublisher()
	}

	return Build(ctx, settings, config.DB, publisher)
}

// Build wires the feature containers around an open database.
func Build(ctx context.Context, settings config.Settings, db *gorm.DB, publisher events.Publisher) *Container {
	aiQuizContainer := aiquiz.NewAIQuizContainer(ctx, settings)
	courseRepo := course.NewRepository(db)
	quizContainer := quiz.NewQuizContainer(db, courseRepo, aiQuizContainer.Service, publisher)
	courseContainer := course.NewCourseContainer(db, quiz.NewCourseQuizLister(quizContainer.Repo), publisher)
	attemptContainer := attempt.NewAttemptContainer(db, quizContainer, settings.SimilarityThreshold, publisher)

	return &Container{
		Settings:         settings,
		Publisher:        publisher,
		AIQuizContainer:  aiQuizContainer,
		CourseContainer:  courseContainer,
		QuizContainer:    quizContainer,
		AttemptContainer: attemptContainer,
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		CourseHandler:  c.CourseContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		AttemptHandler: c.AttemptContainer.Handler,
		AIQuizHandler:  c.AIQuizContainer.Handler,
		CORSOrigins:    c.Settings.CORSOrigins,
	})
}

func (c *Container) Close() {
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			config.Logger.WithError(err).Warn("Failed to close event publisher")
		}
	}
	if config.DB != nil {
		if sqlDB, err := config.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
