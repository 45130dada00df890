package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-quiz/internal/attempt"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/course"
	"github.com/saulo-duarte/chronos-quiz/internal/middlewares"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

type RouterConfig struct {
	CourseHandler  *course.Handler
	QuizHandler    *quiz.Handler
	AttemptHandler *attempt.Handler
	AIQuizHandler  *aiquiz.Handler
	CORSOrigins    []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
	r.Mount("/courses", course.Routes(cfg.CourseHandler))

	quizRoutes := quiz.Routes(cfg.QuizHandler)
	quizRoutes.Post("/{id}/attempts", cfg.AttemptHandler.Submit)
	quizRoutes.Get("/{id}/attempts", cfg.AttemptHandler.ListByQuiz)
	r.Mount("/quizzes", quizRoutes)

	r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
	r.Get("/history", cfg.AttemptHandler.History)
	return r
}
