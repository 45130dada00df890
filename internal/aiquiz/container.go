package aiquiz

import (
	"context"
	"errors"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context, settings config.Settings) *AIQuizContainer {
	provider, err := NewProvider(ctx, settings)
	if err != nil {
		entry := config.Logger.WithError(err).WithField("provider", settings.AIProvider)
		if errors.Is(err, ErrMissingCredential) {
			entry.Warn("Quiz generation disabled")
		} else {
			entry.Error("Failed to initialize completion provider, quiz generation disabled")
		}
		provider = nil
	}

	service := NewService(provider, OptionsFromSettings(settings))
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}
}
