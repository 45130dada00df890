package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"google.golang.org/genai"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"

	defaultGeminiModel = "gemini-2.0-flash"
)

var (
	ErrMissingCredential = errors.New("missing completion service credential")
	ErrEmptyCompletion   = errors.New("empty response from model")
)

// Provider is a remote text-completion service.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// NewProvider builds the provider selected by AI_PROVIDER. A missing API key
// yields ErrMissingCredential; callers treat that as "generation disabled".
func NewProvider(ctx context.Context, s config.Settings) (Provider, error) {
	switch s.AIProvider {
	case ProviderGemini:
		if s.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingCredential)
		}
		return NewGeminiProvider(ctx, s.GeminiAPIKey)
	case ProviderGroq, "":
		if s.GroqAPIKey == "" {
			return nil, fmt.Errorf("%w: GROQ_API_KEY", ErrMissingCredential)
		}
		return NewGroqProvider(s.GroqAPIKey, s.AIBaseURL, s.AIMaxRetries), nil
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER: %s", s.AIProvider)
	}
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	log := config.WithContext(ctx)

	model := req.Model
	if model == "" {
		model = defaultGeminiModel
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
		TopP:              genai.Ptr(req.TopP),
		MaxOutputTokens:   int32(req.MaxTokens),
	}

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(req.User), cfg)
	if err != nil {
		log.WithError(err).Warn("[AIQUIZ] Gemini request failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)
	if raw == "" {
		return "", ErrEmptyCompletion
	}
	return raw, nil
}
