package aiquiz

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama3-8b-8192"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float32       `json:"top_p"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// groqProvider talks to any OpenAI-compatible /chat/completions endpoint.
type groqProvider struct {
	client *resty.Client
}

func NewGroqProvider(apiKey, baseURL string, maxRetries int) Provider {
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(maxRetries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(4 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})

	return &groqProvider{client: client}
}

func (p *groqProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	log := config.WithContext(ctx)

	model := req.Model
	if model == "" {
		model = defaultGroqModel
	}

	body := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        req.TopP,
	}

	var out chatCompletionResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		log.WithError(err).Warn("[AIQUIZ] Completion request failed")
		return "", fmt.Errorf("completion request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("completion service returned %d: %s", resp.StatusCode(), resp.String())
	}

	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	raw := strings.TrimSpace(out.Choices[0].Message.Content)
	log.Debugf("[AIQUIZ] Raw completion:\n%s", raw)
	if raw == "" {
		return "", ErrEmptyCompletion
	}
	return raw, nil
}
