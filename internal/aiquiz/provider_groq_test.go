package aiquiz_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
)

func TestGroqProvider_Complete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  {\"question\":\"q\"}  "}}]}`))
	}))
	defer srv.Close()

	p := aiquiz.NewGroqProvider("test-key", srv.URL+"/", 0)
	got, err := p.Complete(context.Background(), aiquiz.CompletionRequest{
		System:      "sys",
		User:        "usr",
		Temperature: 0.7,
		MaxTokens:   500,
		TopP:        0.8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"question":"q"}` {
		t.Errorf("got %q", got)
	}

	if body["model"] != "llama3-8b-8192" {
		t.Errorf("expected default model, got %v", body["model"])
	}
	if body["max_tokens"] != float64(500) {
		t.Errorf("unexpected max_tokens %v", body["max_tokens"])
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %v", body["messages"])
	}
}

func TestGroqProvider_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	p := aiquiz.NewGroqProvider("k", srv.URL, 1)
	got, err := p.Complete(context.Background(), aiquiz.CompletionRequest{User: "u"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" || calls.Load() != 2 {
		t.Errorf("got %q after %d calls", got, calls.Load())
	}
}

func TestGroqProvider_Errors(t *testing.T) {
	t.Run("ClientError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad key", http.StatusUnauthorized)
		}))
		defer srv.Close()

		if _, err := aiquiz.NewGroqProvider("k", srv.URL, 0).Complete(context.Background(), aiquiz.CompletionRequest{}); err == nil {
			t.Error("expected an error for 401")
		}
	})

	t.Run("NoChoices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		_, err := aiquiz.NewGroqProvider("k", srv.URL, 0).Complete(context.Background(), aiquiz.CompletionRequest{})
		if !errors.Is(err, aiquiz.ErrEmptyCompletion) {
			t.Errorf("expected ErrEmptyCompletion, got %v", err)
		}
	})
}

func TestNewProvider_MissingCredential(t *testing.T) {
	for _, name := range []string{aiquiz.ProviderGroq, aiquiz.ProviderGemini} {
		_, err := aiquiz.NewProvider(context.Background(), config.Settings{AIProvider: name})
		if !errors.Is(err, aiquiz.ErrMissingCredential) {
			t.Errorf("%s: expected ErrMissingCredential, got %v", name, err)
		}
	}

	if _, err := aiquiz.NewProvider(context.Background(), config.Settings{AIProvider: "openai-ish"}); err == nil {
		t.Error("expected an error for an unsupported provider")
	}
}
