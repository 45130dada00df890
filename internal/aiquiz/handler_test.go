package aiquiz_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
)

func previewRouter(p aiquiz.Provider) http.Handler {
	var svc aiquiz.Service
	if p == nil {
		svc = aiquiz.NewService(nil, aiquiz.Options{})
	} else {
		svc = aiquiz.NewService(p, aiquiz.Options{Rand: seeded()})
	}
	r := chi.NewRouter()
	r.Mount("/ai-quiz", aiquiz.Routes(aiquiz.NewHandler(svc)))
	return r
}

func TestPreviewQuestions(t *testing.T) {
	t.Run("Generates", func(t *testing.T) {
		body := `{"content": "` + lesson + `", "num_questions": 3, "difficulty": "easy", "question_types": ["short_answer"]}`
		rec := httptest.NewRecorder()
		previewRouter(&fakeProvider{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ai-quiz/preview", strings.NewReader(body)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Questions []struct {
				Type          string `json:"type"`
				CorrectAnswer string `json:"correct_answer"`
			} `json:"questions"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Questions) != 3 {
			t.Fatalf("expected 3 questions, got %d", len(resp.Questions))
		}
		for _, q := range resp.Questions {
			if q.Type != "short_answer" || q.CorrectAnswer != "chlorophyll" {
				t.Errorf("unexpected question %+v", q)
			}
		}
	})

	t.Run("RejectsInvalidInput", func(t *testing.T) {
		cases := []string{
			`not json`,
			`{"content": "too short"}`,
			`{"content": "` + lesson + `", "num_questions": 21}`,
			`{"content": "` + lesson + `", "difficulty": "extreme"}`,
			`{"content": "` + lesson + `", "question_types": ["essay"]}`,
		}
		for _, body := range cases {
			rec := httptest.NewRecorder()
			previewRouter(&fakeProvider{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ai-quiz/preview", strings.NewReader(body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("body %s: status = %d, want 400", body, rec.Code)
			}
		}
	})

	t.Run("DisabledWithoutProvider", func(t *testing.T) {
		body := `{"content": "` + lesson + `"}`
		rec := httptest.NewRecorder()
		previewRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ai-quiz/preview", strings.NewReader(body)))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})
}
