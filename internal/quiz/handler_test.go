package quiz_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

func (f *fixture) router() http.Handler {
	r := chi.NewRouter()
	r.Mount("/quizzes", quiz.Routes(quiz.NewHandler(f.svc)))
	return r
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestQuizHandlers(t *testing.T) {
	f := newFixture(t)
	h := f.router()
	courseID := f.course.ID.String()

	t.Run("GenerateValidation", func(t *testing.T) {
		for _, body := range []string{
			`nope`,
			`{}`,
			`{"course_id": "not-a-uuid"}`,
			`{"course_id": "` + courseID + `", "num_questions": 0}`,
			`{"course_id": "` + courseID + `", "num_questions": 21}`,
			`{"course_id": "` + courseID + `", "difficulty": "extreme"}`,
			`{"course_id": "` + courseID + `", "question_types": ["essay"]}`,
		} {
			if rec := serve(h, http.MethodPost, "/quizzes", body); rec.Code != http.StatusBadRequest {
				t.Errorf("body %s: status = %d, want 400", body, rec.Code)
			}
		}
	})

	t.Run("UnknownCourse", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/quizzes", `{"course_id": "`+uuid.NewString()+`"}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	var created quiz.QuizResponse
	t.Run("Generate", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/quizzes", `{"course_id": "`+courseID+`", "num_questions": 5, "difficulty": "easy"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(created.Questions) != 5 {
			t.Errorf("expected 5 questions, got %d", len(created.Questions))
		}
	})

	t.Run("Export", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/quizzes/"+created.ID.String()+"/export", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		want := "attachment; filename=quiz_" + created.ID.String() + ".json"
		if got := rec.Header().Get("Content-Disposition"); got != want {
			t.Errorf("Content-Disposition = %q, want %q", got, want)
		}
		var doc quiz.ExportResponse
		if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(doc.Questions) != 5 || doc.Difficulty != "easy" {
			t.Errorf("unexpected export %+v", doc)
		}
	})

	t.Run("GetListDelete", func(t *testing.T) {
		if rec := serve(h, http.MethodGet, "/quizzes/"+created.ID.String(), ""); rec.Code != http.StatusOK {
			t.Errorf("get status = %d", rec.Code)
		}
		if rec := serve(h, http.MethodGet, "/quizzes", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), created.ID.String()) {
			t.Errorf("list status = %d body %s", rec.Code, rec.Body.String())
		}
		if rec := serve(h, http.MethodGet, "/quizzes/bad-id", ""); rec.Code != http.StatusBadRequest {
			t.Errorf("bad id status = %d", rec.Code)
		}
		if rec := serve(h, http.MethodDelete, "/quizzes/"+created.ID.String(), ""); rec.Code != http.StatusNoContent {
			t.Errorf("delete status = %d", rec.Code)
		}
		if rec := serve(h, http.MethodGet, "/quizzes/"+created.ID.String()+"/export", ""); rec.Code != http.StatusNotFound {
			t.Errorf("export after delete status = %d", rec.Code)
		}
	})

	t.Run("GenerationOutcomes", func(t *testing.T) {
		f.gen.questions = nil
		if rec := serve(h, http.MethodPost, "/quizzes", `{"course_id": "`+courseID+`"}`); rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("empty generation status = %d, want 422", rec.Code)
		}
		f.gen.disabled = true
		if rec := serve(h, http.MethodPost, "/quizzes", `{"course_id": "`+courseID+`"}`); rec.Code != http.StatusServiceUnavailable {
			t.Errorf("disabled generation status = %d, want 503", rec.Code)
		}
	})
}
