package attempt_test

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/attempt"
	"github.com/saulo-duarte/chronos-quiz/internal/course"
	"github.com/saulo-duarte/chronos-quiz/internal/events"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/saulo-duarte/chronos-quiz/internal/scoring"
	"github.com/saulo-duarte/chronos-quiz/internal/testutil"
	"gorm.io/gorm"
)

type fixture struct {
	svc     attempt.Service
	handler *attempt.Handler
	db      *gorm.DB
	events  *testutil.Recorder
	quiz    *quiz.Quiz
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	rec := &testutil.Recorder{}
	quizRepo := quiz.NewRepository(db)
	quizSvc := quiz.NewService(quizRepo, course.NewRepository(db), nil, rec)
	svc := attempt.NewService(attempt.NewRepository(db), quizRepo, quizSvc, scoring.NewScorer(0.8), rec)

	c := testutil.SeedCourse(t, db, "Biology")
	return &fixture{
		svc:     svc,
		handler: attempt.NewHandler(svc),
		db:      db,
		events:  rec,
		quiz:    testutil.SeedQuiz(t, db, c.ID, 3),
	}
}

func TestSubmit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Sample questions: mc "b", true/false true, short answer "answer 2".
	resp, err := f.svc.Submit(ctx, f.quiz.ID, attempt.SubmitAttemptDTO{
		Answers: map[string]string{"0": "B", "1": "False", "2": " Answer 2 "},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resp.CorrectCount != 2 || resp.TotalCount != 3 {
		t.Errorf("expected 2/3, got %d/%d", resp.CorrectCount, resp.TotalCount)
	}
	if math.Abs(resp.Score-200.0/3) > 1e-9 {
		t.Errorf("score = %v", resp.Score)
	}
	if resp.QuizTitle != f.quiz.Title || resp.CourseTitle != "Biology" {
		t.Errorf("unexpected titles %+v", resp)
	}
	if got := f.events.Types(); !reflect.DeepEqual(got, []string{events.AttemptSubmitted}) {
		t.Errorf("events = %v", got)
	}

	result, err := f.svc.Get(ctx, resp.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if result.Answers["0"] != "B" {
		t.Errorf("stored answers = %v", result.Answers)
	}
	if len(result.Outcomes) != 3 || !result.Outcomes[0].Correct || result.Outcomes[1].Correct {
		t.Errorf("unexpected outcomes %+v", result.Outcomes)
	}
	if result.Outcomes[1].Expected != "true" || result.Outcomes[1].Explanation == "" {
		t.Errorf("outcome should show the expected answer and explanation: %+v", result.Outcomes[1])
	}
}

func TestSubmit_NoAnswers(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Submit(context.Background(), f.quiz.ID, attempt.SubmitAttemptDTO{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resp.CorrectCount != 0 || resp.TotalCount != 3 || resp.Score != 0 {
		t.Errorf("unexpected result %+v", resp)
	}
}

func TestSubmit_UnknownQuiz(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), uuid.New(), attempt.SubmitAttemptDTO{Answers: map[string]string{}})
	if !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Errorf("expected ErrQuizNotFound, got %v", err)
	}
	if _, err := f.svc.Get(context.Background(), uuid.New()); !errors.Is(err, attempt.ErrAttemptNotFound) {
		t.Errorf("expected ErrAttemptNotFound, got %v", err)
	}
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < attempt.RecentAttemptsLimit+3; i++ {
		testutil.SeedAttempt(t, f.db, f.quiz.ID, map[string]string{"0": "b"})
	}

	history, err := f.svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Quizzes) != 1 || history.Quizzes[0].ID != f.quiz.ID {
		t.Errorf("unexpected quizzes %+v", history.Quizzes)
	}
	if len(history.RecentAttempts) != attempt.RecentAttemptsLimit {
		t.Errorf("expected %d attempts, got %d", attempt.RecentAttemptsLimit, len(history.RecentAttempts))
	}
	if history.RecentAttempts[0].QuizTitle == "" || history.RecentAttempts[0].CourseTitle != "Biology" {
		t.Errorf("attempt summary missing titles: %+v", history.RecentAttempts[0])
	}

	if got := history.Quizzes[0].AttemptCount; got != int64(attempt.RecentAttemptsLimit+3) {
		t.Errorf("attempt count = %d, want %d", got, attempt.RecentAttemptsLimit+3)
	}
}

func TestListByQuiz(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := testutil.SeedQuiz(t, f.db, f.quiz.CourseID, 2)
	for i := 0; i < 3; i++ {
		testutil.SeedAttempt(t, f.db, f.quiz.ID, map[string]string{"0": "b"})
	}
	testutil.SeedAttempt(t, f.db, other.ID, map[string]string{})

	got, err := f.svc.ListByQuiz(ctx, f.quiz.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(got))
	}
	for _, a := range got {
		if a.QuizID != f.quiz.ID || a.QuizTitle != f.quiz.Title || a.CourseTitle != "Biology" {
			t.Errorf("unexpected attempt %+v", a)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].CompletedAt.After(got[i-1].CompletedAt) {
			t.Fatal("attempts should be newest first")
		}
	}

	history, err := f.svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	counts := map[uuid.UUID]int64{}
	for _, q := range history.Quizzes {
		counts[q.ID] = q.AttemptCount
	}
	if counts[f.quiz.ID] != 3 || counts[other.ID] != 1 {
		t.Errorf("attempt counts = %v", counts)
	}

	if _, err := f.svc.ListByQuiz(ctx, uuid.New()); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Errorf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestAttemptHandlers(t *testing.T) {
	f := newFixture(t)

	r := chi.NewRouter()
	r.Post("/quizzes/{id}/attempts", f.handler.Submit)
	r.Get("/quizzes/{id}/attempts", f.handler.ListByQuiz)
	r.Mount("/attempts", attempt.Routes(f.handler))
	r.Get("/history", f.handler.History)

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	submitPath := "/quizzes/" + f.quiz.ID.String() + "/attempts"
	if rec := serve(http.MethodPost, submitPath, `{"answers": {"0": "b"}}`); rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d, body %s", rec.Code, rec.Body.String())
	}
	if rec := serve(http.MethodPost, submitPath, `{}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing answers status = %d, want 400", rec.Code)
	}
	if rec := serve(http.MethodPost, "/quizzes/nope/attempts", `{"answers": {}}`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad quiz id status = %d, want 400", rec.Code)
	}
	if rec := serve(http.MethodPost, "/quizzes/"+uuid.NewString()+"/attempts", `{"answers": {}}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown quiz status = %d, want 404", rec.Code)
	}
	if rec := serve(http.MethodGet, submitPath, ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"quiz_id":"`+f.quiz.ID.String()+`"`) {
		t.Errorf("list attempts status = %d body %s", rec.Code, rec.Body.String())
	}
	if rec := serve(http.MethodGet, "/quizzes/"+uuid.NewString()+"/attempts", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown quiz list status = %d, want 404", rec.Code)
	}
	if rec := serve(http.MethodGet, "/attempts/"+uuid.NewString(), ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown attempt status = %d, want 404", rec.Code)
	}

	rec := serve(http.MethodGet, "/history", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"recent_attempts":[{`) {
		t.Errorf("history status = %d body %s", rec.Code, rec.Body.String())
	}
}
