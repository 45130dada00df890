package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/attempt"
	"github.com/saulo-duarte/chronos-quiz/internal/course"
	"github.com/saulo-duarte/chronos-quiz/internal/question"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson is course text long and structured enough to pass validation.
var Lesson = strings.Join([]string{
	"Photosynthesis is the process by which plants convert light energy into chemical energy. It is essential for life on Earth.",
	"Chlorophyll absorbs light. Water enters through the roots. Carbon dioxide enters through the leaves.",
	"For example, glucose is produced and oxygen is released as a result. Therefore plants are primary producers.",
}, "\n\n")

// SampleQuestions returns n valid questions cycling through every type.
// Answers are "b" for multiple choice, true for true/false and
// "answer <i>" for short answer.
func SampleQuestions(n int) []question.Question {
	out := make([]question.Question, 0, n)
	for i := 0; i < n; i++ {
		text := fmt.Sprintf("Sample question number %d?", i)
		var q question.Question
		switch i % 3 {
		case 0:
			q, _ = question.NewMultipleChoice(text, [4]string{"A) one", "B) two", "C) three", "D) four"}, "b", "because")
		case 1:
			q, _ = question.NewTrueFalse(text, true, "because")
		default:
			q, _ = question.NewShortAnswer(text, fmt.Sprintf("answer %d", i), "because")
		}
		out = append(out, q)
	}
	return out
}

func SeedCourse(tb testing.TB, db *gorm.DB, title string) *course.Course {
	tb.Helper()
	c := &course.Course{Title: title, Content: Lesson}
	if err := course.NewRepository(db).Create(c); err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedQuiz(tb testing.TB, db *gorm.DB, courseID uuid.UUID, n int) *quiz.Quiz {
	tb.Helper()
	q := &quiz.Quiz{
		CourseID:   courseID,
		Title:      "Seeded quiz",
		Questions:  SampleQuestions(n),
		Difficulty: question.DifficultyMedium,
	}
	if err := quiz.NewRepository(db).Create(q); err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	return q
}

func SeedAttempt(tb testing.TB, db *gorm.DB, quizID uuid.UUID, answers map[string]string) *attempt.Attempt {
	tb.Helper()
	a := &attempt.Attempt{QuizID: quizID, Answers: datatypes.NewJSONType(answers)}
	if err := attempt.NewRepository(db).Create(a); err != nil {
		tb.Fatalf("seed attempt: %v", err)
	}
	return a
}
