package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	CourseUploaded   = "course.uploaded"
	CourseDeleted    = "course.deleted"
	QuizGenerated    = "quiz.generated"
	AttemptSubmitted = "attempt.submitted"
)

type Event struct {
	Type       string         `json:"type"`
	SubjectID  uuid.UUID      `json:"subject_id"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func New(eventType string, subjectID uuid.UUID, data map[string]any) Event {
	return Event{
		Type:       eventType,
		SubjectID:  subjectID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher fans domain events out to other processes. Publishing is best
// effort: callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, Event) error { return nil }
func (noopPublisher) Close() error                         { return nil }
