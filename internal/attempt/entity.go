package attempt

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Attempt is immutable once created.
type Attempt struct {
	ID           uuid.UUID                             `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID       uuid.UUID                             `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Quiz         quiz.Quiz                             `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	Answers      datatypes.JSONType[map[string]string] `gorm:"not null" json:"answers"`
	Score        float64                               `gorm:"not null;default:0" json:"score"`
	CorrectCount int                                   `gorm:"not null;default:0" json:"correct_count"`
	TotalCount   int                                   `gorm:"not null;default:0" json:"total_count"`
	CompletedAt  time.Time                             `gorm:"autoCreateTime;index" json:"completed_at"`
}

func (Attempt) TableName() string { return "quiz_attempts" }

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
