package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/course"
	"github.com/saulo-duarte/chronos-quiz/internal/question"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Quiz struct {
	ID           uuid.UUID                              `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID     uuid.UUID                              `gorm:"type:uuid;not null;index" json:"course_id"`
	Course       course.Course                          `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Title        string                                 `gorm:"type:text;not null" json:"title"`
	Questions    datatypes.JSONSlice[question.Question] `gorm:"not null" json:"questions"`
	Difficulty   question.Difficulty                    `gorm:"type:varchar(10);not null" json:"difficulty"`
	NumQuestions int                                    `gorm:"not null;default:0" json:"num_questions"`
	CreatedAt    time.Time                              `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Quiz) TableName() string { return "quizzes" }

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps NumQuestions in step with the stored question list.
func (q *Quiz) BeforeSave(tx *gorm.DB) error {
	q.NumQuestions = len(q.Questions)
	return nil
}
