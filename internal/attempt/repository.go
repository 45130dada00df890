package attempt

import (
	"errors"

	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(a *Attempt) error
	GetByID(id string) (*Attempt, error)
	ListRecent(limit int) ([]*Attempt, error)
	ListByQuiz(quizID string) ([]*Attempt, error)
	CountByQuiz(quizID string) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(a *Attempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Quiz").Create(a).Error
	})
}

func (r *attemptRepository) GetByID(id string) (*Attempt, error) {
	var a Attempt
	if err := r.db.Preload("Quiz.Course").First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attemptRepository) ListRecent(limit int) ([]*Attempt, error) {
	var attempts []*Attempt
	if err := r.db.
		Preload("Quiz.Course").
		Order("completed_at DESC").
		Limit(limit).
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) ListByQuiz(quizID string) ([]*Attempt, error) {
	var attempts []*Attempt
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("completed_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) CountByQuiz(quizID string) (int64, error) {
	var n int64
	if err := r.db.Model(&Attempt{}).Where("quiz_id = ?", quizID).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
