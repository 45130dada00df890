package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	GetByID(id string) (*Quiz, error)
	ListByCourse(courseID string, limit int) ([]*Quiz, error)
	ListAll() ([]*Quiz, error)
	Delete(id string) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Course").Create(q).Error
	})
}

func (r *quizRepository) GetByID(id string) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.Preload("Course").First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListByCourse(courseID string, limit int) ([]*Quiz, error) {
	var quizzes []*Quiz
	q := r.db.
		Where("course_id = ?", courseID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListAll() ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Preload("Course").
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Delete removes the quiz and its attempts together.
func (r *quizRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM quiz_attempts WHERE quiz_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Quiz{}, "id = ?", id).Error
	})
}
