package course

import (
	"errors"

	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(c *Course) error
	GetByID(id string) (*Course, error)
	ListRecent(limit int) ([]*Course, error)
	Delete(id string) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(c *Course) error {
	return r.db.Create(c).Error
}

func (r *courseRepository) GetByID(id string) (*Course, error) {
	var c Course
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) ListRecent(limit int) ([]*Course, error) {
	var courses []*Course
	if err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// Delete removes the course with its quizzes and their attempts in one
// transaction, without relying on the driver enforcing foreign keys.
func (r *courseRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM quiz_attempts WHERE quiz_id IN (SELECT id FROM quizzes WHERE course_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM quizzes WHERE course_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Course{}, "id = ?", id).Error
	})
}
