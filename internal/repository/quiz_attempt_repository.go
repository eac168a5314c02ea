package repository

import (
	"github.com/lshigami/StudyForge/internal/model"
	"gorm.io/gorm"
)

// QuizAttemptRepository deliberately exposes no Update or Delete: attempts are
// immutable once written.
type QuizAttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	FindByIDWithAnswers(id uint) (*model.QuizAttempt, error)
	FindRecentByUser(userID uint, limit int) ([]model.QuizAttempt, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	// GORM creates the associated QuizAnswer rows in the same transaction,
	// so an attempt is never persisted without its answers.
	return r.db.Create(attempt).Error
}

func (r *quizAttemptRepository) FindByIDWithAnswers(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_no ASC")
		}).
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) FindRecentByUser(userID uint, limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_no ASC")
		}).
		Find(&attempts).Error
	return attempts, err
}
