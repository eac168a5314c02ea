package model

import (
	"time"

	"gorm.io/gorm"
)

type QuizAnswer struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuizAttemptID uint           `json:"quiz_attempt_id" gorm:"not null;index"`
	QuestionNo    int            `json:"question_no" gorm:"not null"` // 1-based position in the quiz
	UserAnswer    string         `json:"user_answer" gorm:"type:text;not null"`
	CorrectAnswer string         `json:"correct_answer" gorm:"type:text;not null"`
	IsCorrect     bool           `json:"is_correct" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
