package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt is the record of one completed quiz submission. It is written
// once together with its answers and never updated or deleted afterwards.
type QuizAttempt struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	Topic          string         `json:"topic" gorm:"not null"`
	Difficulty     string         `json:"difficulty" gorm:"not null"` // "easy", "medium", "hard"
	QuestionType   string         `json:"question_type" gorm:"not null"` // "multiple-choice", "subjective"
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers int            `json:"correct_answers" gorm:"not null"`
	Score          int            `json:"score" gorm:"not null"` // 0-100, round(100*correct/total)
	TimeTaken      int            `json:"time_taken" gorm:"not null"` // seconds
	Answers        []QuizAnswer   `json:"answers,omitempty" gorm:"foreignKey:QuizAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CompletedAt    time.Time      `json:"completed_at" gorm:"autoCreateTime;index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
