package model

import (
	"time"

	"gorm.io/gorm"
)

type Profile struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	EducationLevel string         `json:"education_level,omitempty"` // "school", "undergraduate", "postgraduate"
	Subjects       string         `json:"subjects,omitempty" gorm:"type:text"`
	StudyGoal      string         `json:"study_goal,omitempty" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
