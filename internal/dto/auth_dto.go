package dto

import "time"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ProfileRequest struct {
	EducationLevel string `json:"education_level" binding:"omitempty,oneof=school undergraduate postgraduate"`
	Subjects       string `json:"subjects"`
	StudyGoal      string `json:"study_goal"`
}

type ProfileResponse struct {
	UserID         uint      `json:"user_id"`
	EducationLevel string    `json:"education_level,omitempty"`
	Subjects       string    `json:"subjects,omitempty"`
	StudyGoal      string    `json:"study_goal,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}
