package dto

type SyllabusRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Level    string `json:"level" binding:"required"`
	Duration string `json:"duration" binding:"required"` // e.g. "8 weeks"
}

type EssayRequest struct {
	Topic     string `json:"topic" binding:"required"`
	WordCount int    `json:"word_count" binding:"omitempty,min=50,max=5000"`
	Tone      string `json:"tone"` // e.g. "formal", "persuasive"
}

type ExplainCodeRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
}

type StudyPlanRequest struct {
	Subjects    string `json:"subjects" binding:"required"` // comma-separated
	HoursPerDay int    `json:"hours_per_day" binding:"required,min=1,max=16"`
	Deadline    string `json:"deadline" binding:"required"` // e.g. "2026-12-01" or "in 6 weeks"
}

type FlashcardsRequest struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count" binding:"omitempty,min=1,max=50"`
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

type ChatTurn struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Message string     `json:"message" binding:"required"`
	History []ChatTurn `json:"history" binding:"omitempty,dive"`
}

type SolveURLRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
	Question string `json:"question"`
}
