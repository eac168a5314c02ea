package dto

import "time"

type GenerateQuizRequest struct {
	Topic        string `json:"topic" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	QuestionType string `json:"question_type" binding:"required,oneof=multiple-choice subjective"`
	Count        int    `json:"count" binding:"omitempty,min=1,max=20"`
}

// QuizQuestion mirrors the JSON shape the model is instructed to return.
// The salvage parser does not enforce it; missing fields stay zero-valued.
type QuizQuestion struct {
	QuestionNo  int      `json:"question_no"`
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

type GeneratedQuiz struct {
	Questions []QuizQuestion `json:"questions"`
}

type GenerateQuizResponse struct {
	Topic        string        `json:"topic"`
	Difficulty   string        `json:"difficulty"`
	QuestionType string        `json:"question_type"`
	Count        int           `json:"count"`
	Quiz         GeneratedQuiz `json:"quiz"`
}

type SubmittedAnswer struct {
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
}

type SubmitQuizRequest struct {
	Topic        string            `json:"topic" binding:"required"`
	Difficulty   string            `json:"difficulty" binding:"required,oneof=easy medium hard"`
	QuestionType string            `json:"question_type" binding:"required,oneof=multiple-choice subjective"`
	Answers      []SubmittedAnswer `json:"answers" binding:"required,dive"`
	TimeTaken    int               `json:"time_taken" binding:"omitempty,min=0"`
}

type QuizAnswerResponse struct {
	QuestionNo    int    `json:"question_no"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

type QuizAttemptResponse struct {
	ID             uint                 `json:"id"`
	Topic          string               `json:"topic"`
	Difficulty     string               `json:"difficulty"`
	QuestionType   string               `json:"question_type"`
	TotalQuestions int                  `json:"total_questions"`
	CorrectAnswers int                  `json:"correct_answers"`
	Score          int                  `json:"score"`
	TimeTaken      int                  `json:"time_taken"`
	Answers        []QuizAnswerResponse `json:"answers,omitempty"`
	CompletedAt    time.Time            `json:"completed_at"`
}
