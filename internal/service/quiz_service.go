package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/StudyForge/internal/dto"
	"github.com/lshigami/StudyForge/internal/model"
	"github.com/lshigami/StudyForge/internal/repository"
	"github.com/rs/zerolog/log"
)

// quizHistoryLimit bounds the history listing. Newest first.
const quizHistoryLimit = 10

type QuizService interface {
	GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	SubmitQuiz(userID uint, req dto.SubmitQuizRequest) (*dto.QuizAttemptResponse, error)
	GetHistory(userID uint) ([]dto.QuizAttemptResponse, error)
}

type quizService struct {
	genai       GenAIClient
	attemptRepo repository.QuizAttemptRepository
}

func NewQuizService(genai GenAIClient, attemptRepo repository.QuizAttemptRepository) QuizService {
	return &quizService{genai: genai, attemptRepo: attemptRepo}
}

func (s *quizService) GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	log.Info().Str("topic", req.Topic).Str("difficulty", req.Difficulty).Str("type", req.QuestionType).Msg("Generating quiz")

	raw, err := s.genai.GenerateText(ctx, QuizPrompt(req))
	if err != nil {
		return nil, err
	}

	quiz, err := SalvageQuizJSON(raw)
	if err != nil {
		log.Warn().Err(err).Int("rawLen", len(raw)).Msg("GenerateQuiz: could not recover quiz JSON from model output")
		return nil, err
	}

	return &dto.GenerateQuizResponse{
		Topic:        req.Topic,
		Difficulty:   req.Difficulty,
		QuestionType: req.QuestionType,
		Count:        len(quiz.Questions),
		Quiz:         *quiz,
	}, nil
}

// SubmitQuiz grades the submission and writes one immutable attempt record.
// Attempt and answers are created together; a partial attempt is never
// persisted. Identical submissions always produce distinct records.
func (s *quizService) SubmitQuiz(userID uint, req dto.SubmitQuizRequest) (*dto.QuizAttemptResponse, error) {
	pairs := make([]AnswerPair, len(req.Answers))
	for i, a := range req.Answers {
		pairs[i] = AnswerPair{Submitted: a.UserAnswer, Correct: a.CorrectAnswer}
	}

	correct, score, answers, err := ScoreQuiz(pairs)
	if err != nil {
		return nil, err
	}

	attempt := model.QuizAttempt{
		UserID:         userID,
		Topic:          req.Topic,
		Difficulty:     req.Difficulty,
		QuestionType:   req.QuestionType,
		TotalQuestions: len(req.Answers),
		CorrectAnswers: correct,
		Score:          score,
		TimeTaken:      req.TimeTaken,
		Answers:        answers,
	}

	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitQuiz: failed to persist attempt")
		return nil, fmt.Errorf("failed to save quiz attempt: %w", err)
	}

	log.Info().Uint("attemptID", attempt.ID).Uint("userID", userID).Int("score", score).Msg("Quiz attempt recorded")
	return attemptToDTO(&attempt), nil
}

func (s *quizService) GetHistory(userID uint) ([]dto.QuizAttemptResponse, error) {
	attempts, err := s.attemptRepo.FindRecentByUser(userID, quizHistoryLimit)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: repository error")
		return nil, fmt.Errorf("failed to load quiz history: %w", err)
	}

	resp := make([]dto.QuizAttemptResponse, len(attempts))
	for i := range attempts {
		resp[i] = *attemptToDTO(&attempts[i])
	}
	return resp, nil
}

func attemptToDTO(attempt *model.QuizAttempt) *dto.QuizAttemptResponse {
	var resp dto.QuizAttemptResponse
	copier.Copy(&resp, attempt)
	resp.Answers = make([]dto.QuizAnswerResponse, len(attempt.Answers))
	for i, ans := range attempt.Answers {
		copier.Copy(&resp.Answers[i], &ans)
	}
	return &resp
}
