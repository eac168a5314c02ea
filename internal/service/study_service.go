package service

import (
	"context"

	"github.com/lshigami/StudyForge/internal/dto"
	"github.com/rs/zerolog/log"
)

// StudyService covers the plain-text generation features. Each method renders
// a prompt, runs it through the resilient client, and passes the text back
// unchanged. No retry logic lives here.
type StudyService interface {
	GenerateSyllabus(ctx context.Context, req dto.SyllabusRequest) (string, error)
	WriteEssay(ctx context.Context, req dto.EssayRequest) (string, error)
	ExplainCode(ctx context.Context, req dto.ExplainCodeRequest) (string, error)
	BuildStudyPlan(ctx context.Context, req dto.StudyPlanRequest) (string, error)
	GenerateFlashcards(ctx context.Context, req dto.FlashcardsRequest) (string, error)
	Ask(ctx context.Context, req dto.AskRequest) (string, error)
	Chat(ctx context.Context, req dto.ChatRequest) (string, error)
}

type studyService struct {
	genai GenAIClient
}

func NewStudyService(genai GenAIClient) StudyService {
	return &studyService{genai: genai}
}

func (s *studyService) GenerateSyllabus(ctx context.Context, req dto.SyllabusRequest) (string, error) {
	log.Info().Str("subject", req.Subject).Str("level", req.Level).Msg("Generating syllabus")
	return s.genai.GenerateText(ctx, SyllabusPrompt(req))
}

func (s *studyService) WriteEssay(ctx context.Context, req dto.EssayRequest) (string, error) {
	log.Info().Str("topic", req.Topic).Int("wordCount", req.WordCount).Msg("Writing essay")
	return s.genai.GenerateText(ctx, EssayPrompt(req))
}

func (s *studyService) ExplainCode(ctx context.Context, req dto.ExplainCodeRequest) (string, error) {
	log.Info().Str("language", req.Language).Int("codeLen", len(req.Code)).Msg("Explaining code")
	return s.genai.GenerateText(ctx, ExplainCodePrompt(req))
}

func (s *studyService) BuildStudyPlan(ctx context.Context, req dto.StudyPlanRequest) (string, error) {
	log.Info().Str("subjects", req.Subjects).Int("hoursPerDay", req.HoursPerDay).Msg("Building study plan")
	return s.genai.GenerateText(ctx, StudyPlanPrompt(req))
}

func (s *studyService) GenerateFlashcards(ctx context.Context, req dto.FlashcardsRequest) (string, error) {
	log.Info().Str("topic", req.Topic).Int("count", req.Count).Msg("Generating flashcards")
	return s.genai.GenerateText(ctx, FlashcardsPrompt(req))
}

func (s *studyService) Ask(ctx context.Context, req dto.AskRequest) (string, error) {
	log.Info().Int("questionLen", len(req.Question)).Msg("Answering question")
	return s.genai.GenerateText(ctx, AskPrompt(req))
}

func (s *studyService) Chat(ctx context.Context, req dto.ChatRequest) (string, error) {
	log.Info().Int("historyTurns", len(req.History)).Msg("Chat turn")
	return s.genai.GenerateText(ctx, ChatPrompt(req))
}
