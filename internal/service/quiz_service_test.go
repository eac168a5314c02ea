package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lshigami/StudyForge/internal/dto"
	"github.com/lshigami/StudyForge/internal/model"
	"github.com/lshigami/StudyForge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubGenAI struct {
	text string
	err  error
}

func (s *stubGenAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func (s *stubGenAI) GenerateVision(ctx context.Context, prompt string, mimeType string, image []byte) (string, error) {
	return s.text, s.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Profile{}, &model.QuizAttempt{}, &model.QuizAnswer{}))
	return db
}

func TestGenerateQuizParsesProseWrappedOutput(t *testing.T) {
	raw := `Sure! Here is the quiz you asked for:
{"questions":[{"question_no":1,"question":"What is the capital of France?","options":["A) Lyon","B) Paris","C) Nice","D) Lille"],"answer":"B","explanation":"Paris is the capital."}]}
Good luck!`
	svc := NewQuizService(&stubGenAI{text: raw}, repository.NewQuizAttemptRepository(newTestDB(t)))

	resp, err := svc.GenerateQuiz(context.Background(), dto.GenerateQuizRequest{
		Topic: "geography", Difficulty: "easy", QuestionType: "multiple-choice", Count: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "geography", resp.Topic)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Quiz.Questions, 1)
	assert.Equal(t, "B", resp.Quiz.Questions[0].Answer)
}

func TestGenerateQuizPropagatesOverload(t *testing.T) {
	overloadErr := fmt.Errorf("%w after 3 attempts: model overloaded", ErrOverloaded)
	svc := NewQuizService(&stubGenAI{err: overloadErr}, repository.NewQuizAttemptRepository(newTestDB(t)))

	_, err := svc.GenerateQuiz(context.Background(), dto.GenerateQuizRequest{
		Topic: "algebra", Difficulty: "medium", QuestionType: "subjective",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverloaded))
}

func TestGenerateQuizUnrecoverableOutput(t *testing.T) {
	svc := NewQuizService(&stubGenAI{text: "I cannot produce a quiz right now."}, repository.NewQuizAttemptRepository(newTestDB(t)))

	_, err := svc.GenerateQuiz(context.Background(), dto.GenerateQuizRequest{
		Topic: "history", Difficulty: "hard", QuestionType: "multiple-choice",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoQuizJSON)
}

func TestSubmitQuizPersistsScoredAttempt(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(&stubGenAI{}, repository.NewQuizAttemptRepository(db))

	resp, err := svc.SubmitQuiz(7, dto.SubmitQuizRequest{
		Topic:        "biology",
		Difficulty:   "medium",
		QuestionType: "multiple-choice",
		TimeTaken:    95,
		Answers: []dto.SubmittedAnswer{
			{UserAnswer: "A", CorrectAnswer: "A"},
			{UserAnswer: "C", CorrectAnswer: "B"},
			{UserAnswer: "D", CorrectAnswer: "D"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalQuestions)
	assert.Equal(t, 2, resp.CorrectAnswers)
	assert.Equal(t, 67, resp.Score)
	assert.Equal(t, 95, resp.TimeTaken)
	require.Len(t, resp.Answers, 3)
	assert.True(t, resp.Answers[0].IsCorrect)
	assert.False(t, resp.Answers[1].IsCorrect)

	// The attempt and its answers land together.
	var attempt model.QuizAttempt
	require.NoError(t, db.Preload("Answers").First(&attempt, resp.ID).Error)
	assert.Equal(t, uint(7), attempt.UserID)
	assert.Len(t, attempt.Answers, 3)
}

func TestSubmitQuizRejectsEmptyAnswerSet(t *testing.T) {
	svc := NewQuizService(&stubGenAI{}, repository.NewQuizAttemptRepository(newTestDB(t)))

	_, err := svc.SubmitQuiz(1, dto.SubmitQuizRequest{
		Topic: "biology", Difficulty: "easy", QuestionType: "subjective",
	})
	require.Error(t, err)
}

func TestSubmitQuizIdenticalSubmissionsStayDistinct(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(&stubGenAI{}, repository.NewQuizAttemptRepository(db))

	req := dto.SubmitQuizRequest{
		Topic:        "chemistry",
		Difficulty:   "easy",
		QuestionType: "multiple-choice",
		Answers:      []dto.SubmittedAnswer{{UserAnswer: "A", CorrectAnswer: "A"}},
	}

	first, err := svc.SubmitQuiz(3, req)
	require.NoError(t, err)
	second, err := svc.SubmitQuiz(3, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	history, err := svc.GetHistory(3)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestGetHistoryNewestFirstBounded(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewQuizAttemptRepository(db)
	svc := NewQuizService(&stubGenAI{}, repo)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		attempt := model.QuizAttempt{
			UserID:         5,
			Topic:          fmt.Sprintf("topic-%d", i),
			Difficulty:     "easy",
			QuestionType:   "multiple-choice",
			TotalQuestions: 1,
			CorrectAnswers: 1,
			Score:          100,
			CompletedAt:    base.Add(time.Duration(i) * time.Minute),
			Answers: []model.QuizAnswer{
				{QuestionNo: 1, UserAnswer: "A", CorrectAnswer: "A", IsCorrect: true},
			},
		}
		require.NoError(t, repo.Create(&attempt))
	}

	history, err := svc.GetHistory(5)
	require.NoError(t, err)
	require.Len(t, history, 10)
	assert.Equal(t, "topic-11", history[0].Topic)
	assert.Equal(t, "topic-2", history[9].Topic)

	// Another user's history stays empty.
	other, err := svc.GetHistory(6)
	require.NoError(t, err)
	assert.Empty(t, other)
}
