package repository

import (
	"testing"
	"time"

	"github.com/lshigami/StudyForge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Profile{}, &model.QuizAttempt{}, &model.QuizAnswer{}))
	return db
}

func TestQuizAttemptCreateWithAnswers(t *testing.T) {
	repo := NewQuizAttemptRepository(newTestDB(t))

	attempt := model.QuizAttempt{
		UserID:         1,
		Topic:          "physics",
		Difficulty:     "hard",
		QuestionType:   "subjective",
		TotalQuestions: 2,
		CorrectAnswers: 1,
		Score:          50,
		TimeTaken:      120,
		Answers: []model.QuizAnswer{
			{QuestionNo: 1, UserAnswer: "F=ma", CorrectAnswer: "F=ma", IsCorrect: true},
			{QuestionNo: 2, UserAnswer: "E=mc", CorrectAnswer: "E=mc^2", IsCorrect: false},
		},
	}
	require.NoError(t, repo.Create(&attempt))
	require.NotZero(t, attempt.ID)

	loaded, err := repo.FindByIDWithAnswers(attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, "physics", loaded.Topic)
	require.Len(t, loaded.Answers, 2)
	assert.Equal(t, 1, loaded.Answers[0].QuestionNo)
	assert.Equal(t, 2, loaded.Answers[1].QuestionNo)
	assert.True(t, loaded.Answers[0].IsCorrect)
}

func TestQuizAttemptFindRecentByUser(t *testing.T) {
	repo := NewQuizAttemptRepository(newTestDB(t))

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		attempt := model.QuizAttempt{
			UserID:         2,
			Topic:          "math",
			Difficulty:     "easy",
			QuestionType:   "multiple-choice",
			TotalQuestions: 1,
			CorrectAnswers: i % 2,
			Score:          100 * (i % 2),
			CompletedAt:    base.Add(time.Duration(i) * time.Hour),
			Answers: []model.QuizAnswer{
				{QuestionNo: 1, UserAnswer: "A", CorrectAnswer: "A", IsCorrect: i%2 == 1},
			},
		}
		require.NoError(t, repo.Create(&attempt))
	}

	attempts, err := repo.FindRecentByUser(2, 3)
	require.NoError(t, err)
	require.Len(t, attempts, 3)
	assert.True(t, attempts[0].CompletedAt.After(attempts[1].CompletedAt))
	assert.True(t, attempts[1].CompletedAt.After(attempts[2].CompletedAt))
	require.Len(t, attempts[0].Answers, 1)
}

func TestProfileUpsert(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	profile := model.Profile{UserID: 9, EducationLevel: "undergraduate", StudyGoal: "pass finals"}
	require.NoError(t, repo.Upsert(&profile))
	firstID := profile.ID

	updated := model.Profile{UserID: 9, EducationLevel: "postgraduate", StudyGoal: "research"}
	require.NoError(t, repo.Upsert(&updated))
	assert.Equal(t, firstID, updated.ID)

	loaded, err := repo.FindByUserID(9)
	require.NoError(t, err)
	assert.Equal(t, "postgraduate", loaded.EducationLevel)
}
