package service

import (
	"fmt"
	"math"

	"github.com/lshigami/StudyForge/internal/model"
)

// ScoreQuiz grades a submitted answer sequence against the known-correct
// answers. Correctness is exact string equality, no normalization. The
// returned answer records are exactly what gets persisted on the attempt.
func ScoreQuiz(pairs []AnswerPair) (correctCount int, score int, answers []model.QuizAnswer, err error) {
	if len(pairs) == 0 {
		return 0, 0, nil, fmt.Errorf("cannot score an empty answer set")
	}

	answers = make([]model.QuizAnswer, len(pairs))
	for i, pair := range pairs {
		isCorrect := pair.Submitted == pair.Correct
		if isCorrect {
			correctCount++
		}
		answers[i] = model.QuizAnswer{
			QuestionNo:    i + 1,
			UserAnswer:    pair.Submitted,
			CorrectAnswer: pair.Correct,
			IsCorrect:     isCorrect,
		}
	}

	score = int(math.Round(100 * float64(correctCount) / float64(len(pairs))))
	return correctCount, score, answers, nil
}

type AnswerPair struct {
	Submitted string
	Correct   string
}
