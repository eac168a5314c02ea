package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/lshigami/StudyForge/internal/dto"
)

// ErrNoQuizJSON is returned when neither a strict parse nor the salvage pass
// recovers a JSON object from the generated text.
var ErrNoQuizJSON = errors.New("no structured quiz result could be recovered from the generated text")

// SalvageQuizJSON coerces the generated blob into a quiz object. The model is
// instructed to return pure JSON but sometimes wraps it in prose. Strict parse
// first; on failure, take the substring from the first '{' to the last '}'
// and parse that. The span is greedy on purpose: prose containing braces can
// break it, and that behavior is kept as-is.
func SalvageQuizJSON(raw string) (*dto.GeneratedQuiz, error) {
	trimmed := strings.TrimSpace(raw)

	var quiz dto.GeneratedQuiz
	if err := json.Unmarshal([]byte(trimmed), &quiz); err == nil {
		return &quiz, nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end < start {
		return nil, ErrNoQuizJSON
	}

	candidate := trimmed[start : end+1]
	quiz = dto.GeneratedQuiz{}
	if err := json.Unmarshal([]byte(candidate), &quiz); err != nil {
		return nil, ErrNoQuizJSON
	}
	return &quiz, nil
}
